package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func previewApp() *fiber.App {
	h := NewComposeHandler()
	app := fiber.New()
	app.Post("/api/preview", h.HandlePreview)
	return app
}

func postPreview(t *testing.T, body string) (int, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/preview", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := previewApp().Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return resp.StatusCode, string(raw)
}

func TestHandlePreviewRemoteMedia(t *testing.T) {
	t.Parallel()

	code, out := postPreview(t, `{"body_html":"<p>hi</p>","audio_url":"https://cdn.example.com/a.mp3"}`)
	if code != 200 {
		t.Fatalf("got %d", code)
	}
	if !strings.Contains(out, `<audio controls src="https://cdn.example.com/a.mp3">`) {
		t.Errorf("remote audio not embedded: %s", out)
	}
	if !strings.Contains(out, "<p>hi</p>") {
		t.Errorf("body missing: %s", out)
	}
}

func TestHandlePreviewLocalFilePlaceholder(t *testing.T) {
	t.Parallel()

	code, out := postPreview(t, `{"video_filename":"demo.mp4"}`)
	if code != 200 {
		t.Fatalf("got %d", code)
	}
	if !strings.Contains(out, `<video controls src="">`) {
		t.Errorf("placeholder player missing: %s", out)
	}
	if strings.Contains(out, `src="demo.mp4"`) {
		t.Errorf("local filename used as src: %s", out)
	}
}

func TestHandlePreviewButtons(t *testing.T) {
	t.Parallel()

	code, out := postPreview(t, `{"buttons":[{"label":"Go","url":"https://example.com"}]}`)
	if code != 200 {
		t.Fatalf("got %d", code)
	}
	if !strings.Contains(out, `href="https://example.com"`) || !strings.Contains(out, ">Go</a>") {
		t.Errorf("button missing: %s", out)
	}
}
