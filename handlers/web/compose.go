package web

import (
	"github.com/gofiber/fiber/v2"

	"sitemail/composer"
	"sitemail/utils"
)

// ComposeHandler serves the email composer page and its preview fragment.
type ComposeHandler struct{}

// NewComposeHandler creates a new compose handler
func NewComposeHandler() *ComposeHandler {
	return &ComposeHandler{}
}

// HandleCompose renders the composer page.
func (h *ComposeHandler) HandleCompose(c *fiber.Ctx) error {
	return c.Render("compose", fiber.Map{
		"Title": "Compose Email",
	})
}

// PreviewRequest carries the draft fields the preview rendering needs.
// Local audio/video files are represented by filename only; their bytes never
// leave the client before send.
type PreviewRequest struct {
	BodyHTML      string `json:"body_html"`
	AudioURL      string `json:"audio_url"`
	VideoURL      string `json:"video_url"`
	AudioFilename string `json:"audio_filename"`
	VideoFilename string `json:"video_filename"`
	Buttons       []struct {
		Label string `json:"label"`
		URL   string `json:"url"`
	} `json:"buttons"`
}

// HandlePreview renders the preview-mode HTML body for a posted draft.
func (h *ComposeHandler) HandlePreview(c *fiber.Ctx) error {
	var req PreviewRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestError("Invalid request", err)
	}

	draft := composer.New()
	draft.BodyHTML = req.BodyHTML
	draft.AudioURL = req.AudioURL
	draft.VideoURL = req.VideoURL
	if req.AudioFilename != "" {
		draft.AttachAudio(req.AudioFilename, nil)
	}
	if req.VideoFilename != "" {
		draft.AttachVideo(req.VideoFilename, nil)
	}
	for _, btn := range req.Buttons {
		draft.AddButton(btn.Label, btn.URL)
	}

	c.Type("html")
	return c.SendString(draft.BuildHTML(composer.Preview))
}
