package composer

import (
	"fmt"
	"html"
	"strings"

	"sitemail/utils"
)

// RenderMode selects how locally-attached media is rendered.
type RenderMode int

const (
	// Preview renders local audio/video files as disabled players with a
	// placeholder source, since the file exists only on the user's machine.
	Preview RenderMode = iota
	// Send renders local audio/video files as a text notice that the file is
	// attached separately. A client-local file reference is never embedded
	// as a media src in transported HTML.
	Send
)

// BuildHTML assembles the full email body: sanitized user HTML, then optional
// audio and video embeds, then button anchors. Remote audio/video URLs are
// always embedded as playable elements in both modes.
func (t *Template) BuildHTML(mode RenderMode) string {
	var b strings.Builder

	b.WriteString(utils.SanitizeBodyHTML(t.BodyHTML))

	writeMedia(&b, mode, "audio", t.AudioURL, t.AudioFile)
	writeMedia(&b, mode, "video", t.VideoURL, t.VideoFile)

	for _, btn := range t.Buttons {
		writeButton(&b, btn)
	}

	return b.String()
}

// PlainBody returns the plain-text rendition of the draft: the user-entered
// plain body when present, otherwise the HTML body stripped of markup.
func (t *Template) PlainBody() string {
	if strings.TrimSpace(t.BodyPlain) != "" {
		return t.BodyPlain
	}
	return utils.StripHTML(t.BodyHTML)
}

func writeMedia(b *strings.Builder, mode RenderMode, kind, remoteURL string, file *Attachment) {
	switch {
	case remoteURL != "":
		fmt.Fprintf(b, "\n<%s controls src=\"%s\"></%s>", kind, html.EscapeString(remoteURL), kind)
	case file != nil:
		if mode == Preview {
			// Placeholder src: the local file cannot play before send.
			fmt.Fprintf(b, "\n<%s controls src=\"\"></%s>\n<p><em>%s: %s</em></p>",
				kind, kind, kind, html.EscapeString(file.Filename))
		} else {
			fmt.Fprintf(b, "\n<p><em>The %s file &quot;%s&quot; is attached to this email.</em></p>",
				kind, html.EscapeString(file.Filename))
		}
	}
}

func writeButton(b *strings.Builder, btn Button) {
	// The URL goes in as the user typed it, attribute-escaped only.
	fmt.Fprintf(b,
		"\n<div style=\"margin:16px 0\"><a href=\"%s\" style=\"display:inline-block;padding:10px 24px;background:#1a73e8;color:#ffffff;text-decoration:none;border-radius:4px\">%s</a></div>",
		html.EscapeString(btn.URL), html.EscapeString(btn.Label))
}
