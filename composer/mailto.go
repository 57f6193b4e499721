package composer

import (
	"net/url"
	"strings"

	"sitemail/models"
)

// MailtoURI builds a mailto: link handing the draft off to the user's own
// mail client. The second return reports whether the draft carries files the
// mailto mechanism cannot transport, so the caller can warn the user to
// attach them manually.
func (t *Template) MailtoURI() (string, bool) {
	to := strings.Join(models.RecipientList{t.To}.Normalize(), ",")

	q := url.Values{}
	if cc := strings.Join(models.RecipientList{t.Cc}.Normalize(), ","); cc != "" {
		q.Set("cc", cc)
	}
	if bcc := strings.Join(models.RecipientList{t.Bcc}.Normalize(), ","); bcc != "" {
		q.Set("bcc", bcc)
	}
	if t.Subject != "" {
		q.Set("subject", t.Subject)
	}
	if body := t.PlainBody(); body != "" {
		q.Set("body", body)
	}

	uri := "mailto:" + to
	if query := q.Encode(); query != "" {
		// mailto handlers expect percent-encoded spaces, not '+'.
		uri += "?" + strings.ReplaceAll(query, "+", "%20")
	}

	needsAttachmentWarning := len(t.Attachments) > 0 || t.AudioFile != nil || t.VideoFile != nil
	return uri, needsAttachmentWarning
}
