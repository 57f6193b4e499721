package composer

import (
	"encoding/base64"
	"errors"
	"strings"

	"sitemail/models"
)

var (
	// ErrNoRecipients means the draft resolves to zero "to" addresses.
	ErrNoRecipients = errors.New("at least one recipient is required")
	// ErrNoSubject means the subject is empty after trimming.
	ErrNoSubject = errors.New("a subject is required")
)

// BuildPayload freezes the draft into the transportable payload submitted to
// the relay. Recipient and subject checks mirror the relay's own validation
// so obvious mistakes surface before any network call. Attachments, plus any
// locally-selected audio/video files, are base64-encoded sequentially.
func (t *Template) BuildPayload() (*models.SendEmailPayload, error) {
	to := models.RecipientList{t.To}.Normalize()
	if len(to) == 0 {
		return nil, ErrNoRecipients
	}
	if strings.TrimSpace(t.Subject) == "" {
		return nil, ErrNoSubject
	}

	var attachments []models.TransportAttachment
	encode := func(att *Attachment) {
		if att == nil {
			return
		}
		attachments = append(attachments, models.TransportAttachment{
			Filename: att.Filename,
			Content:  base64.StdEncoding.EncodeToString(att.Content),
		})
	}
	for i := range t.Attachments {
		encode(&t.Attachments[i])
	}
	encode(t.AudioFile)
	encode(t.VideoFile)

	payload := &models.SendEmailPayload{
		To:          models.RecipientList(to),
		Subject:     t.Subject,
		HTML:        t.BuildHTML(Send),
		Text:        t.PlainBody(),
		Attachments: attachments,
	}
	if cc := (models.RecipientList{t.Cc}).Normalize(); len(cc) > 0 {
		payload.Cc = models.RecipientList(cc)
	}
	if bcc := (models.RecipientList{t.Bcc}).Normalize(); len(bcc) > 0 {
		payload.Bcc = models.RecipientList(bcc)
	}
	return payload, nil
}
