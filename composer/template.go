// Package composer manages an email draft from first keystroke to a
// transportable payload: recipients, subject, rich and plain bodies, file
// attachments, inline audio/video and call-to-action buttons.
package composer

import (
	"fmt"

	"github.com/google/uuid"
)

// Attachment is a file selected in the composer. Entries are keyed by a
// generated id so two attachments with the same filename remain independently
// removable.
type Attachment struct {
	ID       string
	Filename string
	Content  []byte
}

// Button is a call-to-action rendered into the email body as an anchor.
// The URL is embedded as the user typed it; well-formedness is not checked.
type Button struct {
	ID    string
	Label string
	URL   string
}

// Template is the composer's working draft. It lives for one composing
// session and is never persisted; every form interaction mutates it and
// closing the composer discards it.
type Template struct {
	To        string
	Cc        string
	Bcc       string
	Subject   string
	BodyHTML  string
	BodyPlain string

	Attachments []Attachment
	AudioFile   *Attachment
	AudioURL    string
	VideoFile   *Attachment
	VideoURL    string
	Buttons     []Button
}

// New creates an empty draft.
func New() *Template {
	return &Template{}
}

// DraftChange is a partial update to the draft. Nil fields leave the
// corresponding draft field untouched, so every keystroke can be applied
// without clobbering sibling fields.
type DraftChange struct {
	To        *string
	Cc        *string
	Bcc       *string
	Subject   *string
	BodyHTML  *string
	BodyPlain *string
	AudioURL  *string
	VideoURL  *string
}

// Apply merges a partial change into the draft. No validation happens here;
// validation is deferred to send time so the draft is always renderable.
func (t *Template) Apply(ch DraftChange) {
	if ch.To != nil {
		t.To = *ch.To
	}
	if ch.Cc != nil {
		t.Cc = *ch.Cc
	}
	if ch.Bcc != nil {
		t.Bcc = *ch.Bcc
	}
	if ch.Subject != nil {
		t.Subject = *ch.Subject
	}
	if ch.BodyHTML != nil {
		t.BodyHTML = *ch.BodyHTML
	}
	if ch.BodyPlain != nil {
		t.BodyPlain = *ch.BodyPlain
	}
	if ch.AudioURL != nil {
		t.AudioURL = *ch.AudioURL
	}
	if ch.VideoURL != nil {
		t.VideoURL = *ch.VideoURL
	}
}

func newID() string {
	return uuid.NewString()
}

// AddAttachment appends a file to the draft and returns its generated id.
func (t *Template) AddAttachment(filename string, content []byte) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("attachment filename cannot be empty")
	}
	att := Attachment{ID: newID(), Filename: filename, Content: content}
	t.Attachments = append(t.Attachments, att)
	return att.ID, nil
}

// RemoveAttachment removes an attachment by id. Removal is by id, not
// filename, so duplicate-named files stay independently removable.
func (t *Template) RemoveAttachment(id string) bool {
	for i, att := range t.Attachments {
		if att.ID == id {
			t.Attachments = append(t.Attachments[:i], t.Attachments[i+1:]...)
			return true
		}
	}
	return false
}

// AttachAudio sets a locally-selected audio file, replacing any previous one.
func (t *Template) AttachAudio(filename string, content []byte) {
	t.AudioFile = &Attachment{ID: newID(), Filename: filename, Content: content}
}

// AttachVideo sets a locally-selected video file, replacing any previous one.
func (t *Template) AttachVideo(filename string, content []byte) {
	t.VideoFile = &Attachment{ID: newID(), Filename: filename, Content: content}
}

// AddButton appends a call-to-action button and returns its generated id.
func (t *Template) AddButton(label, url string) string {
	btn := Button{ID: newID(), Label: label, URL: url}
	t.Buttons = append(t.Buttons, btn)
	return btn.ID
}

// ButtonChange is a field-level update to a button; nil fields are kept.
type ButtonChange struct {
	Label *string
	URL   *string
}

// UpdateButton merges a change into the button with the given id. The merge
// is field-level so edits to label and url do not clobber each other.
func (t *Template) UpdateButton(id string, ch ButtonChange) bool {
	for i := range t.Buttons {
		if t.Buttons[i].ID != id {
			continue
		}
		if ch.Label != nil {
			t.Buttons[i].Label = *ch.Label
		}
		if ch.URL != nil {
			t.Buttons[i].URL = *ch.URL
		}
		return true
	}
	return false
}

// RemoveButton removes a button by id.
func (t *Template) RemoveButton(id string) bool {
	for i, btn := range t.Buttons {
		if btn.ID == id {
			t.Buttons = append(t.Buttons[:i], t.Buttons[i+1:]...)
			return true
		}
	}
	return false
}
