package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RecipientList is the wire form of an address list. Clients send either a
// single comma-separated string or an array of strings; both decode into the
// same type so normalization happens in exactly one place.
type RecipientList []string

// UnmarshalJSON accepts a JSON string or an array of strings.
func (r *RecipientList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*r = RecipientList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*r = RecipientList(many)
		return nil
	}

	return fmt.Errorf("recipient list must be a string or an array of strings")
}

// MarshalJSON always emits the array form.
func (r RecipientList) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(r))
}

// Normalize splits every entry on commas, trims whitespace and drops empty
// entries, producing the canonical address slice used past the boundary.
func (r RecipientList) Normalize() []string {
	var out []string
	for _, entry := range r {
		for _, addr := range strings.Split(entry, ",") {
			addr = strings.TrimSpace(addr)
			if addr != "" {
				out = append(out, addr)
			}
		}
	}
	return out
}

// TransportAttachment is an attachment as it crosses the wire: file content
// base64-encoded into a string.
type TransportAttachment struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// SendEmailPayload is the sole boundary object between the composer and the
// relay. It is self-contained: the relay needs no state beyond this payload
// and its own SMTP configuration.
type SendEmailPayload struct {
	To          RecipientList         `json:"to"`
	Cc          RecipientList         `json:"cc,omitempty"`
	Bcc         RecipientList         `json:"bcc,omitempty"`
	Subject     string                `json:"subject"`
	HTML        string                `json:"html,omitempty"`
	Text        string                `json:"text,omitempty"`
	Attachments []TransportAttachment `json:"attachments,omitempty"`
}

// Attachment is a decoded attachment ready for MIME encoding.
type Attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Content     []byte `json:"-"`
}

// OutgoingMessage is the fully-normalized message handed to the SMTP client.
type OutgoingMessage struct {
	From        string
	To          []string
	Cc          []string
	Bcc         []string
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
}

// AllRecipients returns every envelope recipient (to + cc + bcc).
func (m *OutgoingMessage) AllRecipients() []string {
	out := make([]string, 0, len(m.To)+len(m.Cc)+len(m.Bcc))
	out = append(out, m.To...)
	out = append(out, m.Cc...)
	out = append(out, m.Bcc...)
	return out
}

// SendResponse is the relay's JSON response body for every outcome.
type SendResponse struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Warnings []string `json:"warnings,omitempty"`
}
