package api

import (
	"encoding/base64"
	"fmt"
	"strings"

	"sitemail/models"
)

// decodeAttachments validates and decodes transport attachments into bytes.
// A malformed entry (empty filename, missing content, undecodable base64) is
// dropped with a warning rather than failing the whole send.
func decodeAttachments(in []models.TransportAttachment) ([]models.Attachment, []string) {
	var out []models.Attachment
	var warnings []string

	for i, ta := range in {
		name := strings.TrimSpace(ta.Filename)
		if name == "" {
			warnings = append(warnings, fmt.Sprintf("attachment %d dropped: missing filename", i+1))
			continue
		}
		if ta.Content == "" {
			warnings = append(warnings, fmt.Sprintf("attachment %q dropped: missing content", name))
			continue
		}
		content, err := base64.StdEncoding.DecodeString(ta.Content)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("attachment %q dropped: content is not valid base64", name))
			continue
		}
		out = append(out, models.Attachment{
			Filename:    name,
			ContentType: DetectContentType(name),
			Content:     content,
		})
	}

	return out, warnings
}
