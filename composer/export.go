package composer

import "fmt"

// ExportText returns the subject and plain-text body as one block for
// copying into a third-party mail client.
func (t *Template) ExportText() string {
	return fmt.Sprintf("Subject: %s\n\n%s", t.Subject, t.PlainBody())
}

// ExportHTML returns the full send-mode HTML body for clipboard copy, so the
// pasted markup never references client-local files.
func (t *Template) ExportHTML() string {
	return t.BuildHTML(Send)
}
