package api

import (
	"bytes"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"math/rand"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sitemail/config"
	"sitemail/models"
	"sitemail/utils"
)

// SMTPClient sends a single message through an SMTP provider. A fresh client
// is built per request from configuration; nothing is pooled or reused.
type SMTPClient struct {
	cfg config.SMTPConfig
}

// NewSMTPClient creates an SMTP client from relay configuration.
func NewSMTPClient(cfg *config.SMTPConfig) *SMTPClient {
	return &SMTPClient{cfg: *cfg}
}

// Send authenticates to the provider and dispatches the message. Once
// dispatched the send runs to completion or error; there is no cancellation.
func (c *SMTPClient) Send(msg *models.OutgoingMessage) error {
	addr := c.cfg.Addr()
	tlsConfig := &tls.Config{ServerName: c.cfg.Host}

	var client *smtp.Client
	if c.cfg.Secure {
		// Implicit TLS, port 465 semantics
		conn, err := tls.Dial("tcp", addr, tlsConfig)
		if err != nil {
			return fmt.Errorf("dial failed: %v", err)
		}
		client, err = smtp.NewClient(conn, c.cfg.Host)
		if err != nil {
			conn.Close()
			return fmt.Errorf("smtp handshake failed: %v", err)
		}
	} else {
		var err error
		client, err = smtp.Dial(addr)
		if err != nil {
			return fmt.Errorf("dial failed: %v", err)
		}
		if err := client.StartTLS(tlsConfig); err != nil {
			client.Close()
			return fmt.Errorf("starttls failed: %v", err)
		}
	}
	defer client.Close()

	auth := smtp.PlainAuth("", c.cfg.Username, c.cfg.Password, c.cfg.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("auth failed: %v", err)
	}

	if err := client.Mail(msg.From); err != nil {
		return fmt.Errorf("mail from failed: %v", err)
	}
	for _, rcpt := range msg.AllRecipients() {
		if err := client.Rcpt(rcpt); err != nil {
			return fmt.Errorf("rcpt to %s failed: %v", rcpt, err)
		}
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("data failed: %v", err)
	}
	if _, err := writer.Write(buildMessage(msg)); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("data close failed: %v", err)
	}

	return client.Quit()
}

// buildMessage renders the message as MIME: multipart/mixed when attachments
// are present, multipart/alternative for HTML with a plain-text fallback,
// plain text otherwise. Bcc recipients stay off the headers.
func buildMessage(msg *models.OutgoingMessage) []byte {
	var buf bytes.Buffer

	mixedBoundary := fmt.Sprintf("mixed-%s", generateBoundary())
	altBoundary := fmt.Sprintf("alt-%s", generateBoundary())

	writeHeader := func(k, v string) {
		fmt.Fprintf(&buf, "%s: %s\r\n", k, v)
	}
	writeHeader("Date", time.Now().Format(time.RFC1123Z))
	writeHeader("From", msg.From)
	writeHeader("To", strings.Join(msg.To, ", "))
	if len(msg.Cc) > 0 {
		writeHeader("Cc", strings.Join(msg.Cc, ", "))
	}
	writeHeader("Subject", msg.Subject)
	writeHeader("MIME-Version", "1.0")
	writeHeader("Message-ID", fmt.Sprintf("<%s@%s>", generateMessageID(), domainOf(msg.From)))

	hasHTML := msg.HTML != ""
	switch {
	case len(msg.Attachments) > 0:
		writeHeader("Content-Type", fmt.Sprintf("multipart/mixed; boundary=\"%s\"", mixedBoundary))
	case hasHTML:
		writeHeader("Content-Type", fmt.Sprintf("multipart/alternative; boundary=\"%s\"", altBoundary))
	default:
		writeHeader("Content-Type", "text/plain; charset=\"utf-8\"")
	}
	buf.WriteString("\r\n")

	if len(msg.Attachments) > 0 {
		fmt.Fprintf(&buf, "--%s\r\n", mixedBoundary)
		if hasHTML {
			fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", altBoundary)
			writeAlternativePart(&buf, msg, altBoundary)
			fmt.Fprintf(&buf, "--%s--\r\n", altBoundary)
		} else {
			fmt.Fprintf(&buf, "Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s\r\n", plainPart(msg))
		}

		for _, att := range msg.Attachments {
			contentType := att.ContentType
			if contentType == "" {
				contentType = DetectContentType(att.Filename)
			}
			fmt.Fprintf(&buf, "--%s\r\n", mixedBoundary)
			fmt.Fprintf(&buf, "Content-Type: %s; name=\"%s\"\r\n", contentType, att.Filename)
			fmt.Fprintf(&buf, "Content-Disposition: attachment; filename=\"%s\"\r\n", att.Filename)
			fmt.Fprintf(&buf, "Content-Transfer-Encoding: base64\r\n\r\n")

			b64 := base64.StdEncoding.EncodeToString(att.Content)
			for i := 0; i < len(b64); i += 76 {
				end := i + 76
				if end > len(b64) {
					end = len(b64)
				}
				fmt.Fprintf(&buf, "%s\r\n", b64[i:end])
			}
		}
		fmt.Fprintf(&buf, "--%s--\r\n", mixedBoundary)
	} else if hasHTML {
		writeAlternativePart(&buf, msg, altBoundary)
		fmt.Fprintf(&buf, "--%s--\r\n", altBoundary)
	} else {
		buf.WriteString(plainPart(msg))
	}

	return buf.Bytes()
}

func writeAlternativePart(buf *bytes.Buffer, msg *models.OutgoingMessage, boundary string) {
	fmt.Fprintf(buf, "--%s\r\n", boundary)
	fmt.Fprintf(buf, "Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	fmt.Fprintf(buf, "%s\r\n", plainPart(msg))

	fmt.Fprintf(buf, "--%s\r\n", boundary)
	fmt.Fprintf(buf, "Content-Type: text/html; charset=\"utf-8\"\r\n\r\n")
	fmt.Fprintf(buf, "%s\r\n", msg.HTML)
}

func plainPart(msg *models.OutgoingMessage) string {
	if msg.Text != "" {
		return msg.Text
	}
	return utils.StripHTML(msg.HTML)
}

func domainOf(email string) string {
	if i := strings.LastIndex(email, "@"); i >= 0 {
		return email[i+1:]
	}
	return "localhost"
}

func generateBoundary() string {
	return fmt.Sprintf("%x", rand.Int63())
}

// generateMessageID creates a unique Message-ID for the email
func generateMessageID() string {
	return fmt.Sprintf("%d.%d.%d",
		time.Now().UnixNano(),
		os.Getpid(),
		rand.Int63())
}

// DetectContentType maps a filename extension to a MIME type.
func DetectContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return "text/plain"
	case ".html":
		return "text/html"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".pdf":
		return "application/pdf"
	case ".zip":
		return "application/zip"
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	default:
		return "application/octet-stream"
	}
}
