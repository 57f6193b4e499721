package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"sitemail/config"
	"sitemail/models"
	"sitemail/utils"
)

// Mailer dispatches one fully-normalized message to an SMTP provider.
type Mailer interface {
	Send(*models.OutgoingMessage) error
}

// SendHandler handles email sending. It is stateless: every request parses,
// validates and sends independently, and nothing is retained afterwards.
type SendHandler struct {
	config    *config.Config
	newMailer func(*config.SMTPConfig) Mailer
}

// NewSendHandler creates a new send handler
func NewSendHandler(cfg *config.Config) *SendHandler {
	return &SendHandler{
		config: cfg,
		newMailer: func(smtpCfg *config.SMTPConfig) Mailer {
			return NewSMTPClient(smtpCfg)
		},
	}
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.SendResponse{Success: false, Message: message})
}

// HandlePreflight answers OPTIONS on the send endpoint with 204 and the
// permissive CORS headers, including requests without an Origin header that
// the cors middleware passes through untouched.
func HandlePreflight(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	c.Set(fiber.HeaderAccessControlAllowMethods, "GET,POST,OPTIONS")
	c.Set(fiber.HeaderAccessControlAllowHeaders, "Content-Type")
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleSend accepts a transportable payload and forwards it to the SMTP
// provider. Per request the flow is terminal in one pass: parse, normalize
// recipients, validate, decode attachments, authenticate, send.
func (h *SendHandler) HandleSend(c *fiber.Ctx) error {
	var payload models.SendEmailPayload
	if err := c.BodyParser(&payload); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON body")
	}

	to := payload.To.Normalize()
	if len(to) == 0 {
		return fail(c, fiber.StatusBadRequest, `At least one "to" recipient is required`)
	}
	if strings.TrimSpace(payload.Subject) == "" {
		return fail(c, fiber.StatusBadRequest, "Subject is required")
	}

	attachments, warnings := decodeAttachments(payload.Attachments)
	for _, w := range warnings {
		utils.Log.Warn("send-email: %s", w)
	}

	if missing := h.config.SMTP.MissingVars(); len(missing) > 0 {
		return fail(c, fiber.StatusInternalServerError,
			"Missing SMTP configuration: "+strings.Join(missing, ", "))
	}

	msg := &models.OutgoingMessage{
		From:        h.config.SMTP.FromAddress(),
		To:          to,
		Cc:          payload.Cc.Normalize(),
		Bcc:         payload.Bcc.Normalize(),
		Subject:     payload.Subject,
		HTML:        payload.HTML,
		Text:        payload.Text,
		Attachments: attachments,
	}

	if err := h.newMailer(&h.config.SMTP).Send(msg); err != nil {
		utils.Log.Error("send-email failed: to=%s subject=%s: %v", strings.Join(to, ","), payload.Subject, err)
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}

	utils.Log.Info("Email sent successfully: to=%s subject=%s attachments=%d",
		strings.Join(to, ","), payload.Subject, len(attachments))

	return c.JSON(models.SendResponse{
		Success:  true,
		Message:  "Email sent successfully",
		Warnings: warnings,
	})
}
