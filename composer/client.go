package composer

import (
	"encoding/json"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"sitemail/config"
	"sitemail/models"
)

// Result is the uniform outcome surfaced to the user. Every failure mode
// (network, non-2xx, application-level) collapses into type "error" with a
// message; the draft itself is untouched so the user can correct and resend.
type Result struct {
	Type     string   `json:"type"`
	Message  string   `json:"message"`
	Warnings []string `json:"warnings,omitempty"`
}

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// ResolveEndpoint picks the send-email URL: an explicit override wins,
// otherwise the URL is derived from the chat API base so one backend origin
// serves both purposes, otherwise the same-origin path is used.
func ResolveEndpoint(override, chatAPIBase string) string {
	if override != "" {
		return override
	}
	if chatAPIBase != "" {
		if u, err := url.Parse(chatAPIBase); err == nil && u.Scheme != "" && u.Host != "" {
			return u.Scheme + "://" + u.Host + "/api/send-email"
		}
	}
	return "/api/send-email"
}

// Client submits transportable payloads to the relay.
type Client struct {
	endpoint string
}

// NewClient builds a relay client from configuration.
func NewClient(cfg config.ClientConfig) *Client {
	return &Client{endpoint: ResolveEndpoint(cfg.SendEndpoint, cfg.ChatAPIBase)}
}

// Endpoint returns the resolved send-email URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Send submits the payload and converts every outcome into a Result. The
// relay's message text is surfaced verbatim; only transport failures get the
// generic cannot-reach wording that distinguishes them from application
// errors.
func (c *Client) Send(payload *models.SendEmailPayload) Result {
	agent := fiber.Post(c.endpoint)
	agent.JSON(payload)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return Result{Type: ResultError, Message: "Cannot reach the email service: " + errs[0].Error()}
	}

	var resp models.SendResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return Result{Type: ResultError, Message: "Unexpected response from the email service"}
	}
	if code != fiber.StatusOK || !resp.Success {
		return Result{Type: ResultError, Message: resp.Message}
	}
	return Result{Type: ResultSuccess, Message: resp.Message, Warnings: resp.Warnings}
}
