package composer

import (
	"testing"

	"sitemail/config"
)

func TestResolveEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		override    string
		chatAPIBase string
		want        string
	}{
		{
			name:     "explicit override wins",
			override: "https://mail.example.com/api/send-email",
			want:     "https://mail.example.com/api/send-email",
		},
		{
			name:        "override beats chat base",
			override:    "https://mail.example.com/send",
			chatAPIBase: "https://chat.example.com/api/chat",
			want:        "https://mail.example.com/send",
		},
		{
			name:        "derived from chat api origin",
			chatAPIBase: "https://chat.example.com/api/chat",
			want:        "https://chat.example.com/api/send-email",
		},
		{
			name:        "chat base with port",
			chatAPIBase: "http://localhost:3001/api/chat",
			want:        "http://localhost:3001/api/send-email",
		},
		{
			name: "same-origin fallback",
			want: "/api/send-email",
		},
		{
			name:        "unparsable chat base falls back",
			chatAPIBase: "not a url",
			want:        "/api/send-email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveEndpoint(tt.override, tt.chatAPIBase)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewClientUsesConfig(t *testing.T) {
	t.Parallel()

	c := NewClient(config.ClientConfig{ChatAPIBase: "https://chat.example.com/api/chat"})
	if c.Endpoint() != "https://chat.example.com/api/send-email" {
		t.Errorf("got %q", c.Endpoint())
	}
}
