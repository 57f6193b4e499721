package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

type ServerConfig struct {
	Port int `toml:"port"`
}

type SMTPConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Secure   bool   `toml:"secure"` // true for implicit TLS (port 465), false for STARTTLS (port 587)
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

type ClientConfig struct {
	SendEndpoint string `toml:"send_endpoint"` // explicit override for the composer's send URL
	ChatAPIBase  string `toml:"chat_api_base"` // fallback origin the send URL is derived from
}

type Config struct {
	Server ServerConfig `toml:"server"`
	SMTP   SMTPConfig   `toml:"smtp"`
	Client ClientConfig `toml:"client"`
}

// Load builds the process-wide configuration: defaults, then an optional TOML
// file, then environment variables on top. Missing SMTP credentials are not an
// error here; they surface per request via MissingVars, since the relay has no
// startup validation phase. On a malformed config file the returned error is
// non-nil but the config is still usable (defaults plus environment), so the
// caller can log and keep running.
func Load(filepath string) (*Config, error) {
	var config Config
	var loadErr error

	// Set default values
	config.Server.Port = 3001
	config.SMTP.Port = 587
	config.SMTP.Secure = false

	if filepath != "" {
		if _, err := os.Stat(filepath); err == nil {
			if _, err := toml.DecodeFile(filepath, &config); err != nil {
				loadErr = fmt.Errorf("config file error: %w", err)
			}
		}
	}

	applyEnv(&config)

	return &config, loadErr
}

func applyEnv(config *Config) {
	setString(&config.SMTP.Host, "SMTP_HOST")
	setInt(&config.SMTP.Port, "SMTP_PORT")
	setString(&config.SMTP.Username, "SMTP_USER")
	setString(&config.SMTP.Password, "SMTP_PASS")
	setBool(&config.SMTP.Secure, "SMTP_SECURE")
	setString(&config.SMTP.From, "FROM_EMAIL")
	setInt(&config.Server.Port, "PORT")
	setString(&config.Client.SendEndpoint, "SEND_EMAIL_ENDPOINT")
	setString(&config.Client.ChatAPIBase, "CHAT_API_BASE")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

// Addr returns the SMTP dial address.
func (c *SMTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// FromAddress returns the configured sender, defaulting to the SMTP username.
func (c *SMTPConfig) FromAddress() string {
	if c.From != "" {
		return c.From
	}
	return c.Username
}

// MissingVars reports which required SMTP environment variables are unset.
// Checked per request: the relay starts fine without credentials and fails
// each send attempt with a message naming exactly what is missing.
func (c *SMTPConfig) MissingVars() []string {
	var missing []string
	if c.Host == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if c.Username == "" {
		missing = append(missing, "SMTP_USER")
	}
	if c.Password == "" {
		missing = append(missing, "SMTP_PASS")
	}
	return missing
}
