package sendgrid

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

// Config holds SendGrid API configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey  string        `env:"SENDGRID_API_KEY"`
	BaseURL string        `env:"SENDGRID_BASE_URL" envDefault:"https://api.sendgrid.com"`
	Timeout time.Duration `env:"SENDGRID_TIMEOUT" envDefault:"30s"`
}

// Defaults.
const (
	DefaultBaseURL = "https://api.sendgrid.com"
	DefaultTimeout = 30 * time.Second
)

func (c *Config) applyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return ErrMissingAPIKey
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.Join(ErrInvalidBaseURL, err)
	}
	return nil
}
