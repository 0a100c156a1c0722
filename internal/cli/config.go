package cli

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/gridmail/pkg/logger"
	"github.com/dmitrymomot/gridmail/pkg/mailer"
	"github.com/dmitrymomot/gridmail/pkg/mailer/resend"
	"github.com/dmitrymomot/gridmail/pkg/mailer/sendgrid"
	"github.com/dmitrymomot/gridmail/pkg/redis"
	"github.com/dmitrymomot/gridmail/pkg/storage"
)

// Providers selectable with MAILER_PROVIDER.
const (
	ProviderSendGrid = "sendgrid"
	ProviderResend   = "resend"
	ProviderLog      = "log"
)

// Config is the full CLI configuration, read from the environment.
type Config struct {
	Provider   string        `env:"MAILER_PROVIDER" envDefault:"sendgrid"`
	JournalTTL time.Duration `env:"JOURNAL_TTL" envDefault:"168h"`

	Mailer   mailer.Config
	SendGrid sendgrid.Config
	Resend   resend.Config
	Storage  storage.Config
	Redis    redis.Config
	Log      logger.Config
	Sentry   logger.SentryConfig
}

// LoadConfig reads an optional .env file and parses the environment.
// An explicitly named file must exist; the default .env may be missing.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
