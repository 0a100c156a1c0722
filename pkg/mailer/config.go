package mailer

// Config holds mailer configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	FromEmail       string `env:"MAILER_FROM_EMAIL"`
	FromName        string `env:"MAILER_FROM_NAME"`
	FallbackSubject string `env:"MAILER_FALLBACK_SUBJECT" envDefault:"Notification"`
	DefaultLayout   string `env:"MAILER_DEFAULT_LAYOUT" envDefault:"base.html"`
	Sandbox         bool   `env:"MAILER_SANDBOX" envDefault:"false"`
}

// DefaultFrom returns the configured sender, or a zero Recipient if none is configured.
func (c Config) DefaultFrom() Recipient {
	switch {
	case c.FromEmail == "":
		return Recipient{}
	case c.FromName != "":
		return NamedAddress(c.FromEmail, c.FromName)
	default:
		return Single(c.FromEmail)
	}
}
