package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/gridmail/pkg/journal"
	"github.com/dmitrymomot/gridmail/pkg/logger"
	"github.com/dmitrymomot/gridmail/pkg/mailer"
	"github.com/dmitrymomot/gridmail/pkg/mailer/resend"
	"github.com/dmitrymomot/gridmail/pkg/mailer/sendgrid"
	"github.com/dmitrymomot/gridmail/pkg/redis"
	"github.com/dmitrymomot/gridmail/pkg/storage"
)

var errMissingResendKey = errors.New("resend: RESEND_API_KEY is required")

// app wires the configured collaborators into one Mailer.
type app struct {
	mailer *mailer.Mailer
	logger *slog.Logger
	redis  goredis.UniversalClient
	sentry bool
}

type appOptions struct {
	templatesDir string
	dryRun       bool
}

func newApp(ctx context.Context, cfg *Config, logOut io.Writer, opts appOptions) (*app, error) {
	l := logger.NewWithSentry(cfg.Log, cfg.Sentry, logOut, mailer.SendIDExtractor())
	a := &app{logger: l, sentry: cfg.Sentry.DSN != ""}

	transport, err := newTransport(cfg, l, opts.dryRun)
	if err != nil {
		return nil, err
	}

	store, err := newStore(cfg)
	if err != nil {
		return nil, err
	}

	mopts := []mailer.Option{
		mailer.WithLogger(l),
		mailer.WithAttachmentStore(store),
	}
	if opts.templatesDir != "" {
		mopts = append(mopts, mailer.WithRenderer(mailer.NewRenderer(os.DirFS(opts.templatesDir))))
	}

	if cfg.Redis.URL != "" {
		client, err := redis.OpenConfig(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.redis = client
		j := journal.NewRedis(client, journal.WithTTL(cfg.JournalTTL))
		l.DebugContext(ctx, "journal session", slog.String("session", j.Session()))
		mopts = append(mopts, mailer.WithJournal(j))
	}

	a.mailer = mailer.New(transport, cfg.Mailer, mopts...)
	return a, nil
}

func newTransport(cfg *Config, l *slog.Logger, dryRun bool) (mailer.Transport, error) {
	provider := cfg.Provider
	if dryRun {
		provider = ProviderLog
	}

	switch provider {
	case ProviderSendGrid:
		client, err := sendgrid.New(cfg.SendGrid)
		if err != nil {
			return nil, err
		}
		return client, nil
	case ProviderResend:
		if cfg.Resend.APIKey == "" {
			return nil, errMissingResendKey
		}
		return resend.New(cfg.Resend, resend.WithLogger(l)), nil
	case ProviderLog:
		return mailer.NewLogTransport(l), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
}

func newStore(cfg *Config) (storage.Store, error) {
	if !cfg.Storage.Enabled() {
		return storage.NewDisk(""), nil
	}
	s3, err := storage.New(cfg.Storage)
	if err != nil {
		return nil, err
	}
	return s3, nil
}

func (a *app) Close() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error("failed to close redis", slog.Any("error", err))
		}
	}
	if a.sentry {
		sentry.Flush(2 * time.Second)
	}
}
