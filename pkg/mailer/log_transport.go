package mailer

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrymomot/gridmail/pkg/logger"
)

// LogTransport writes payloads to a logger instead of delivering them.
// It answers like a provider in sandbox mode: valid, not queued.
type LogTransport struct {
	logger *slog.Logger
}

var _ Transport = (*LogTransport)(nil)

// NewLogTransport creates a transport that only logs.
func NewLogTransport(l *slog.Logger) *LogTransport {
	if l == nil {
		l = logger.NewNope()
	}
	return &LogTransport{logger: l}
}

func (t *LogTransport) Deliver(ctx context.Context, p *Payload) *Result {
	body, err := p.JSON(false)
	if err != nil {
		return FailedResult(err)
	}
	t.logger.InfoContext(ctx, "mail payload",
		slog.String("subject", p.Subject),
		slog.String("from", p.From.Email),
		slog.Int("personalizations", len(p.Personalizations)),
		slog.String("payload", string(body)),
	)
	return NewResult(StatusSandboxed, http.Header{}, "")
}

// CreateBatchID returns a locally generated id.
func (t *LogTransport) CreateBatchID(ctx context.Context) (string, error) {
	id := uuid.NewString()
	t.logger.InfoContext(ctx, "batch id created", slog.String("batch_id", id))
	return id, nil
}
