package mailer

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/gridmail/pkg/logger"
)

type sendIDKey struct{}

// WithSendID stores the id of the current send attempt in the context.
func WithSendID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sendIDKey{}, id)
}

// SendIDFromContext returns the send id stored by Mailer.Send.
func SendIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sendIDKey{}).(string)
	return id, ok && id != ""
}

// SendIDExtractor adds "send_id" to every log record emitted during a send.
func SendIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id, ok := SendIDFromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.String("send_id", id), true
	}
}
