package journal

import "context"

// Journal records the outcome of delivery attempts.
type Journal interface {
	// AppendResponse stores one JSON-encoded raw provider response.
	AppendResponse(ctx context.Context, raw string) error

	// AppendError stores one human-readable failure description.
	AppendError(ctx context.Context, msg string) error

	// Responses returns all raw responses in insertion order.
	Responses(ctx context.Context) ([]string, error)

	// Errors returns all failure descriptions in insertion order.
	Errors(ctx context.Context) ([]string, error)
}
