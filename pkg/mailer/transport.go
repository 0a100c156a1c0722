package mailer

import "context"

// Transport delivers compiled payloads to a provider.
type Transport interface {
	// Deliver submits the payload. It never returns nil; failures are reported in the Result.
	Deliver(ctx context.Context, p *Payload) *Result

	// CreateBatchID asks the provider for a new batch id.
	// Returns ErrNoBatchID when none could be obtained.
	CreateBatchID(ctx context.Context) (string, error)
}
