package sendgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmitrymomot/gridmail/pkg/mailer"
)

const (
	mailSendPath  = "/v3/mail/send"
	mailBatchPath = "/v3/mail/batch"

	tracerName = "github.com/dmitrymomot/gridmail/pkg/mailer/sendgrid"
	userAgent  = "gridmail/1.0"

	// maxResponseBody caps how much of a response is kept for the journal.
	maxResponseBody = 1 << 20
)

// Client implements mailer.Transport for SendGrid.
type Client struct {
	http   *http.Client
	tracer trace.Tracer
	config Config
}

var _ mailer.Transport = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default instrumented HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTracerProvider sets the provider spans are created with.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		if tp != nil {
			c.tracer = tp.Tracer(tracerName)
		}
	}
}

// New creates a SendGrid client. The API key is required.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	c := &Client{
		config: cfg,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		tracer: otel.GetTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Deliver posts the payload to the mail send endpoint.
// Every received response yields a Result with its code, headers and body;
// encoding and network failures yield a Result carrying only the error.
func (c *Client) Deliver(ctx context.Context, p *mailer.Payload) *mailer.Result {
	ctx, span := c.tracer.Start(ctx, "sendgrid.mail.send", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	span.SetAttributes(
		attribute.Int("mail.personalizations", len(p.Personalizations)),
		attribute.Int("mail.attachments", len(p.Attachments)),
	)

	body, err := json.Marshal(p)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrEncodePayload, err)
		recordError(span, err)
		return mailer.FailedResult(err)
	}

	code, headers, respBody, err := c.post(ctx, mailSendPath, body)
	if code == 0 {
		recordError(span, err)
		return mailer.FailedResult(err)
	}

	res := mailer.NewResult(code, headers, respBody)
	res.Err = err
	if err != nil {
		span.RecordError(err)
	}
	span.SetAttributes(attribute.Int("http.response.status_code", code))
	if !res.Success {
		span.SetStatus(codes.Error, res.Message())
	}
	return res
}

// CreateBatchID requests a new batch id. Anything but a 201 carrying a
// non-empty string "batch_id" yields mailer.ErrNoBatchID.
func (c *Client) CreateBatchID(ctx context.Context) (string, error) {
	ctx, span := c.tracer.Start(ctx, "sendgrid.mail.batch", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	code, _, body, err := c.post(ctx, mailBatchPath, nil)
	if err != nil {
		recordError(span, err)
		return "", fmt.Errorf("%w: %v", mailer.ErrNoBatchID, err)
	}
	span.SetAttributes(attribute.Int("http.response.status_code", code))

	if code != http.StatusCreated {
		err := fmt.Errorf("%w: %s", mailer.ErrNoBatchID, mailer.StatusText(code))
		recordError(span, err)
		return "", err
	}

	var decoded struct {
		BatchID string `json:"batch_id"`
	}
	if err := json.Unmarshal([]byte(body), &decoded); err != nil {
		err = fmt.Errorf("%w: %v", mailer.ErrNoBatchID, err)
		recordError(span, err)
		return "", err
	}
	if decoded.BatchID == "" {
		err := fmt.Errorf("%w: empty batch_id", mailer.ErrNoBatchID)
		recordError(span, err)
		return "", err
	}

	span.SetAttributes(attribute.String("mail.batch_id", decoded.BatchID))
	return decoded.BatchID, nil
}

// post sends an authenticated JSON request. code is 0 when no response was received.
func (c *Client) post(ctx context.Context, path string, body []byte) (int, http.Header, string, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, reader)
	if err != nil {
		return 0, nil, "", fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, "", fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return resp.StatusCode, resp.Header, string(respBody), fmt.Errorf("%w: %v", ErrReadResponse, err)
	}
	return resp.StatusCode, resp.Header, string(respBody), nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
