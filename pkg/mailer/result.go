package mailer

import (
	"encoding/json"
	"net/http"
)

// Result is the outcome of one delivery attempt.
type Result struct {
	Headers    http.Header
	Err        error
	Body       string
	StatusCode int
	Success    bool
}

// NewResult classifies a received response.
func NewResult(code int, headers http.Header, body string) *Result {
	return &Result{
		Success:    IsDelivered(code),
		StatusCode: code,
		Headers:    headers,
		Body:       body,
	}
}

// FailedResult is a result for an attempt that never got a response.
func FailedResult(err error) *Result {
	return &Result{Err: err}
}

// Received reports whether the provider answered at all.
func (r *Result) Received() bool {
	return r.StatusCode != 0
}

// Message is the human-readable outcome. Received responses are described by
// their status text; Err is only surfaced when the provider never answered.
func (r *Result) Message() string {
	if r.Received() {
		return StatusText(r.StatusCode)
	}
	if r.Err != nil {
		return r.Err.Error()
	}
	return ErrSendFailed.Error()
}

type rawResponse struct {
	Headers http.Header `json:"headers"`
	Body    string      `json:"body"`
	Code    int         `json:"code"`
}

// Raw encodes the response as {"code","headers","body"} JSON.
func (r *Result) Raw() string {
	headers := r.Headers
	if headers == nil {
		headers = http.Header{}
	}
	b, err := json.Marshal(rawResponse{Code: r.StatusCode, Headers: headers, Body: r.Body})
	if err != nil {
		return ""
	}
	return string(b)
}
