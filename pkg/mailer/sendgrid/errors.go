package sendgrid

import "errors"

var (
	// ErrMissingAPIKey indicates the config has no API key.
	ErrMissingAPIKey = errors.New("sendgrid: api key is required")

	// ErrInvalidBaseURL indicates the base URL is not an absolute URL.
	ErrInvalidBaseURL = errors.New("sendgrid: invalid base url")

	// ErrEncodePayload indicates the payload could not be marshaled to JSON.
	ErrEncodePayload = errors.New("sendgrid: failed to encode payload")

	// ErrRequestFailed indicates no response was received from the API.
	ErrRequestFailed = errors.New("sendgrid: request failed")

	// ErrReadResponse indicates a response arrived but its body could not be read.
	ErrReadResponse = errors.New("sendgrid: failed to read response")
)
