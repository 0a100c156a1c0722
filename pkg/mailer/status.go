package mailer

import (
	"fmt"
	"net/http"
)

// Status codes the provider answers a mail send with on success.
const (
	StatusSandboxed = http.StatusOK
	StatusQueued    = http.StatusAccepted
)

var statusText = map[int]string{
	http.StatusOK:                    "Your message is valid, but it is not queued to be delivered. (Sandbox)",
	http.StatusAccepted:              "Your message is both valid, and queued to be delivered.",
	http.StatusBadRequest:            "Bad Request!",
	http.StatusUnauthorized:          "You do not have authorization to make the request! Your API Key is probably missing or incorrect!",
	http.StatusForbidden:             "Forbidden!",
	http.StatusNotFound:              "The resource you tried to locate could not be found or does not exist.",
	http.StatusMethodNotAllowed:      "Method Not Allowed!",
	http.StatusRequestEntityTooLarge: "The JSON payload you have included in your request is too large.",
	http.StatusUnsupportedMediaType:  "Unsupported Media Type",
	http.StatusTooManyRequests:       "The number of requests you have made exceeds SendGrid’s rate limitations.",
	http.StatusInternalServerError:   "An error occurred on a SendGrid server.",
	http.StatusServiceUnavailable:    "The SendGrid v3 Web API is not available.",
}

// StatusText describes a mail send status code.
func StatusText(code int) string {
	if text, ok := statusText[code]; ok {
		return text
	}
	return fmt.Sprintf("%d: An unknown error was encountered!", code)
}

// IsDelivered reports whether the provider accepted the message.
func IsDelivered(code int) bool {
	return code == StatusQueued || code == StatusSandboxed
}
