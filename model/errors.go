package model

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrKeyPoolExhausted means every key in the pool was rate-limited for one
// logical call, or the pool is empty.
var ErrKeyPoolExhausted = errors.New("all API keys exhausted")

// TransportError is a non-quota failure from the model service. It is
// propagated immediately and never retried across keys.
type TransportError struct {
	StatusCode int
	Message    string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("model service error: status %d: %s", e.StatusCode, e.Message)
}

// MalformedOutputError means the model reply could not be decoded as the
// expected JSON shape. Distinct from transport and quota failures, and
// never retried.
type MalformedOutputError struct {
	Raw string
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("malformed model output: %v", e.Err)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Err
}

// isQuotaSignal reports whether a failed call hit the provider's rate
// limit. Gemini signals this with HTTP 429 or an error body mentioning
// quota exhaustion.
func isQuotaSignal(statusCode int, body string) bool {
	if statusCode == http.StatusTooManyRequests {
		return true
	}
	return strings.Contains(body, "quota") || strings.Contains(body, "RESOURCE_EXHAUSTED")
}
