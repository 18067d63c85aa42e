package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	// ErrProviderUnavailable is returned when no provider is configured or the circuit is open.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrNotFound is returned when the upstream has no record for the requested id.
	ErrNotFound = errors.New("not found")
)

// StatusError captures a non-2xx upstream response.
type StatusError struct {
	Provider   string
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: unexpected status %d", e.Provider, e.Operation, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Unwrap lets errors.Is(err, ErrNotFound) match upstream 404s.
func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var stErr *StatusError
	if errors.As(err, &stErr) {
		return stErr, true
	}
	return nil, false
}

// IsRetryable reports whether another attempt could plausibly succeed.
// Rate limits and 5xx responses are retryable; other 4xx, missing records,
// cancellation, and an open circuit are not. Transport errors are retried.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if _, ok := AsRateLimitError(err); ok {
		return true
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrProviderUnavailable) {
		return false
	}
	if st, ok := AsStatusError(err); ok {
		return st.StatusCode >= http.StatusInternalServerError
	}
	return true
}

// IsClientError reports whether err reflects a problem with the request rather than upstream health.
func IsClientError(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	if st, ok := AsStatusError(err); ok {
		return st.StatusCode >= 400 && st.StatusCode < 500
	}
	return false
}
