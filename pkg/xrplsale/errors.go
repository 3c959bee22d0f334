package xrplsale

import (
	"errors"
	"fmt"
	"net/http"
)

// Static configuration errors. These are never retried.
var (
	ErrConfigRequired        = errors.New("config is required")
	ErrAPIKeyRequired        = errors.New("API key is required")
	ErrInvalidEnvironment    = errors.New("invalid environment")
	ErrInvalidBaseURL        = errors.New("invalid base URL")
	ErrInvalidRequestPath    = errors.New("invalid request path")
	ErrWebhookSecretRequired = errors.New("webhook secret is not configured")
)

// ErrInvalidSignature is returned when a webhook payload fails signature
// verification.
var ErrInvalidSignature = errors.New("webhook signature mismatch")

// ErrNoMoreItems is returned by PaginationIterator.Next once the sequence is
// exhausted.
var ErrNoMoreItems = errors.New("no more items")

// Sentinel errors for matching API failures with errors.Is.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("resource not found")
	ErrRateLimited  = errors.New("rate limit exceeded")
)

// APIError represents a non-2xx response from the API. Message carries the
// raw response body verbatim. RetryAfter is set only for 429 responses that
// include a numeric Retry-After header, in seconds.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
	RetryAfter *int
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d at %s: %s", e.StatusCode, e.URL, e.Message)
	}

	return fmt.Sprintf("API error %d at %s", e.StatusCode, e.URL)
}

// Is maps well-known status codes onto their sentinel errors so callers can
// branch with errors.Is.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return target == ErrBadRequest
	case http.StatusUnauthorized:
		return target == ErrUnauthorized
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusTooManyRequests:
		return target == ErrRateLimited
	}

	return false
}

// TransportError represents a connection-level failure (dial error, timeout,
// cancellation). It wraps the error from the last attempt after the retry
// budget is exhausted.
type TransportError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error for %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError represents a 2xx response whose body could not be decoded into
// the expected type.
type ParseError struct {
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing response: %v", e.Err)
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsBadRequest checks if the error is a 400 response.
func IsBadRequest(err error) bool {
	return errors.Is(err, ErrBadRequest)
}

// IsUnauthorized checks if the error is a 401 response.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsRateLimited checks if the error is a 429 response.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsTransport checks if the error is a connection-level failure.
func IsTransport(err error) bool {
	transportErr := &TransportError{}

	return errors.As(err, &transportErr)
}

// IsParse checks if the error is a response decode failure.
func IsParse(err error) bool {
	parseErr := &ParseError{}

	return errors.As(err, &parseErr)
}

// RetryAfterHint extracts the Retry-After hint (in seconds) from a
// rate-limit error, if the server provided one.
func RetryAfterHint(err error) (int, bool) {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) && apiErr.RetryAfter != nil {
		return *apiErr.RetryAfter, true
	}

	return 0, false
}
