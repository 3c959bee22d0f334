package xrplsale

import (
	"net/http"
	"time"
)

// Config represents client configuration for building a xrplsale.Client.
//
// # Authentication
//
// Every request carries either the static API key (X-API-Key header) or, when
// a session token has been set via Client.SetAuthToken, that token as a
// Bearer credential. The choice is made fresh on every request, so rotating
// the session token mid-session takes effect immediately.
//
// # Timeouts and retries
//
// Only transport-level failures (connection errors, timeouts) are retried;
// any completed HTTP response, success or failure, is terminal. RetryMax
// bounds the number of retries after the initial attempt, with exponential
// backoff starting at RetryDelay. Rate-limited (429) responses are not
// retried by the client; the Retry-After hint is surfaced on the error for
// the caller to act on.
type Config struct {
	// APIKey authenticates requests via the X-API-Key header. Required.
	APIKey string

	// Environment selects the default base URL. Defaults to production.
	Environment Environment

	// BaseURL overrides the environment's default base URL.
	BaseURL string

	// Timeout is the per-attempt HTTP timeout. Defaults to 30s.
	Timeout time.Duration

	// RetryMax is the number of retries after the initial attempt for
	// transport-level failures. 0 means the default of 3; a negative value
	// disables retries.
	RetryMax int

	// RetryDelay is the base backoff between retries; the delay doubles on
	// each subsequent retry. Defaults to 1s.
	RetryDelay time.Duration

	// WebhookSecret enables WebhookValidator for verifying inbound webhook
	// signatures.
	WebhookSecret string

	// Debug enables request/response logging through Logger.
	Debug bool

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Logger receives debug traces when Debug is set. Optional; a
	// zerolog-backed logger writing to stderr is used when unset.
	Logger Logger

	// HTTPClient optionally overrides the underlying *http.Client, mostly
	// useful for tests and custom transports.
	HTTPClient *http.Client
}

// Validate checks that the configuration can produce a working client. It
// performs no network I/O.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrAPIKeyRequired
	}

	return nil
}

// Client is the entry point to the XRPL.Sale API.
type Client interface {
	// Resource services
	Projects() ProjectsClient
	Investments() InvestmentsClient
	Analytics() AnalyticsClient
	Webhooks() WebhooksClient
	Auth() AuthClient

	// SetAuthToken sets the session bearer token used for subsequent
	// requests. It takes precedence over the static API key.
	SetAuthToken(token string)

	// ClearAuthToken removes the session token; requests fall back to the
	// static API key.
	ClearAuthToken()

	// AuthToken returns the current session token, if one is set.
	AuthToken() (string, bool)

	// WebhookValidator returns a signature validator for the configured
	// webhook secret, or ErrWebhookSecretRequired when none is configured.
	WebhookValidator() (*WebhookSignatureValidator, error)
}
