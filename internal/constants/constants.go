// Package constants defines shared defaults and header names for the SDK.
package constants

import "time"

// Version is the SDK version reported in the User-Agent header.
const Version = "1.0.0"

// DefaultUserAgent identifies the SDK on every request.
const DefaultUserAgent = "XRPLSale-Go-SDK/" + Version

// Header names used by the request pipeline.
const (
	HeaderAPIKey        = "X-API-Key"
	HeaderAuthorization = "Authorization"
	HeaderRetryAfter    = "Retry-After"
	HeaderContentType   = "Content-Type"
	HeaderAccept        = "Accept"
)

// ContentTypeJSON is the media type for request and response bodies.
const ContentTypeJSON = "application/json"

// Client defaults applied when the configuration leaves them unset.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultRetryMax   = 3
	DefaultRetryDelay = 1 * time.Second

	// MaxRetryBackoff caps the exponential backoff between retries.
	MaxRetryBackoff = 30 * time.Second
)
