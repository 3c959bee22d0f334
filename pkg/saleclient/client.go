// Package saleclient provides the main entry point for creating XRPL.Sale
// API clients.
package saleclient

import (
	"fmt"
	"strings"

	"github.com/xrplsale/xrplsale-go/internal/client"
	"github.com/xrplsale/xrplsale-go/internal/constants"
	"github.com/xrplsale/xrplsale-go/pkg/xrplsale"
)

// New creates a new XRPL.Sale API client. The configuration is validated and
// defaults are applied before any request can be made; no network I/O
// happens here.
func New(config *xrplsale.Config) (xrplsale.Client, error) {
	if config == nil {
		return nil, xrplsale.ErrConfigRequired
	}

	err := config.Validate()
	if err != nil {
		return nil, err
	}

	// Work on a copy so the caller's config stays untouched.
	cfg := *config
	applyDefaults(&cfg)

	if cfg.BaseURL != "" {
		cfg.BaseURL = normalizeBaseURL(cfg.BaseURL)
	}

	apiClient, err := client.New(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// applyDefaults fills unset optional fields: 30s timeout, 3 retries with a
// 1s base delay, production environment.
func applyDefaults(config *xrplsale.Config) {
	if config.Environment == "" {
		config.Environment = xrplsale.EnvironmentProduction
	}

	if config.Timeout <= 0 {
		config.Timeout = constants.DefaultTimeout
	}

	if config.RetryMax == 0 {
		config.RetryMax = constants.DefaultRetryMax
	}

	if config.RetryDelay <= 0 {
		config.RetryDelay = constants.DefaultRetryDelay
	}

	if config.UserAgent == "" {
		config.UserAgent = constants.DefaultUserAgent
	}
}

// normalizeBaseURL trims a trailing slash and adds https:// when no scheme
// is present.
func normalizeBaseURL(baseURL string) string {
	normalized := strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(normalized, "http://") && !strings.HasPrefix(normalized, "https://") {
		normalized = "https://" + normalized
	}

	return normalized
}
