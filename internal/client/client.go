// Package client implements the xrplsale.Client interface and the resource
// services behind it.
package client

import (
	"github.com/xrplsale/xrplsale-go/internal/auth"
	"github.com/xrplsale/xrplsale-go/internal/constants"
	"github.com/xrplsale/xrplsale-go/internal/http"
	"github.com/xrplsale/xrplsale-go/pkg/xrplsale"
)

// Client implements the xrplsale.Client interface.
type Client struct {
	httpClient    *http.Client
	tokens        *auth.TokenStore
	webhookSecret string

	// Resource services
	projects    xrplsale.ProjectsClient
	investments xrplsale.InvestmentsClient
	analytics   xrplsale.AnalyticsClient
	webhooks    xrplsale.WebhooksClient
	authSvc     xrplsale.AuthClient
}

// New creates a client from a validated configuration with defaults already
// applied. The public constructor is saleclient.New.
func New(config *xrplsale.Config) (*Client, error) {
	err := config.Validate()
	if err != nil {
		return nil, err
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = config.Environment.BaseURL()
	}

	tokens := auth.NewTokenStore()
	httpClient := http.NewClient(baseURL, config.APIKey, tokens, buildHTTPOptions(config)...)

	client := &Client{
		httpClient:    httpClient,
		tokens:        tokens,
		webhookSecret: config.WebhookSecret,
	}

	client.initializeServices()

	return client, nil
}

// buildHTTPOptions translates the configuration into pipeline options.
func buildHTTPOptions(config *xrplsale.Config) []http.Option {
	var opts []http.Option

	if config.Timeout > 0 {
		opts = append(opts, http.WithTimeout(config.Timeout))
	}

	if config.RetryMax != 0 || config.RetryDelay > 0 {
		retryMax := config.RetryMax
		if retryMax < 0 {
			retryMax = 0
		}

		retryDelay := config.RetryDelay
		if retryDelay <= 0 {
			retryDelay = constants.DefaultRetryDelay
		}

		opts = append(opts, http.WithRetryConfig(retryMax, retryDelay))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.HTTPClient != nil {
		opts = append(opts, http.WithHTTPClient(config.HTTPClient))
	}

	return opts
}

// initializeServices wires every resource service to the shared pipeline.
func (c *Client) initializeServices() {
	c.projects = NewProjectsService(c.httpClient)
	c.investments = NewInvestmentsService(c.httpClient)
	c.analytics = NewAnalyticsService(c.httpClient)
	c.webhooks = NewWebhooksService(c.httpClient)
	c.authSvc = NewAuthService(c.httpClient)
}

// Projects implements xrplsale.Client.Projects.
func (c *Client) Projects() xrplsale.ProjectsClient {
	return c.projects
}

// Investments implements xrplsale.Client.Investments.
func (c *Client) Investments() xrplsale.InvestmentsClient {
	return c.investments
}

// Analytics implements xrplsale.Client.Analytics.
func (c *Client) Analytics() xrplsale.AnalyticsClient {
	return c.analytics
}

// Webhooks implements xrplsale.Client.Webhooks.
func (c *Client) Webhooks() xrplsale.WebhooksClient {
	return c.webhooks
}

// Auth implements xrplsale.Client.Auth.
func (c *Client) Auth() xrplsale.AuthClient {
	return c.authSvc
}

// SetAuthToken implements xrplsale.Client.SetAuthToken.
func (c *Client) SetAuthToken(token string) {
	c.tokens.Set(token)
}

// ClearAuthToken implements xrplsale.Client.ClearAuthToken.
func (c *Client) ClearAuthToken() {
	c.tokens.Clear()
}

// AuthToken implements xrplsale.Client.AuthToken.
func (c *Client) AuthToken() (string, bool) {
	return c.tokens.Get()
}

// WebhookValidator implements xrplsale.Client.WebhookValidator.
func (c *Client) WebhookValidator() (*xrplsale.WebhookSignatureValidator, error) {
	if c.webhookSecret == "" {
		return nil, xrplsale.ErrWebhookSecretRequired
	}

	return xrplsale.NewWebhookSignatureValidator(c.webhookSecret), nil
}
