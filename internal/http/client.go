// Package http implements the request pipeline shared by all resource
// clients: URL construction, authentication, retry with backoff, and
// response classification into typed errors.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/xrplsale/xrplsale-go/internal/constants"
	"github.com/xrplsale/xrplsale-go/pkg/xrplsale"
)

// TokenSource supplies the optional session bearer token attached to
// requests. When no token is set the static API key header is used instead.
type TokenSource interface {
	Token() (string, bool)
}

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	Body    interface{}
}

// Response represents a completed API response with its raw body.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client executes API requests against a single base URL.
type Client struct {
	baseURL    string
	apiKey     string
	tokens     TokenSource
	userAgent  string
	debug      bool
	logger     xrplsale.Logger
	timeout    time.Duration
	retryMax   int
	retryDelay time.Duration
	httpClient *http.Client
	retry      *retryablehttp.Client
}

// Option configures the client.
type Option func(*Client)

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger used for debug traces.
func WithLogger(logger xrplsale.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging. Logging is best-effort and
// never influences the outcome of a call.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRetryConfig sets the retry budget and the base backoff delay. Negative
// retryMax disables retries.
func WithRetryConfig(retryMax int, retryDelay time.Duration) Option {
	return func(c *Client) {
		c.retryMax = retryMax
		c.retryDelay = retryDelay
	}
}

// WithHTTPClient replaces the underlying *http.Client. Used by tests to
// inject transports.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new API client for baseURL. Requests authenticate with
// the session token from tokens when one is set, falling back to apiKey.
func NewClient(baseURL, apiKey string, tokens TokenSource, opts ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		tokens:     tokens,
		userAgent:  constants.DefaultUserAgent,
		timeout:    constants.DefaultTimeout,
		retryMax:   constants.DefaultRetryMax,
		retryDelay: constants.DefaultRetryDelay,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.debug && client.logger == nil {
		client.logger = xrplsale.NewLogger(os.Stderr)
	}

	if client.retryMax < 0 {
		client.retryMax = 0
	}

	retry := retryablehttp.NewClient()
	retry.Logger = nil
	retry.RetryMax = client.retryMax
	retry.CheckRetry = transportOnlyRetryPolicy
	retry.Backoff = exponentialBackoff(client.retryDelay)
	// Surface the last attempt's error unwrapped instead of the default
	// "giving up after N attempts" synthesis.
	retry.ErrorHandler = func(resp *http.Response, err error, _ int) (*http.Response, error) {
		return resp, err
	}

	if client.httpClient != nil {
		// Shallow copy so setting the timeout below never mutates the
		// caller's client.
		injected := *client.httpClient
		retry.HTTPClient = &injected
	}

	retry.HTTPClient.Timeout = client.timeout
	client.retry = retry

	return client
}

// transportOnlyRetryPolicy retries transport-level failures only. Any
// completed HTTP response, success or failure, is terminal; in particular
// rate-limited responses are never retried here.
func transportOnlyRetryPolicy(ctx context.Context, _ *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	return err != nil, nil
}

// exponentialBackoff doubles the base delay on each retry: base * 2^attempt,
// with attempt 0 for the first retry.
func exponentialBackoff(base time.Duration) retryablehttp.Backoff {
	return func(_, _ time.Duration, attemptNum int, _ *http.Response) time.Duration {
		delay := base << uint(attemptNum)
		if delay <= 0 || delay > constants.MaxRetryBackoff {
			return constants.MaxRetryBackoff
		}

		return delay
	}
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with an optional JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// Do executes the request and classifies the response. On non-2xx statuses
// it returns both the raw response and a typed error.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL, err := c.buildURL(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", xrplsale.ErrInvalidRequestPath, err)
	}

	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		err = httpReq.SetBody(payload)
		if err != nil {
			return nil, fmt.Errorf("setting request body: %w", err)
		}

		httpReq.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	}

	httpReq.Header.Set(constants.HeaderAccept, constants.ContentTypeJSON)
	httpReq.Header.Set("User-Agent", c.userAgent)
	c.applyAuth(httpReq)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	c.logDebug("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"url":    fullURL,
	})

	resp, err := c.retry.Do(httpReq)
	if err != nil {
		c.logDebug("HTTP Transport Failure", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
			"error":  err.Error(),
		})

		return nil, &xrplsale.TransportError{URL: fullURL, Err: err}
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &xrplsale.TransportError{URL: fullURL, Err: err}
	}

	c.logDebug("HTTP Response", map[string]interface{}{
		"method": req.Method,
		"url":    fullURL,
		"status": resp.StatusCode,
	})

	response := &Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return response, nil
	}

	return response, classifyStatus(resp, fullURL, body)
}

// applyAuth attaches the session bearer token when one is set, otherwise the
// static API key. The token is read fresh on every call so rotation takes
// effect mid-session.
func (c *Client) applyAuth(req *retryablehttp.Request) {
	if c.tokens != nil {
		token, ok := c.tokens.Token()
		if ok {
			req.Header.Set(constants.HeaderAuthorization, "Bearer "+token)

			return
		}
	}

	req.Header.Set(constants.HeaderAPIKey, c.apiKey)
}

// buildURL joins the base URL with path, trimming a single leading slash so
// double slashes never occur, and appends every query pair verbatim.
func (c *Client) buildURL(path string, query url.Values) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", xrplsale.ErrInvalidBaseURL, err)
	}

	joined, err := url.JoinPath(base.String(), strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", fmt.Errorf("%w: %v", xrplsale.ErrInvalidRequestPath, err)
	}

	resolved, err := url.Parse(joined)
	if err != nil {
		return "", fmt.Errorf("%w: %v", xrplsale.ErrInvalidRequestPath, err)
	}

	if len(query) > 0 {
		merged := resolved.Query()
		for key, values := range query {
			for _, value := range values {
				merged.Add(key, value)
			}
		}

		resolved.RawQuery = merged.Encode()
	}

	return resolved.String(), nil
}

// classifyStatus maps a non-2xx response to its typed error. The body text
// is carried verbatim; 429 additionally parses the Retry-After header.
func classifyStatus(resp *http.Response, fullURL string, body []byte) error {
	apiErr := &xrplsale.APIError{
		StatusCode: resp.StatusCode,
		Message:    string(body),
		URL:        fullURL,
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		header := strings.TrimSpace(resp.Header.Get(constants.HeaderRetryAfter))
		if header != "" {
			seconds, err := strconv.Atoi(header)
			if err == nil {
				apiErr.RetryAfter = &seconds
			}
		}
	}

	return apiErr
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug(msg, fields)
}
