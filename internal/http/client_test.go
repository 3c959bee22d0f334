package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	salehttp "github.com/xrplsale/xrplsale-go/internal/http"
	"github.com/xrplsale/xrplsale-go/pkg/xrplsale"
)

// MockTokenSource for testing.
type MockTokenSource struct {
	token string
	set   bool
}

func (m *MockTokenSource) Token() (string, bool) {
	return m.token, m.set
}

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

// flakyTransport fails the first n round trips with a transport error, then
// hands off to the real transport.
type flakyTransport struct {
	failures int
	attempts int
	inner    http.RoundTripper
}

func (t *flakyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.attempts++
	if t.attempts <= t.failures {
		return nil, errors.New("connection reset by peer")
	}

	return t.inner.RoundTrip(req)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request with API key", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/projects", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "test-key", request.Header.Get("X-API-Key"))
			assert.Empty(t, request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			response := map[string]string{"id": "proj-123", "name": "Test Project"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := salehttp.NewClient(server.URL, "test-key", nil)

		req := &salehttp.Request{
			Method: "GET",
			Path:   "/projects",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "proj-123", result["id"])
		assert.Equal(t, "Test Project", result["name"])
	})

	t.Run("bearer token replaces API key", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "Bearer session-token", request.Header.Get("Authorization"))
			assert.Empty(t, request.Header.Get("X-API-Key"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		tokens := &MockTokenSource{token: "session-token", set: true}
		client := salehttp.NewClient(server.URL, "test-key", tokens)

		resp, err := client.Get(context.Background(), "/projects", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("cleared token falls back to API key", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "test-key", request.Header.Get("X-API-Key"))
			assert.Empty(t, request.Header.Get("Authorization"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		tokens := &MockTokenSource{set: false}
		client := salehttp.NewClient(server.URL, "test-key", tokens)

		_, err := client.Get(context.Background(), "/projects", nil)
		require.NoError(t, err)
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/projects", request.URL.Path)
			assert.Equal(t, "2", request.URL.Query().Get("page"))
			assert.Equal(t, "50", request.URL.Query().Get("limit"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := salehttp.NewClient(server.URL, "test-key", nil)

		req := &salehttp.Request{
			Method: "GET",
			Path:   "/projects",
			Query:  url.Values{"page": []string{"2"}, "limit": []string{"50"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "New Project", body["name"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := salehttp.NewClient(server.URL, "test-key", nil)

		req := &salehttp.Request{
			Method: "POST",
			Path:   "/projects",
			Body:   map[string]string{"name": "New Project"},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := salehttp.NewClient(server.URL, "test-key", nil)

		req := &salehttp.Request{
			Method: "GET",
			Path:   "/projects",
			Headers: map[string]string{
				"X-Custom-Header": "custom-value",
			},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("base URL with path prefix", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/v1/projects", request.URL.Path)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := salehttp.NewClient(server.URL+"/v1/", "test-key", nil)

		_, err := client.Get(context.Background(), "/projects", nil)
		require.NoError(t, err)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := salehttp.NewClient(server.URL, "test-key", nil, salehttp.WithLogger(logger), salehttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/projects", nil)
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})

	t.Run("context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			time.Sleep(time.Second)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := salehttp.NewClient(server.URL, "test-key", nil)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := client.Get(ctx, "/projects", nil)
		require.Error(t, err)
		assert.True(t, xrplsale.IsTransport(err))
	})
}

func TestClient_InjectedHTTPClientNotMutated(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	injected := &http.Client{Timeout: 5 * time.Second}
	client := salehttp.NewClient(server.URL, "test-key", nil,
		salehttp.WithHTTPClient(injected),
		salehttp.WithTimeout(time.Minute))

	assert.Equal(t, 5*time.Second, injected.Timeout)

	// The pipeline's own timeout still applies to requests.
	_, err := client.Get(context.Background(), "/test", nil)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, injected.Timeout)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*salehttp.Client, context.Context) (*salehttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *salehttp.Client, ctx context.Context) (*salehttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *salehttp.Client, ctx context.Context) (*salehttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *salehttp.Client, ctx context.Context) (*salehttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PATCH",
			method: "PATCH",
			fn: func(c *salehttp.Client, ctx context.Context) (*salehttp.Response, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *salehttp.Client, ctx context.Context) (*salehttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := salehttp.NewClient(server.URL, "test-key", nil)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		sentinel error
	}{
		{name: "bad request", status: 400, sentinel: xrplsale.ErrBadRequest},
		{name: "unauthorized", status: 401, sentinel: xrplsale.ErrUnauthorized},
		{name: "not found", status: 404, sentinel: xrplsale.ErrNotFound},
		{name: "rate limited", status: 429, sentinel: xrplsale.ErrRateLimited},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(testCase.status)
				_, _ = writer.Write([]byte("nope"))
			}))
			defer server.Close()

			client := salehttp.NewClient(server.URL, "test-key", nil)

			resp, err := client.Get(context.Background(), "/projects", nil)
			require.Error(t, err)
			assert.Equal(t, testCase.status, resp.StatusCode)
			assert.ErrorIs(t, err, testCase.sentinel)

			apiErr := &xrplsale.APIError{}
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, testCase.status, apiErr.StatusCode)
			assert.Equal(t, "nope", apiErr.Message)
			assert.Contains(t, apiErr.URL, "/projects")
		})
	}

	t.Run("unmapped status carries no sentinel", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := salehttp.NewClient(server.URL, "test-key", nil)

		resp, err := client.Get(context.Background(), "/projects", nil)
		require.Error(t, err)
		assert.Equal(t, 500, resp.StatusCode)
		assert.NotErrorIs(t, err, xrplsale.ErrBadRequest)
		assert.NotErrorIs(t, err, xrplsale.ErrNotFound)
	})

	t.Run("rate limit parses Retry-After", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Retry-After", "120")
			writer.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := salehttp.NewClient(server.URL, "test-key", nil)

		_, err := client.Get(context.Background(), "/projects", nil)
		require.Error(t, err)

		seconds, ok := xrplsale.RetryAfterHint(err)
		require.True(t, ok)
		assert.Equal(t, 120, seconds)
	})

	t.Run("non-numeric Retry-After is ignored", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Retry-After", "Wed, 21 Oct 2026 07:28:00 GMT")
			writer.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := salehttp.NewClient(server.URL, "test-key", nil)

		_, err := client.Get(context.Background(), "/projects", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, xrplsale.ErrRateLimited)

		_, ok := xrplsale.RetryAfterHint(err)
		assert.False(t, ok)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("retries transport failures until success", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		transport := &flakyTransport{failures: 2, inner: http.DefaultTransport}
		client := salehttp.NewClient(server.URL, "test-key", nil,
			salehttp.WithHTTPClient(&http.Client{Transport: transport}),
			salehttp.WithRetryConfig(3, time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 3, transport.attempts)
	})

	t.Run("exhausted retries surface the last transport error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		transport := &flakyTransport{failures: 10, inner: http.DefaultTransport}
		client := salehttp.NewClient(server.URL, "test-key", nil,
			salehttp.WithHTTPClient(&http.Client{Transport: transport}),
			salehttp.WithRetryConfig(2, time.Millisecond))

		_, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.True(t, xrplsale.IsTransport(err))
		assert.Contains(t, err.Error(), "connection reset by peer")
		// 1 initial attempt + 2 retries
		assert.Equal(t, 3, transport.attempts)
	})

	t.Run("does not retry on server errors", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := salehttp.NewClient(server.URL, "test-key", nil, salehttp.WithRetryConfig(3, time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, 500, resp.StatusCode)
		assert.Equal(t, 1, attempts)
	})

	t.Run("does not retry on rate limiting", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := salehttp.NewClient(server.URL, "test-key", nil, salehttp.WithRetryConfig(3, time.Millisecond))

		resp, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.Equal(t, 429, resp.StatusCode)
		assert.ErrorIs(t, err, xrplsale.ErrRateLimited)
		assert.Equal(t, 1, attempts)
	})

	t.Run("negative retry budget disables retries", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		transport := &flakyTransport{failures: 1, inner: http.DefaultTransport}
		client := salehttp.NewClient(server.URL, "test-key", nil,
			salehttp.WithHTTPClient(&http.Client{Transport: transport}),
			salehttp.WithRetryConfig(-1, time.Millisecond))

		_, err := client.Get(context.Background(), "/test", nil)
		require.Error(t, err)
		assert.True(t, xrplsale.IsTransport(err))
		assert.Equal(t, 1, transport.attempts)
	})

	t.Run("backoff doubles between retries", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		transport := &flakyTransport{failures: 2, inner: http.DefaultTransport}
		client := salehttp.NewClient(server.URL, "test-key", nil,
			salehttp.WithHTTPClient(&http.Client{Transport: transport}),
			salehttp.WithRetryConfig(2, 50*time.Millisecond))

		// First retry waits 50ms, second 100ms.
		start := time.Now()
		resp, err := client.Get(context.Background(), "/test", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 3, transport.attempts)
		assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)
	})
}
