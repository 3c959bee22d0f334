package client_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xrplsale/xrplsale-go/internal/client"
	"github.com/xrplsale/xrplsale-go/pkg/xrplsale"
)

// newTestClient builds a client pointed at an httptest server running
// handler. Cleanup is registered on t.
func newTestClient(t *testing.T, handler http.HandlerFunc) *client.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	apiClient, err := client.New(&xrplsale.Config{
		APIKey:        "test-key",
		BaseURL:       server.URL,
		WebhookSecret: "whsec_test",
	})
	require.NoError(t, err)

	return apiClient
}

// writeJSON encodes v into the response.
func writeJSON(t *testing.T, writer http.ResponseWriter, v interface{}) {
	t.Helper()

	writer.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(writer).Encode(v))
}
