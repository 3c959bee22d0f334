package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xrplsale/xrplsale-go/pkg/xrplsale"
)

// emptyBodyClient responds to everything with the given status and no body.
func emptyBodyClient(t *testing.T, status int) xrplsale.Client {
	t.Helper()

	return newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(status)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestServices_EmptySuccessBody(t *testing.T) {
	t.Parallel()

	// A 2xx response with no body decodes to a zero value for every verb,
	// never a parse error.
	t.Run("GET", func(t *testing.T) {
		t.Parallel()

		apiClient := emptyBodyClient(t, http.StatusOK)

		project, err := apiClient.Projects().Get(context.Background(), "proj-123")
		require.NoError(t, err)
		assert.False(t, xrplsale.IsParse(err))
		assert.Equal(t, &xrplsale.Project{}, project)
	})

	t.Run("POST", func(t *testing.T) {
		t.Parallel()

		apiClient := emptyBodyClient(t, http.StatusCreated)

		investment, err := apiClient.Investments().Create(context.Background(), &xrplsale.CreateInvestmentRequest{
			ProjectID:       "proj-123",
			InvestorAccount: "rInvestor1",
			AmountXRP:       "100",
		})
		require.NoError(t, err)
		assert.Equal(t, &xrplsale.Investment{}, investment)
	})

	t.Run("PUT", func(t *testing.T) {
		t.Parallel()

		apiClient := emptyBodyClient(t, http.StatusOK)

		tiers, err := apiClient.Projects().UpdateTiers(context.Background(), "proj-123", []xrplsale.ProjectTier{
			{Tier: 1, PricePerToken: "0.001", TotalTokens: "1000"},
		})
		require.NoError(t, err)
		assert.Empty(t, tiers)
	})

	t.Run("PATCH", func(t *testing.T) {
		t.Parallel()

		apiClient := emptyBodyClient(t, http.StatusOK)

		name := "Renamed"
		project, err := apiClient.Projects().Update(context.Background(), "proj-123", &xrplsale.UpdateProjectRequest{
			Name: &name,
		})
		require.NoError(t, err)
		assert.Equal(t, &xrplsale.Project{}, project)
	})

	t.Run("DELETE", func(t *testing.T) {
		t.Parallel()

		apiClient := emptyBodyClient(t, http.StatusNoContent)

		err := apiClient.Webhooks().Delete(context.Background(), "wh-1")
		require.NoError(t, err)
	})
}

func TestServices_MalformedSuccessBody(t *testing.T) {
	t.Parallel()

	apiClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "text/html")
		_, _ = writer.Write([]byte("<html>not json</html>"))
	})

	_, err := apiClient.Projects().Get(context.Background(), "proj-123")
	require.Error(t, err)
	assert.True(t, xrplsale.IsParse(err))
	assert.False(t, xrplsale.IsNotFound(err))
}
