package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/xrplsale/xrplsale-go/internal/http"
	"github.com/xrplsale/xrplsale-go/pkg/xrplsale"
)

// AnalyticsService implements xrplsale.AnalyticsClient.
type AnalyticsService struct {
	httpClient *http.Client
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(httpClient *http.Client) *AnalyticsService {
	return &AnalyticsService{httpClient: httpClient}
}

// Platform implements xrplsale.AnalyticsClient.Platform.
func (s *AnalyticsService) Platform(ctx context.Context) (*xrplsale.PlatformAnalytics, error) {
	resp, err := s.httpClient.Get(ctx, "/analytics/platform", nil)
	if err != nil {
		return nil, fmt.Errorf("getting platform analytics: %w", err)
	}

	var analytics xrplsale.PlatformAnalytics
	if err := unmarshalResponse(resp, &analytics); err != nil {
		return nil, fmt.Errorf("parsing platform analytics response: %w", err)
	}

	return &analytics, nil
}

// Project implements xrplsale.AnalyticsClient.Project.
func (s *AnalyticsService) Project(ctx context.Context, projectID string) (*xrplsale.ProjectAnalytics, error) {
	path := fmt.Sprintf("/analytics/projects/%s", projectID)

	resp, err := s.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting project analytics: %w", err)
	}

	var analytics xrplsale.ProjectAnalytics
	if err := unmarshalResponse(resp, &analytics); err != nil {
		return nil, fmt.Errorf("parsing project analytics response: %w", err)
	}

	return &analytics, nil
}

// Trends implements xrplsale.AnalyticsClient.Trends.
func (s *AnalyticsService) Trends(ctx context.Context, period string) (*xrplsale.MarketTrends, error) {
	var query url.Values
	if period != "" {
		query = url.Values{"period": []string{period}}
	}

	resp, err := s.httpClient.Get(ctx, "/analytics/trends", query)
	if err != nil {
		return nil, fmt.Errorf("getting market trends: %w", err)
	}

	var trends xrplsale.MarketTrends
	if err := unmarshalResponse(resp, &trends); err != nil {
		return nil, fmt.Errorf("parsing market trends response: %w", err)
	}

	return &trends, nil
}
