package client

import (
	"context"
	"fmt"

	"github.com/xrplsale/xrplsale-go/internal/http"
	"github.com/xrplsale/xrplsale-go/pkg/xrplsale"
)

// WebhooksService implements xrplsale.WebhooksClient.
type WebhooksService struct {
	httpClient *http.Client
}

// NewWebhooksService creates a new webhooks service.
func NewWebhooksService(httpClient *http.Client) *WebhooksService {
	return &WebhooksService{httpClient: httpClient}
}

// List implements xrplsale.WebhooksClient.List.
func (s *WebhooksService) List(ctx context.Context, page, limit int) (*xrplsale.ListResponse[xrplsale.Webhook], error) {
	resp, err := s.httpClient.Get(ctx, "/webhooks", pageQuery(page, limit))
	if err != nil {
		return nil, fmt.Errorf("listing webhooks: %w", err)
	}

	var result xrplsale.ListResponse[xrplsale.Webhook]
	if err := unmarshalResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("parsing webhooks list response: %w", err)
	}

	return &result, nil
}

// Get implements xrplsale.WebhooksClient.Get.
func (s *WebhooksService) Get(ctx context.Context, webhookID string) (*xrplsale.Webhook, error) {
	path := fmt.Sprintf("/webhooks/%s", webhookID)

	resp, err := s.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting webhook: %w", err)
	}

	var webhook xrplsale.Webhook
	if err := unmarshalResponse(resp, &webhook); err != nil {
		return nil, fmt.Errorf("parsing webhook response: %w", err)
	}

	return &webhook, nil
}

// Create implements xrplsale.WebhooksClient.Create.
func (s *WebhooksService) Create(ctx context.Context, request *xrplsale.CreateWebhookRequest) (*xrplsale.Webhook, error) {
	resp, err := s.httpClient.Post(ctx, "/webhooks", request)
	if err != nil {
		return nil, fmt.Errorf("creating webhook: %w", err)
	}

	var webhook xrplsale.Webhook
	if err := unmarshalResponse(resp, &webhook); err != nil {
		return nil, fmt.Errorf("parsing webhook response: %w", err)
	}

	return &webhook, nil
}

// Update implements xrplsale.WebhooksClient.Update.
func (s *WebhooksService) Update(ctx context.Context, webhookID string, request *xrplsale.UpdateWebhookRequest) (*xrplsale.Webhook, error) {
	path := fmt.Sprintf("/webhooks/%s", webhookID)

	resp, err := s.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating webhook: %w", err)
	}

	var webhook xrplsale.Webhook
	if err := unmarshalResponse(resp, &webhook); err != nil {
		return nil, fmt.Errorf("parsing webhook response: %w", err)
	}

	return &webhook, nil
}

// Delete implements xrplsale.WebhooksClient.Delete.
func (s *WebhooksService) Delete(ctx context.Context, webhookID string) error {
	path := fmt.Sprintf("/webhooks/%s", webhookID)

	_, err := s.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting webhook: %w", err)
	}

	return nil
}

// Test implements xrplsale.WebhooksClient.Test.
func (s *WebhooksService) Test(ctx context.Context, webhookID string) (*xrplsale.WebhookTestResult, error) {
	path := fmt.Sprintf("/webhooks/%s/test", webhookID)

	resp, err := s.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("testing webhook: %w", err)
	}

	var result xrplsale.WebhookTestResult
	if err := unmarshalResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("parsing webhook test response: %w", err)
	}

	return &result, nil
}
