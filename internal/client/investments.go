package client

import (
	"context"
	"fmt"

	"github.com/xrplsale/xrplsale-go/internal/http"
	"github.com/xrplsale/xrplsale-go/pkg/xrplsale"
)

// InvestmentsService implements xrplsale.InvestmentsClient.
type InvestmentsService struct {
	httpClient *http.Client
}

// NewInvestmentsService creates a new investments service.
func NewInvestmentsService(httpClient *http.Client) *InvestmentsService {
	return &InvestmentsService{httpClient: httpClient}
}

// List implements xrplsale.InvestmentsClient.List.
func (s *InvestmentsService) List(ctx context.Context, opts *xrplsale.InvestmentListOptions) (*xrplsale.ListResponse[xrplsale.Investment], error) {
	resp, err := s.httpClient.Get(ctx, "/investments", opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing investments: %w", err)
	}

	var result xrplsale.ListResponse[xrplsale.Investment]
	if err := unmarshalResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("parsing investments list response: %w", err)
	}

	return &result, nil
}

// Get implements xrplsale.InvestmentsClient.Get.
func (s *InvestmentsService) Get(ctx context.Context, investmentID string) (*xrplsale.Investment, error) {
	path := fmt.Sprintf("/investments/%s", investmentID)

	resp, err := s.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting investment: %w", err)
	}

	var investment xrplsale.Investment
	if err := unmarshalResponse(resp, &investment); err != nil {
		return nil, fmt.Errorf("parsing investment response: %w", err)
	}

	return &investment, nil
}

// Create implements xrplsale.InvestmentsClient.Create.
func (s *InvestmentsService) Create(ctx context.Context, request *xrplsale.CreateInvestmentRequest) (*xrplsale.Investment, error) {
	resp, err := s.httpClient.Post(ctx, "/investments", request)
	if err != nil {
		return nil, fmt.Errorf("creating investment: %w", err)
	}

	var investment xrplsale.Investment
	if err := unmarshalResponse(resp, &investment); err != nil {
		return nil, fmt.Errorf("parsing investment response: %w", err)
	}

	return &investment, nil
}

// ByProject implements xrplsale.InvestmentsClient.ByProject.
func (s *InvestmentsService) ByProject(ctx context.Context, projectID string, page, limit int) (*xrplsale.ListResponse[xrplsale.Investment], error) {
	return s.List(ctx, &xrplsale.InvestmentListOptions{
		ListOptions: xrplsale.ListOptions{Page: page, Limit: limit},
		ProjectID:   projectID,
	})
}

// ByInvestor implements xrplsale.InvestmentsClient.ByInvestor.
func (s *InvestmentsService) ByInvestor(ctx context.Context, account string, page, limit int) (*xrplsale.ListResponse[xrplsale.Investment], error) {
	return s.List(ctx, &xrplsale.InvestmentListOptions{
		ListOptions:     xrplsale.ListOptions{Page: page, Limit: limit},
		InvestorAccount: account,
	})
}

// All implements xrplsale.InvestmentsClient.All.
func (s *InvestmentsService) All(ctx context.Context, opts *xrplsale.InvestmentListOptions) *xrplsale.PaginationIterator[xrplsale.Investment] {
	var filter xrplsale.InvestmentListOptions
	if opts != nil {
		filter = *opts
	}

	return xrplsale.NewPaginationIterator(ctx, func(ctx context.Context, page, limit int) (*xrplsale.ListResponse[xrplsale.Investment], error) {
		pageOpts := filter
		pageOpts.Page = page
		pageOpts.Limit = limit

		return s.List(ctx, &pageOpts)
	})
}
