package client

import (
	"context"
	"fmt"

	"github.com/xrplsale/xrplsale-go/internal/http"
	"github.com/xrplsale/xrplsale-go/pkg/xrplsale"
)

// AuthService implements xrplsale.AuthClient.
type AuthService struct {
	httpClient *http.Client
}

// NewAuthService creates a new auth service.
func NewAuthService(httpClient *http.Client) *AuthService {
	return &AuthService{httpClient: httpClient}
}

// Challenge implements xrplsale.AuthClient.Challenge.
func (s *AuthService) Challenge(ctx context.Context, walletAddress string) (*xrplsale.AuthChallenge, error) {
	body := map[string]string{"wallet_address": walletAddress}

	resp, err := s.httpClient.Post(ctx, "/auth/challenge", body)
	if err != nil {
		return nil, fmt.Errorf("requesting auth challenge: %w", err)
	}

	var challenge xrplsale.AuthChallenge
	if err := unmarshalResponse(resp, &challenge); err != nil {
		return nil, fmt.Errorf("parsing auth challenge response: %w", err)
	}

	return &challenge, nil
}

// Verify implements xrplsale.AuthClient.Verify.
func (s *AuthService) Verify(ctx context.Context, request *xrplsale.AuthVerifyRequest) (*xrplsale.AuthSession, error) {
	resp, err := s.httpClient.Post(ctx, "/auth/verify", request)
	if err != nil {
		return nil, fmt.Errorf("verifying auth challenge: %w", err)
	}

	var session xrplsale.AuthSession
	if err := unmarshalResponse(resp, &session); err != nil {
		return nil, fmt.Errorf("parsing auth session response: %w", err)
	}

	return &session, nil
}
