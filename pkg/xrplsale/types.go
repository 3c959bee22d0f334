package xrplsale

import (
	"encoding/json"
	"time"
)

// ProjectStatus represents the lifecycle state of a token sale project.
type ProjectStatus string

const (
	ProjectStatusDraft     ProjectStatus = "draft"
	ProjectStatusUpcoming  ProjectStatus = "upcoming"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusPaused    ProjectStatus = "paused"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

// Project represents a token sale project on the platform.
type Project struct {
	ID             string        `json:"id"                         yaml:"id"`
	Name           string        `json:"name"                       yaml:"name"`
	Description    string        `json:"description"                yaml:"description"`
	TokenSymbol    string        `json:"token_symbol"               yaml:"token_symbol"`
	TotalSupply    string        `json:"total_supply"               yaml:"total_supply"`
	Status         ProjectStatus `json:"status"                     yaml:"status"`
	Tiers          []ProjectTier `json:"tiers,omitempty"            yaml:"tiers,omitempty"`
	SaleStartDate  time.Time     `json:"sale_start_date"            yaml:"sale_start_date"`
	SaleEndDate    time.Time     `json:"sale_end_date"              yaml:"sale_end_date"`
	TotalRaisedXRP string        `json:"total_raised_xrp,omitempty" yaml:"total_raised_xrp,omitempty"`
	InvestorCount  int           `json:"investor_count,omitempty"   yaml:"investor_count,omitempty"`
	CreatedAt      time.Time     `json:"created_at"                 yaml:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"                 yaml:"updated_at"`
}

// ProjectTier represents one pricing tier of a token sale. Token amounts and
// prices are decimal strings to avoid floating point loss.
type ProjectTier struct {
	Tier          int    `json:"tier"                  yaml:"tier"`
	PricePerToken string `json:"price_per_token"       yaml:"price_per_token"`
	TotalTokens   string `json:"total_tokens"          yaml:"total_tokens"`
	TokensSold    string `json:"tokens_sold,omitempty" yaml:"tokens_sold,omitempty"`
}

// CreateProjectRequest is the payload for creating a project.
type CreateProjectRequest struct {
	Name          string        `json:"name"            yaml:"name"`
	Description   string        `json:"description"     yaml:"description"`
	TokenSymbol   string        `json:"token_symbol"    yaml:"token_symbol"`
	TotalSupply   string        `json:"total_supply"    yaml:"total_supply"`
	Tiers         []ProjectTier `json:"tiers"           yaml:"tiers"`
	SaleStartDate time.Time     `json:"sale_start_date" yaml:"sale_start_date"`
	SaleEndDate   time.Time     `json:"sale_end_date"   yaml:"sale_end_date"`
}

// UpdateProjectRequest is the payload for updating a project. Nil fields are
// left unchanged by the server.
type UpdateProjectRequest struct {
	Name          *string    `json:"name,omitempty"            yaml:"name,omitempty"`
	Description   *string    `json:"description,omitempty"     yaml:"description,omitempty"`
	SaleStartDate *time.Time `json:"sale_start_date,omitempty" yaml:"sale_start_date,omitempty"`
	SaleEndDate   *time.Time `json:"sale_end_date,omitempty"   yaml:"sale_end_date,omitempty"`
}

// ProjectStats represents aggregate statistics for one project.
type ProjectStats struct {
	ProjectID      string  `json:"project_id"                 yaml:"project_id"`
	TotalRaisedXRP string  `json:"total_raised_xrp"           yaml:"total_raised_xrp"`
	InvestorCount  int     `json:"investor_count"             yaml:"investor_count"`
	TokensSold     string  `json:"tokens_sold"                yaml:"tokens_sold"`
	FundingGoalXRP string  `json:"funding_goal_xrp,omitempty" yaml:"funding_goal_xrp,omitempty"`
	FundingPercent float64 `json:"funding_percent"            yaml:"funding_percent"`
}

// InvestmentStatus represents the settlement state of an investment.
type InvestmentStatus string

const (
	InvestmentStatusPending   InvestmentStatus = "pending"
	InvestmentStatusConfirmed InvestmentStatus = "confirmed"
	InvestmentStatusFailed    InvestmentStatus = "failed"
	InvestmentStatusRefunded  InvestmentStatus = "refunded"
)

// Investment represents a single investment in a project.
type Investment struct {
	ID              string           `json:"id"                         yaml:"id"`
	ProjectID       string           `json:"project_id"                 yaml:"project_id"`
	InvestorAccount string           `json:"investor_account"           yaml:"investor_account"`
	AmountXRP       string           `json:"amount_xrp"                 yaml:"amount_xrp"`
	TokenAmount     string           `json:"token_amount"               yaml:"token_amount"`
	Tier            int              `json:"tier,omitempty"             yaml:"tier,omitempty"`
	Status          InvestmentStatus `json:"status"                     yaml:"status"`
	TransactionHash string           `json:"transaction_hash,omitempty" yaml:"transaction_hash,omitempty"`
	CreatedAt       time.Time        `json:"created_at"                 yaml:"created_at"`
}

// CreateInvestmentRequest is the payload for recording an investment.
type CreateInvestmentRequest struct {
	ProjectID       string `json:"project_id"       yaml:"project_id"`
	InvestorAccount string `json:"investor_account" yaml:"investor_account"`
	AmountXRP       string `json:"amount_xrp"       yaml:"amount_xrp"`
	Tier            int    `json:"tier,omitempty"   yaml:"tier,omitempty"`
}

// PlatformAnalytics represents platform-wide aggregate metrics.
type PlatformAnalytics struct {
	TotalProjects   int    `json:"total_projects"    yaml:"total_projects"`
	ActiveProjects  int    `json:"active_projects"   yaml:"active_projects"`
	TotalRaisedXRP  string `json:"total_raised_xrp"  yaml:"total_raised_xrp"`
	TotalInvestors  int    `json:"total_investors"   yaml:"total_investors"`
	AverageRaiseXRP string `json:"average_raise_xrp" yaml:"average_raise_xrp"`
}

// ProjectAnalytics represents per-project metrics.
type ProjectAnalytics struct {
	ProjectID      string       `json:"project_id"       yaml:"project_id"`
	TotalRaisedXRP string       `json:"total_raised_xrp" yaml:"total_raised_xrp"`
	InvestorCount  int          `json:"investor_count"   yaml:"investor_count"`
	FundingPercent float64      `json:"funding_percent"  yaml:"funding_percent"`
	Daily          []TrendPoint `json:"daily,omitempty"  yaml:"daily,omitempty"`
}

// TrendPoint is one sample in a time series of raise activity.
type TrendPoint struct {
	Date        string `json:"date"        yaml:"date"`
	AmountXRP   string `json:"amount_xrp"  yaml:"amount_xrp"`
	Investments int    `json:"investments" yaml:"investments"`
}

// MarketTrends represents platform raise activity over a period
// (24h, 7d, 30d).
type MarketTrends struct {
	Period string       `json:"period" yaml:"period"`
	Points []TrendPoint `json:"points" yaml:"points"`
}

// Webhook represents a registered webhook endpoint.
type Webhook struct {
	ID        string    `json:"id"         yaml:"id"`
	URL       string    `json:"url"        yaml:"url"`
	Events    []string  `json:"events"     yaml:"events"`
	Active    bool      `json:"active"     yaml:"active"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// CreateWebhookRequest is the payload for registering a webhook.
type CreateWebhookRequest struct {
	URL    string   `json:"url"    yaml:"url"`
	Events []string `json:"events" yaml:"events"`
}

// UpdateWebhookRequest is the payload for updating a webhook. Nil fields are
// left unchanged by the server.
type UpdateWebhookRequest struct {
	URL    *string  `json:"url,omitempty"    yaml:"url,omitempty"`
	Events []string `json:"events,omitempty" yaml:"events,omitempty"`
	Active *bool    `json:"active,omitempty" yaml:"active,omitempty"`
}

// WebhookTestResult reports the outcome of a test delivery.
type WebhookTestResult struct {
	Delivered  bool  `json:"delivered"   yaml:"delivered"`
	StatusCode int   `json:"status_code" yaml:"status_code"`
	DurationMS int64 `json:"duration_ms" yaml:"duration_ms"`
}

// WebhookEvent is a decoded inbound webhook payload. Data is left raw so the
// caller can decode it into the event-specific type.
type WebhookEvent struct {
	ID        string          `json:"id"        yaml:"id"`
	Type      string          `json:"type"      yaml:"type"`
	Timestamp time.Time       `json:"timestamp" yaml:"timestamp"`
	Data      json.RawMessage `json:"data"      yaml:"data"`
}

// AuthChallenge is a one-time challenge issued for wallet authentication.
type AuthChallenge struct {
	Challenge     string    `json:"challenge"      yaml:"challenge"`
	WalletAddress string    `json:"wallet_address" yaml:"wallet_address"`
	ExpiresAt     time.Time `json:"expires_at"     yaml:"expires_at"`
}

// AuthVerifyRequest is the payload for proving ownership of a wallet by
// signing a previously issued challenge.
type AuthVerifyRequest struct {
	WalletAddress string `json:"wallet_address" yaml:"wallet_address"`
	Signature     string `json:"signature"      yaml:"signature"`
	Challenge     string `json:"challenge"      yaml:"challenge"`
}

// AuthSession is the bearer session returned by a successful verification.
// Pass Token to Client.SetAuthToken to authenticate subsequent requests.
type AuthSession struct {
	Token     string    `json:"token"      yaml:"token"`
	ExpiresAt time.Time `json:"expires_at" yaml:"expires_at"`
}
