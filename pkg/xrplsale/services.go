package xrplsale

import (
	"context"
)

// ProjectsClient manages token sale projects.
type ProjectsClient interface {
	List(ctx context.Context, opts *ProjectListOptions) (*ListResponse[Project], error)
	Active(ctx context.Context, page, limit int) (*ListResponse[Project], error)
	Upcoming(ctx context.Context, page, limit int) (*ListResponse[Project], error)
	Completed(ctx context.Context, page, limit int) (*ListResponse[Project], error)
	Get(ctx context.Context, projectID string) (*Project, error)
	Create(ctx context.Context, request *CreateProjectRequest) (*Project, error)
	Update(ctx context.Context, projectID string, request *UpdateProjectRequest) (*Project, error)
	Launch(ctx context.Context, projectID string) (*Project, error)
	Pause(ctx context.Context, projectID string) (*Project, error)
	Resume(ctx context.Context, projectID string) (*Project, error)
	Cancel(ctx context.Context, projectID string) (*Project, error)
	Stats(ctx context.Context, projectID string) (*ProjectStats, error)
	Investors(ctx context.Context, projectID string, page, limit int) (*ListResponse[Investment], error)
	Tiers(ctx context.Context, projectID string) ([]ProjectTier, error)
	UpdateTiers(ctx context.Context, projectID string, tiers []ProjectTier) ([]ProjectTier, error)
	Search(ctx context.Context, query string, opts *SearchOptions) (*ListResponse[Project], error)
	Featured(ctx context.Context, limit int) ([]Project, error)
	Trending(ctx context.Context, period string, limit int) ([]Project, error)

	// All returns an auto-paginating iterator over every project with the
	// given status (empty status means all projects).
	All(ctx context.Context, status ProjectStatus) *PaginationIterator[Project]
}

// InvestmentsClient tracks investments across projects.
type InvestmentsClient interface {
	List(ctx context.Context, opts *InvestmentListOptions) (*ListResponse[Investment], error)
	Get(ctx context.Context, investmentID string) (*Investment, error)
	Create(ctx context.Context, request *CreateInvestmentRequest) (*Investment, error)
	ByProject(ctx context.Context, projectID string, page, limit int) (*ListResponse[Investment], error)
	ByInvestor(ctx context.Context, account string, page, limit int) (*ListResponse[Investment], error)

	// All returns an auto-paginating iterator over investments matching
	// opts (nil means all investments). The iterator overrides any paging
	// fields in opts.
	All(ctx context.Context, opts *InvestmentListOptions) *PaginationIterator[Investment]
}

// AnalyticsClient reports platform and project metrics.
type AnalyticsClient interface {
	Platform(ctx context.Context) (*PlatformAnalytics, error)
	Project(ctx context.Context, projectID string) (*ProjectAnalytics, error)
	Trends(ctx context.Context, period string) (*MarketTrends, error)
}

// WebhooksClient manages webhook registrations.
type WebhooksClient interface {
	List(ctx context.Context, page, limit int) (*ListResponse[Webhook], error)
	Get(ctx context.Context, webhookID string) (*Webhook, error)
	Create(ctx context.Context, request *CreateWebhookRequest) (*Webhook, error)
	Update(ctx context.Context, webhookID string, request *UpdateWebhookRequest) (*Webhook, error)
	Delete(ctx context.Context, webhookID string) error
	Test(ctx context.Context, webhookID string) (*WebhookTestResult, error)
}

// AuthClient implements wallet-based authentication. A successful Verify
// returns a session whose token can be installed with Client.SetAuthToken.
type AuthClient interface {
	Challenge(ctx context.Context, walletAddress string) (*AuthChallenge, error)
	Verify(ctx context.Context, request *AuthVerifyRequest) (*AuthSession, error)
}
