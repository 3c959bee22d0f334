package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/xrplsale/xrplsale-go/internal/http"
	"github.com/xrplsale/xrplsale-go/pkg/xrplsale"
)

// ProjectsService implements xrplsale.ProjectsClient.
type ProjectsService struct {
	httpClient *http.Client
}

// NewProjectsService creates a new projects service.
func NewProjectsService(httpClient *http.Client) *ProjectsService {
	return &ProjectsService{httpClient: httpClient}
}

// pageQuery builds the paging parameters shared by listing shortcuts.
// Non-positive values are omitted so the server applies its defaults.
func pageQuery(page, limit int) url.Values {
	values := url.Values{}
	if page > 0 {
		values.Set("page", strconv.Itoa(page))
	}

	if limit > 0 {
		values.Set("limit", strconv.Itoa(limit))
	}

	return values
}

// List implements xrplsale.ProjectsClient.List.
func (s *ProjectsService) List(ctx context.Context, opts *xrplsale.ProjectListOptions) (*xrplsale.ListResponse[xrplsale.Project], error) {
	resp, err := s.httpClient.Get(ctx, "/projects", opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	var result xrplsale.ListResponse[xrplsale.Project]
	if err := unmarshalResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("parsing projects list response: %w", err)
	}

	return &result, nil
}

// listByStatus backs the Active/Upcoming/Completed shortcuts.
func (s *ProjectsService) listByStatus(ctx context.Context, status xrplsale.ProjectStatus, page, limit int) (*xrplsale.ListResponse[xrplsale.Project], error) {
	return s.List(ctx, &xrplsale.ProjectListOptions{
		ListOptions: xrplsale.ListOptions{Page: page, Limit: limit},
		Status:      status,
	})
}

// Active implements xrplsale.ProjectsClient.Active.
func (s *ProjectsService) Active(ctx context.Context, page, limit int) (*xrplsale.ListResponse[xrplsale.Project], error) {
	return s.listByStatus(ctx, xrplsale.ProjectStatusActive, page, limit)
}

// Upcoming implements xrplsale.ProjectsClient.Upcoming.
func (s *ProjectsService) Upcoming(ctx context.Context, page, limit int) (*xrplsale.ListResponse[xrplsale.Project], error) {
	return s.listByStatus(ctx, xrplsale.ProjectStatusUpcoming, page, limit)
}

// Completed implements xrplsale.ProjectsClient.Completed.
func (s *ProjectsService) Completed(ctx context.Context, page, limit int) (*xrplsale.ListResponse[xrplsale.Project], error) {
	return s.listByStatus(ctx, xrplsale.ProjectStatusCompleted, page, limit)
}

// Get implements xrplsale.ProjectsClient.Get.
func (s *ProjectsService) Get(ctx context.Context, projectID string) (*xrplsale.Project, error) {
	path := fmt.Sprintf("/projects/%s", projectID)

	resp, err := s.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	var project xrplsale.Project
	if err := unmarshalResponse(resp, &project); err != nil {
		return nil, fmt.Errorf("parsing project response: %w", err)
	}

	return &project, nil
}

// Create implements xrplsale.ProjectsClient.Create.
func (s *ProjectsService) Create(ctx context.Context, request *xrplsale.CreateProjectRequest) (*xrplsale.Project, error) {
	resp, err := s.httpClient.Post(ctx, "/projects", request)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	var project xrplsale.Project
	if err := unmarshalResponse(resp, &project); err != nil {
		return nil, fmt.Errorf("parsing project response: %w", err)
	}

	return &project, nil
}

// Update implements xrplsale.ProjectsClient.Update.
func (s *ProjectsService) Update(ctx context.Context, projectID string, request *xrplsale.UpdateProjectRequest) (*xrplsale.Project, error) {
	path := fmt.Sprintf("/projects/%s", projectID)

	resp, err := s.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	var project xrplsale.Project
	if err := unmarshalResponse(resp, &project); err != nil {
		return nil, fmt.Errorf("parsing project response: %w", err)
	}

	return &project, nil
}

// lifecycleAction posts to one of the project lifecycle endpoints.
func (s *ProjectsService) lifecycleAction(ctx context.Context, projectID, action string) (*xrplsale.Project, error) {
	path := fmt.Sprintf("/projects/%s/%s", projectID, action)

	resp, err := s.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("running project %s: %w", action, err)
	}

	var project xrplsale.Project
	if err := unmarshalResponse(resp, &project); err != nil {
		return nil, fmt.Errorf("parsing project response: %w", err)
	}

	return &project, nil
}

// Launch implements xrplsale.ProjectsClient.Launch.
func (s *ProjectsService) Launch(ctx context.Context, projectID string) (*xrplsale.Project, error) {
	return s.lifecycleAction(ctx, projectID, "launch")
}

// Pause implements xrplsale.ProjectsClient.Pause.
func (s *ProjectsService) Pause(ctx context.Context, projectID string) (*xrplsale.Project, error) {
	return s.lifecycleAction(ctx, projectID, "pause")
}

// Resume implements xrplsale.ProjectsClient.Resume.
func (s *ProjectsService) Resume(ctx context.Context, projectID string) (*xrplsale.Project, error) {
	return s.lifecycleAction(ctx, projectID, "resume")
}

// Cancel implements xrplsale.ProjectsClient.Cancel.
func (s *ProjectsService) Cancel(ctx context.Context, projectID string) (*xrplsale.Project, error) {
	return s.lifecycleAction(ctx, projectID, "cancel")
}

// Stats implements xrplsale.ProjectsClient.Stats.
func (s *ProjectsService) Stats(ctx context.Context, projectID string) (*xrplsale.ProjectStats, error) {
	path := fmt.Sprintf("/projects/%s/stats", projectID)

	resp, err := s.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting project stats: %w", err)
	}

	var stats xrplsale.ProjectStats
	if err := unmarshalResponse(resp, &stats); err != nil {
		return nil, fmt.Errorf("parsing project stats response: %w", err)
	}

	return &stats, nil
}

// Investors implements xrplsale.ProjectsClient.Investors.
func (s *ProjectsService) Investors(ctx context.Context, projectID string, page, limit int) (*xrplsale.ListResponse[xrplsale.Investment], error) {
	path := fmt.Sprintf("/projects/%s/investors", projectID)

	resp, err := s.httpClient.Get(ctx, path, pageQuery(page, limit))
	if err != nil {
		return nil, fmt.Errorf("listing project investors: %w", err)
	}

	var result xrplsale.ListResponse[xrplsale.Investment]
	if err := unmarshalResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("parsing project investors response: %w", err)
	}

	return &result, nil
}

// Tiers implements xrplsale.ProjectsClient.Tiers.
func (s *ProjectsService) Tiers(ctx context.Context, projectID string) ([]xrplsale.ProjectTier, error) {
	path := fmt.Sprintf("/projects/%s/tiers", projectID)

	resp, err := s.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting project tiers: %w", err)
	}

	var tiers []xrplsale.ProjectTier
	if err := unmarshalResponse(resp, &tiers); err != nil {
		return nil, fmt.Errorf("parsing project tiers response: %w", err)
	}

	return tiers, nil
}

// UpdateTiers implements xrplsale.ProjectsClient.UpdateTiers.
func (s *ProjectsService) UpdateTiers(ctx context.Context, projectID string, tiers []xrplsale.ProjectTier) ([]xrplsale.ProjectTier, error) {
	path := fmt.Sprintf("/projects/%s/tiers", projectID)
	body := map[string][]xrplsale.ProjectTier{"tiers": tiers}

	resp, err := s.httpClient.Put(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("updating project tiers: %w", err)
	}

	var updated []xrplsale.ProjectTier
	if err := unmarshalResponse(resp, &updated); err != nil {
		return nil, fmt.Errorf("parsing project tiers response: %w", err)
	}

	return updated, nil
}

// Search implements xrplsale.ProjectsClient.Search.
func (s *ProjectsService) Search(ctx context.Context, query string, opts *xrplsale.SearchOptions) (*xrplsale.ListResponse[xrplsale.Project], error) {
	values := opts.ToValues()
	values.Set("q", query)

	resp, err := s.httpClient.Get(ctx, "/projects/search", values)
	if err != nil {
		return nil, fmt.Errorf("searching projects: %w", err)
	}

	var result xrplsale.ListResponse[xrplsale.Project]
	if err := unmarshalResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("parsing project search response: %w", err)
	}

	return &result, nil
}

// Featured implements xrplsale.ProjectsClient.Featured.
func (s *ProjectsService) Featured(ctx context.Context, limit int) ([]xrplsale.Project, error) {
	resp, err := s.httpClient.Get(ctx, "/projects/featured", pageQuery(0, limit))
	if err != nil {
		return nil, fmt.Errorf("listing featured projects: %w", err)
	}

	var result xrplsale.ListResponse[xrplsale.Project]
	if err := unmarshalResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("parsing featured projects response: %w", err)
	}

	return result.Data, nil
}

// Trending implements xrplsale.ProjectsClient.Trending.
func (s *ProjectsService) Trending(ctx context.Context, period string, limit int) ([]xrplsale.Project, error) {
	values := pageQuery(0, limit)
	if period != "" {
		values.Set("period", period)
	}

	resp, err := s.httpClient.Get(ctx, "/projects/trending", values)
	if err != nil {
		return nil, fmt.Errorf("listing trending projects: %w", err)
	}

	var result xrplsale.ListResponse[xrplsale.Project]
	if err := unmarshalResponse(resp, &result); err != nil {
		return nil, fmt.Errorf("parsing trending projects response: %w", err)
	}

	return result.Data, nil
}

// All implements xrplsale.ProjectsClient.All.
func (s *ProjectsService) All(ctx context.Context, status xrplsale.ProjectStatus) *xrplsale.PaginationIterator[xrplsale.Project] {
	return xrplsale.NewPaginationIterator(ctx, func(ctx context.Context, page, limit int) (*xrplsale.ListResponse[xrplsale.Project], error) {
		return s.List(ctx, &xrplsale.ProjectListOptions{
			ListOptions: xrplsale.ListOptions{Page: page, Limit: limit},
			Status:      status,
		})
	})
}
