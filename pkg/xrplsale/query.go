package xrplsale

import (
	"net/url"
	"strconv"
)

// ListOptions represents common list query parameters. Zero values are
// omitted from the query string.
type ListOptions struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// ToValues converts the options to URL query values.
func (o *ListOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	if o.Page > 0 {
		values.Set("page", strconv.Itoa(o.Page))
	}

	if o.Limit > 0 {
		values.Set("limit", strconv.Itoa(o.Limit))
	}

	if o.SortBy != "" {
		values.Set("sort_by", o.SortBy)
	}

	if o.SortOrder != "" {
		values.Set("sort_order", o.SortOrder)
	}

	return values
}

// ProjectListOptions represents query parameters for listing projects.
type ProjectListOptions struct {
	ListOptions

	Status ProjectStatus
}

// ToValues converts the options to URL query values.
func (o *ProjectListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	if o.Status != "" {
		values.Set("status", string(o.Status))
	}

	return values
}

// InvestmentListOptions represents query parameters for listing investments.
type InvestmentListOptions struct {
	ListOptions

	ProjectID       string
	InvestorAccount string
	Status          InvestmentStatus
}

// ToValues converts the options to URL query values.
func (o *InvestmentListOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	if o.ProjectID != "" {
		values.Set("project_id", o.ProjectID)
	}

	if o.InvestorAccount != "" {
		values.Set("investor_account", o.InvestorAccount)
	}

	if o.Status != "" {
		values.Set("status", string(o.Status))
	}

	return values
}

// SearchOptions represents query parameters for project search. The search
// term itself is passed separately as the "q" parameter.
type SearchOptions struct {
	ListOptions

	Status ProjectStatus
}

// ToValues converts the options to URL query values.
func (o *SearchOptions) ToValues() url.Values {
	if o == nil {
		return url.Values{}
	}

	values := o.ListOptions.ToValues()
	if o.Status != "" {
		values.Set("status", string(o.Status))
	}

	return values
}
