package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sakialabs/RiseUp/internal/model"
)

// ListPostings returns fair-work postings, newest first, with optional
// filters.
func (c *Client) ListPostings(ctx context.Context, filter model.FairWorkFilter) ([]model.FairWorkPosting, error) {
	query := url.Values{}
	if filter.Skip > 0 {
		query.Set("skip", strconv.Itoa(filter.Skip))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Location != "" {
		query.Set("location", filter.Location)
	}
	if filter.EmploymentType != "" {
		query.Set("employment_type", string(filter.EmploymentType))
	}
	if filter.UnionStatus != "" {
		query.Set("union_status", string(filter.UnionStatus))
	}

	var out []model.FairWorkPosting
	if err := c.get(ctx, "/unionized", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPosting returns one fair-work posting by ID.
func (c *Client) GetPosting(ctx context.Context, id int) (*model.FairWorkPosting, error) {
	var out model.FairWorkPosting
	if err := c.get(ctx, fmt.Sprintf("/unionized/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePosting publishes a fair-work posting.
func (c *Client) CreatePosting(ctx context.Context, req model.FairWorkPostingCreateRequest) (*model.FairWorkPosting, error) {
	var out model.FairWorkPosting
	if err := c.post(ctx, "/unionized", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
