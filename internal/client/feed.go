package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/sakialabs/RiseUp/internal/model"
)

// Feed fetches the merged activity stream, newest first. limit <= 0 means
// the backend default.
func (c *Client) Feed(ctx context.Context, limit int) ([]model.FeedItem, error) {
	var query url.Values
	if limit > 0 {
		query = url.Values{"limit": []string{strconv.Itoa(limit)}}
	}
	var out []model.FeedItem
	if err := c.get(ctx, "/feed", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}
