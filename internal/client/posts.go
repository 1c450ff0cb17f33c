package client

import (
	"context"
	"fmt"

	"github.com/sakialabs/RiseUp/internal/model"
	"github.com/sakialabs/RiseUp/internal/util"
)

// CreatePost publishes a text update. Empty or over-length text is rejected
// before any network call.
func (c *Client) CreatePost(ctx context.Context, req model.PostCreateRequest) (*model.Post, error) {
	if err := util.ValidatePostText(req.Text); err != nil {
		return nil, err
	}
	var out model.Post
	if err := c.post(ctx, "/posts", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPost returns one post by ID.
func (c *Client) GetPost(ctx context.Context, id int) (*model.Post, error) {
	var out model.Post
	if err := c.get(ctx, fmt.Sprintf("/posts/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
