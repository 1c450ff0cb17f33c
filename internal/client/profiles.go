package client

import (
	"context"
	"fmt"

	"github.com/sakialabs/RiseUp/internal/model"
)

// MyProfile returns the authenticated viewer's profile.
func (c *Client) MyProfile(ctx context.Context) (*model.Profile, error) {
	var out model.Profile
	if err := c.get(ctx, "/profiles/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMyProfile applies a partial update to the viewer's profile.
func (c *Client) UpdateMyProfile(ctx context.Context, req model.ProfileUpdateRequest) (*model.Profile, error) {
	var out model.Profile
	if err := c.patch(ctx, "/profiles/me", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProfile returns any profile by ID.
func (c *Client) GetProfile(ctx context.Context, id int) (*model.Profile, error) {
	var out model.Profile
	if err := c.get(ctx, fmt.Sprintf("/profiles/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProfileEvents returns the events a profile created.
func (c *Client) ProfileEvents(ctx context.Context, id int) ([]model.Event, error) {
	var out []model.Event
	if err := c.get(ctx, fmt.Sprintf("/profiles/%d/events", id), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyAttendingEvents returns the events the viewer joined.
func (c *Client) MyAttendingEvents(ctx context.Context) ([]model.Event, error) {
	var out []model.Event
	if err := c.get(ctx, "/profiles/me/attending", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
