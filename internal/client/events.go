package client

import (
	"context"
	"fmt"
	"strings"

	apperrors "github.com/sakialabs/RiseUp/internal/errors"
	"github.com/sakialabs/RiseUp/internal/model"
	"github.com/sakialabs/RiseUp/internal/util"
)

// CreateEvent creates a new event. Required fields and the future-date rule
// are checked before any network call.
func (c *Client) CreateEvent(ctx context.Context, req model.EventCreateRequest) (*model.Event, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.New(apperrors.ErrValidation, "Title is required")
	}
	if strings.TrimSpace(req.Location) == "" {
		return nil, apperrors.New(apperrors.ErrValidation, "Location is required")
	}
	if err := util.ValidateEventDate(req.EventDate); err != nil {
		return nil, err
	}
	if req.Tags == nil {
		req.Tags = []string{}
	}
	var out model.Event
	if err := c.post(ctx, "/events", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListEvents returns all upcoming events.
func (c *Client) ListEvents(ctx context.Context) ([]model.Event, error) {
	var out []model.Event
	if err := c.get(ctx, "/events", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListMapEvents returns only events that carry coordinates.
func (c *Client) ListMapEvents(ctx context.Context) ([]model.Event, error) {
	var out []model.Event
	if err := c.get(ctx, "/events/map", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetEvent returns one event by ID.
func (c *Client) GetEvent(ctx context.Context, id int) (*model.Event, error) {
	var out model.Event
	if err := c.get(ctx, fmt.Sprintf("/events/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// JoinEvent marks the viewer as attending.
func (c *Client) JoinEvent(ctx context.Context, id int) (*model.AttendanceResponse, error) {
	var out model.AttendanceResponse
	if err := c.post(ctx, fmt.Sprintf("/events/%d/join", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LeaveEvent removes the viewer's attendance.
func (c *Client) LeaveEvent(ctx context.Context, id int) (*model.AttendanceResponse, error) {
	var out model.AttendanceResponse
	if err := c.delete(ctx, fmt.Sprintf("/events/%d/leave", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EventAttendees lists who is attending an event.
func (c *Client) EventAttendees(ctx context.Context, id int) (*model.AttendanceResponse, error) {
	var out model.AttendanceResponse
	if err := c.get(ctx, fmt.Sprintf("/events/%d/attendees", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
