package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	apperrors "github.com/sakialabs/RiseUp/internal/errors"
	"github.com/sakialabs/RiseUp/internal/model"
)

// AddReaction adds or switches the viewer's reaction on a target. The
// backend removes any prior reaction by the same viewer itself; callers must
// not pair this with RemoveReaction.
func (c *Client) AddReaction(ctx context.Context, target model.TargetType, targetID int, kind model.ReactionKind) error {
	if !kind.Valid() {
		return apperrors.New(apperrors.ErrValidation,
			"Invalid reaction_type. Must be one of: care, solidarity, respect, gratitude")
	}
	if !target.Valid() {
		return apperrors.New(apperrors.ErrValidation, "Invalid target_type. Must be one of: event, post")
	}
	req := model.ReactionCreateRequest{
		TargetType:   target,
		TargetID:     targetID,
		ReactionType: kind,
	}
	return c.post(ctx, "/reactions", req, nil)
}

// RemoveReaction removes the viewer's active reaction on a target. It takes
// no reaction kind: a viewer holds at most one active reaction per target,
// and the backend removes whichever one that is.
func (c *Client) RemoveReaction(ctx context.Context, target model.TargetType, targetID int) error {
	query := url.Values{
		"target_type": []string{string(target)},
		"target_id":   []string{strconv.Itoa(targetID)},
	}
	return c.delete(ctx, "/reactions", query, nil)
}

// EventReactions returns aggregate reaction counts for one event.
func (c *Client) EventReactions(ctx context.Context, eventID int) (*model.ReactionTotals, error) {
	var out model.ReactionTotals
	if err := c.get(ctx, fmt.Sprintf("/reactions/events/%d", eventID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PostReactions returns aggregate reaction counts for one post.
func (c *Client) PostReactions(ctx context.Context, postID int) (*model.ReactionTotals, error) {
	var out model.ReactionTotals
	if err := c.get(ctx, fmt.Sprintf("/reactions/posts/%d", postID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
