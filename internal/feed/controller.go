package feed

import (
	"context"
	"sync"

	"go.uber.org/zap"

	apperrors "github.com/sakialabs/RiseUp/internal/errors"
	"github.com/sakialabs/RiseUp/internal/model"
)

// API is the slice of the REST client the controller depends on.
type API interface {
	Feed(ctx context.Context, limit int) ([]model.FeedItem, error)
	AddReaction(ctx context.Context, target model.TargetType, targetID int, kind model.ReactionKind) error
	RemoveReaction(ctx context.Context, target model.TargetType, targetID int) error
}

// Controller exclusively owns the in-memory feed list. Reaction taps are
// applied optimistically for instant feedback, persisted to the backend, and
// reconciled by an unconditional refetch afterwards; the refetch is the
// correctness backstop on both success and failure.
//
// Each toggle bumps a monotonic sequence number and its refetch commits only
// if it is still the most recently issued one, so overlapping taps cannot
// land a stale snapshot over a newer one.
type Controller struct {
	mu    sync.Mutex
	api   API
	limit int
	items []model.FeedItem
	seq   uint64

	onChange func()
	logger   *zap.Logger
}

// NewController creates a controller. limit <= 0 means the backend default.
func NewController(api API, limit int) *Controller {
	return &Controller{
		api:    api,
		limit:  limit,
		logger: zap.L(),
	}
}

// SetOnChange installs the render trigger invoked after every visible state
// change (optimistic mutation or committed refetch).
func (c *Controller) SetOnChange(fn func()) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// Items returns a deep-copied snapshot of the current feed.
func (c *Controller) Items() []model.FeedItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.FeedItem, len(c.items))
	for i := range c.items {
		out[i] = c.items[i].Clone()
	}
	return out
}

// Get returns a snapshot of one item by key.
func (c *Controller) Get(key model.FeedKey) (model.FeedItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Key() == key {
			return c.items[i].Clone(), true
		}
	}
	return model.FeedItem{}, false
}

// Load fetches the authoritative feed and replaces local state wholesale.
func (c *Controller) Load(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	token := c.seq
	c.mu.Unlock()

	items, err := c.api.Feed(ctx, c.limit)
	if err != nil {
		return err
	}
	c.commit(token, items)
	return nil
}

// ToggleReaction handles one tap on a reaction button. Re-tapping the active
// kind removes it; any other tap adds or switches to the tapped kind (switch
// semantics live server-side, the client issues a single add call). The
// local list is mutated immediately, then the backend call goes out, then
// the feed is refetched regardless of the call's outcome.
//
// Mutation failures are logged and resolved by the refetch, never surfaced.
// The returned error only reports invalid input: an unknown item or kind.
func (c *Controller) ToggleReaction(ctx context.Context, key model.FeedKey, kind model.ReactionKind) error {
	if !kind.Valid() {
		return apperrors.New(apperrors.ErrValidation,
			"Invalid reaction_type. Must be one of: care, solidarity, respect, gratitude")
	}

	c.mu.Lock()
	idx := -1
	for i := range c.items {
		if c.items[i].Key() == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return apperrors.New(apperrors.ErrResourceNotFound, "Feed item not found")
	}

	active, hasActive := c.items[idx].ActiveReaction()
	removing := hasActive && active == kind
	if removing {
		c.items[idx].Reactions = removeLocal(c.items[idx].Reactions, kind)
	} else {
		c.items[idx].Reactions = switchLocal(c.items[idx].Reactions, kind)
	}

	c.seq++
	token := c.seq
	notify := c.onChange
	c.mu.Unlock()

	if notify != nil {
		notify()
	}

	var err error
	if removing {
		err = c.api.RemoveReaction(ctx, key.Type, key.ID)
	} else {
		err = c.api.AddReaction(ctx, key.Type, key.ID, kind)
	}
	if err != nil {
		// Silent-recoverable: the refetch below restores server truth.
		c.logger.Warn("reaction mutation failed, resyncing",
			zap.String("target_type", string(key.Type)),
			zap.Int("target_id", key.ID),
			zap.String("reaction_type", string(kind)),
			zap.Error(err))
	}

	c.refetch(ctx, token)
	return nil
}

// refetch pulls the authoritative feed and commits it if no newer operation
// has been issued meanwhile.
func (c *Controller) refetch(ctx context.Context, token uint64) {
	items, err := c.api.Feed(ctx, c.limit)
	if err != nil {
		c.logger.Warn("feed refetch failed", zap.Error(err))
		return
	}
	c.commit(token, items)
}

func (c *Controller) commit(token uint64, items []model.FeedItem) {
	c.mu.Lock()
	if token != c.seq {
		c.mu.Unlock()
		c.logger.Debug("dropping stale feed snapshot",
			zap.Uint64("token", token))
		return
	}
	c.items = items
	notify := c.onChange
	c.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// removeLocal applies the re-tap branch: the tapped kind loses the viewer's
// reaction and one count, and empty entries are dropped.
func removeLocal(reactions []model.ReactionCount, kind model.ReactionKind) []model.ReactionCount {
	out := reactions[:0]
	for _, r := range reactions {
		if r.ReactionType == kind {
			r.UserReacted = false
			if r.Count > 0 {
				r.Count--
			}
		}
		if r.Count > 0 {
			out = append(out, r)
		}
	}
	return out
}

// switchLocal applies the add-or-switch branch: the previously active entry
// (if any) loses the viewer and one count, the tapped kind gains both, and
// empty entries are dropped.
func switchLocal(reactions []model.ReactionCount, kind model.ReactionKind) []model.ReactionCount {
	found := false
	out := make([]model.ReactionCount, 0, len(reactions)+1)
	for _, r := range reactions {
		if r.UserReacted && r.ReactionType != kind {
			r.UserReacted = false
			if r.Count > 0 {
				r.Count--
			}
		}
		if r.ReactionType == kind {
			found = true
			r.UserReacted = true
			r.Count++
		}
		if r.Count > 0 {
			out = append(out, r)
		}
	}
	if !found {
		out = append(out, model.ReactionCount{
			ReactionType: kind,
			Count:        1,
			UserReacted:  true,
		})
	}
	return out
}
