package feed

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sakialabs/RiseUp/internal/model"
)

// MockAPI mocks the client slice the controller depends on.
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) Feed(ctx context.Context, limit int) ([]model.FeedItem, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FeedItem), args.Error(1)
}

func (m *MockAPI) AddReaction(ctx context.Context, target model.TargetType, targetID int, kind model.ReactionKind) error {
	args := m.Called(ctx, target, targetID, kind)
	return args.Error(0)
}

func (m *MockAPI) RemoveReaction(ctx context.Context, target model.TargetType, targetID int) error {
	args := m.Called(ctx, target, targetID)
	return args.Error(0)
}

var _ API = (*MockAPI)(nil)

func eventItem(id int, reactions ...model.ReactionCount) model.FeedItem {
	return model.FeedItem{
		Type:      model.TargetEvent,
		ID:        id,
		Title:     "Community Fridge Restock",
		CreatedAt: time.Now(),
		Reactions: reactions,
	}
}

func postItem(id int, reactions ...model.ReactionCount) model.FeedItem {
	return model.FeedItem{
		Type:      model.TargetPost,
		ID:        id,
		Text:      "Rent board meeting Thursday",
		CreatedAt: time.Now(),
		Reactions: reactions,
	}
}

func loaded(t *testing.T, api *MockAPI, items ...model.FeedItem) *Controller {
	t.Helper()
	c := NewController(api, 50)
	api.On("Feed", mock.Anything, 50).Return(items, nil).Once()
	assert.NoError(t, c.Load(context.Background()))
	return c
}

func TestLoadReplacesState(t *testing.T) {
	api := new(MockAPI)
	c := loaded(t, api, eventItem(1), postItem(2))

	items := c.Items()
	assert.Len(t, items, 2)
	assert.Equal(t, model.TargetEvent, items[0].Type)
	api.AssertExpectations(t)
}

// A tap on a new kind shows up locally before any backend round trip.
func TestToggleAddOptimistic(t *testing.T) {
	api := new(MockAPI)
	item := eventItem(1)
	c := loaded(t, api, item)
	key := item.Key()

	// The mutation call and the follow-up refetch both happen; the refetch
	// returns server truth confirming the add.
	confirmed := eventItem(1, model.ReactionCount{ReactionType: model.ReactionSolidarity, Count: 1, UserReacted: true})
	api.On("AddReaction", mock.Anything, model.TargetEvent, 1, model.ReactionSolidarity).Return(nil).Once()
	api.On("Feed", mock.Anything, 50).Return([]model.FeedItem{confirmed}, nil).Once()

	var optimistic []model.FeedItem
	var once sync.Once
	c.SetOnChange(func() {
		once.Do(func() { optimistic = c.Items() })
	})

	assert.NoError(t, c.ToggleReaction(context.Background(), key, model.ReactionSolidarity))

	// First notification carries the optimistic state, before the refetch.
	assert.Len(t, optimistic, 1)
	active, ok := optimistic[0].ActiveReaction()
	assert.True(t, ok)
	assert.Equal(t, model.ReactionSolidarity, active)
	assert.Equal(t, 1, optimistic[0].ReactionTotal())

	api.AssertExpectations(t)
}

// Tapping a different kind while one is active moves the viewer's reaction,
// never stacks it. Total count stays flat.
func TestToggleSwitchIsExclusive(t *testing.T) {
	api := new(MockAPI)
	item := postItem(7,
		model.ReactionCount{ReactionType: model.ReactionCare, Count: 3, UserReacted: true},
		model.ReactionCount{ReactionType: model.ReactionRespect, Count: 1},
	)
	c := loaded(t, api, item)

	api.On("AddReaction", mock.Anything, model.TargetPost, 7, model.ReactionGratitude).Return(nil).Once()
	api.On("Feed", mock.Anything, 50).Return([]model.FeedItem{item}, nil).Once()

	var optimistic model.FeedItem
	var once sync.Once
	c.SetOnChange(func() {
		once.Do(func() { optimistic, _ = c.Get(item.Key()) })
	})

	assert.NoError(t, c.ToggleReaction(context.Background(), item.Key(), model.ReactionGratitude))

	active, ok := optimistic.ActiveReaction()
	assert.True(t, ok)
	assert.Equal(t, model.ReactionGratitude, active)
	// care 3->2, respect 1, gratitude 0->1: total unchanged at 4.
	assert.Equal(t, 4, optimistic.ReactionTotal())
	for _, r := range optimistic.Reactions {
		if r.ReactionType == model.ReactionCare {
			assert.Equal(t, 2, r.Count)
			assert.False(t, r.UserReacted)
		}
	}

	api.AssertExpectations(t)
}

// Re-tapping the active kind removes it and issues a delete, not an add.
func TestToggleRetapRemoves(t *testing.T) {
	api := new(MockAPI)
	item := eventItem(3, model.ReactionCount{ReactionType: model.ReactionCare, Count: 1, UserReacted: true})
	c := loaded(t, api, item)

	api.On("RemoveReaction", mock.Anything, model.TargetEvent, 3).Return(nil).Once()
	api.On("Feed", mock.Anything, 50).Return([]model.FeedItem{eventItem(3)}, nil).Once()

	var optimistic model.FeedItem
	var once sync.Once
	c.SetOnChange(func() {
		once.Do(func() { optimistic, _ = c.Get(item.Key()) })
	})

	assert.NoError(t, c.ToggleReaction(context.Background(), item.Key(), model.ReactionCare))

	_, ok := optimistic.ActiveReaction()
	assert.False(t, ok)
	// Count hit zero so the entry is dropped entirely.
	assert.Empty(t, optimistic.Reactions)

	api.AssertExpectations(t)
}

// Counts never go negative even if local state is already at zero.
func TestRemoveFloorsAtZero(t *testing.T) {
	reactions := removeLocal([]model.ReactionCount{
		{ReactionType: model.ReactionRespect, Count: 0, UserReacted: true},
	}, model.ReactionRespect)
	assert.Empty(t, reactions)
}

func TestSwitchDropsEmptiedEntry(t *testing.T) {
	reactions := switchLocal([]model.ReactionCount{
		{ReactionType: model.ReactionCare, Count: 1, UserReacted: true},
	}, model.ReactionSolidarity)

	assert.Len(t, reactions, 1)
	assert.Equal(t, model.ReactionSolidarity, reactions[0].ReactionType)
	assert.Equal(t, 1, reactions[0].Count)
	assert.True(t, reactions[0].UserReacted)
}

// A failed mutation is not surfaced; the refetch restores server truth.
func TestMutationFailureResyncs(t *testing.T) {
	api := new(MockAPI)
	item := postItem(5)
	c := loaded(t, api, item)

	serverTruth := postItem(5, model.ReactionCount{ReactionType: model.ReactionRespect, Count: 2})
	api.On("AddReaction", mock.Anything, model.TargetPost, 5, model.ReactionCare).
		Return(errors.New("boom")).Once()
	api.On("Feed", mock.Anything, 50).Return([]model.FeedItem{serverTruth}, nil).Once()

	assert.NoError(t, c.ToggleReaction(context.Background(), item.Key(), model.ReactionCare))

	// Optimistic care reaction rolled back by the refetch.
	got, ok := c.Get(item.Key())
	assert.True(t, ok)
	_, active := got.ActiveReaction()
	assert.False(t, active)
	assert.Equal(t, 2, got.ReactionTotal())

	api.AssertExpectations(t)
}

// A refetch belonging to a superseded operation must not overwrite state
// committed by a newer one.
func TestStaleRefetchDropped(t *testing.T) {
	api := new(MockAPI)
	c := loaded(t, api, eventItem(1))

	stale := []model.FeedItem{eventItem(1, model.ReactionCount{ReactionType: model.ReactionCare, Count: 99})}
	fresh := []model.FeedItem{eventItem(1, model.ReactionCount{ReactionType: model.ReactionCare, Count: 1, UserReacted: true})}

	c.mu.Lock()
	staleToken := c.seq // captured before a newer operation bumps it
	c.seq++
	freshToken := c.seq
	c.mu.Unlock()

	c.commit(freshToken, fresh)
	c.commit(staleToken, stale)

	got, ok := c.Get(model.FeedKey{Type: model.TargetEvent, ID: 1})
	assert.True(t, ok)
	assert.Equal(t, 1, got.ReactionTotal())
	api.AssertExpectations(t)
}

func TestToggleRejectsUnknownKind(t *testing.T) {
	api := new(MockAPI)
	c := loaded(t, api, eventItem(1))

	err := c.ToggleReaction(context.Background(), model.FeedKey{Type: model.TargetEvent, ID: 1}, "love")
	assert.Error(t, err)
	api.AssertNotCalled(t, "AddReaction")
}

func TestToggleRejectsUnknownItem(t *testing.T) {
	api := new(MockAPI)
	c := loaded(t, api, eventItem(1))

	err := c.ToggleReaction(context.Background(), model.FeedKey{Type: model.TargetPost, ID: 404}, model.ReactionCare)
	assert.Error(t, err)
	api.AssertNotCalled(t, "AddReaction")
	api.AssertNotCalled(t, "RemoveReaction")
}

// Snapshots handed out by Items must not alias the controller's own list.
func TestItemsReturnsDeepCopies(t *testing.T) {
	api := new(MockAPI)
	c := loaded(t, api, eventItem(1, model.ReactionCount{ReactionType: model.ReactionCare, Count: 1}))

	snapshot := c.Items()
	snapshot[0].Reactions[0].Count = 100

	got, _ := c.Get(model.FeedKey{Type: model.TargetEvent, ID: 1})
	assert.Equal(t, 1, got.Reactions[0].Count)
}
