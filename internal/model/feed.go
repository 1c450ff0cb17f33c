package model

import "time"

// ReactionKind is one of the four support reactions a viewer may attach to a
// feed item. A viewer holds at most one active reaction per item.
type ReactionKind string

const (
	ReactionCare       ReactionKind = "care"
	ReactionSolidarity ReactionKind = "solidarity"
	ReactionRespect    ReactionKind = "respect"
	ReactionGratitude  ReactionKind = "gratitude"
)

// ReactionKinds lists every valid kind in display order.
var ReactionKinds = []ReactionKind{
	ReactionCare,
	ReactionSolidarity,
	ReactionRespect,
	ReactionGratitude,
}

// Valid reports whether k is one of the four fixed kinds.
func (k ReactionKind) Valid() bool {
	switch k {
	case ReactionCare, ReactionSolidarity, ReactionRespect, ReactionGratitude:
		return true
	}
	return false
}

// TargetType discriminates the two feed item variants.
type TargetType string

const (
	TargetEvent TargetType = "event"
	TargetPost  TargetType = "post"
)

func (t TargetType) Valid() bool {
	return t == TargetEvent || t == TargetPost
}

// ReactionCount is the per-kind reaction summary on a feed item.
type ReactionCount struct {
	ReactionType ReactionKind `json:"reaction_type"`
	Count        int          `json:"count"`
	UserReacted  bool         `json:"user_reacted"`
}

// ReactionCreateRequest adds or switches the viewer's reaction on a target.
type ReactionCreateRequest struct {
	TargetType   TargetType   `json:"target_type" binding:"required" validate:"required,oneof=event post"`
	TargetID     int          `json:"target_id" binding:"required" validate:"required"`
	ReactionType ReactionKind `json:"reaction_type" binding:"required" validate:"required,oneof=care solidarity respect gratitude"`
}

// ReactionTotals is the aggregate per-kind count for a single target.
type ReactionTotals struct {
	Care       int `json:"care"`
	Solidarity int `json:"solidarity"`
	Respect    int `json:"respect"`
	Gratitude  int `json:"gratitude"`
}

// Creator identifies who published a feed item.
type Creator struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	ProfileType ProfileType `json:"profile_type"`
}

// FeedItem is a unit of content in the combined activity stream, either an
// event or a post, discriminated by Type. Event-only and post-only fields are
// zero-valued on the other variant.
type FeedItem struct {
	Type      TargetType      `json:"type"`
	ID        int             `json:"id"`
	Creator   Creator         `json:"creator"`
	CreatedAt time.Time       `json:"created_at"`
	Reactions []ReactionCount `json:"reactions"`

	// Event fields.
	Title         string     `json:"title,omitempty"`
	Description   string     `json:"description,omitempty"`
	EventDate     *time.Time `json:"event_date,omitempty"`
	Location      string     `json:"location,omitempty"`
	Latitude      *float64   `json:"latitude,omitempty"`
	Longitude     *float64   `json:"longitude,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
	AttendeeCount int        `json:"attendee_count,omitempty"`

	// Post fields.
	Text     string `json:"text,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

// FeedKey identifies a feed item across both variants.
type FeedKey struct {
	Type TargetType
	ID   int
}

func (i *FeedItem) Key() FeedKey {
	return FeedKey{Type: i.Type, ID: i.ID}
}

// ActiveReaction returns the viewer's currently active reaction on the item.
func (i *FeedItem) ActiveReaction() (ReactionKind, bool) {
	for _, r := range i.Reactions {
		if r.UserReacted {
			return r.ReactionType, true
		}
	}
	return "", false
}

// ReactionTotal returns the summed count across all kinds.
func (i *FeedItem) ReactionTotal() int {
	total := 0
	for _, r := range i.Reactions {
		total += r.Count
	}
	return total
}

// Clone returns a deep copy. The feed controller hands out snapshots so
// callers can never mutate the owned list.
func (i *FeedItem) Clone() FeedItem {
	out := *i
	if i.Reactions != nil {
		out.Reactions = make([]ReactionCount, len(i.Reactions))
		copy(out.Reactions, i.Reactions)
	}
	if i.Tags != nil {
		out.Tags = make([]string, len(i.Tags))
		copy(out.Tags, i.Tags)
	}
	return out
}
