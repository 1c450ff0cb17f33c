package server

import (
	"sort"
	"strings"
	"sync"
	"time"

	apperrors "github.com/sakialabs/RiseUp/internal/errors"
	"github.com/sakialabs/RiseUp/internal/model"
)

// userRecord 内部用户记录，哈希不对外暴露
type userRecord struct {
	model.User
	PasswordHash string
}

type reactionRecord struct {
	ID         int
	UserID     int
	TargetType model.TargetType
	TargetID   int
	Kind       model.ReactionKind
	CreatedAt  time.Time
}

type attendanceRecord struct {
	UserID  int
	EventID int
}

// Store 是 riseupd 的内存数据层。契约桩服务器刻意不依赖任何外部
// 存储，进程退出即丢弃全部数据。
type Store struct {
	mu sync.RWMutex

	nextUserID     int
	nextProfileID  int
	nextEventID    int
	nextPostID     int
	nextReactionID int
	nextPostingID  int

	users      map[int]*userRecord
	profiles   map[int]*model.Profile
	events     map[int]*model.Event
	posts      map[int]*model.Post
	postOwner  map[int]int // post ID -> creator profile ID
	reactions  []reactionRecord
	attendance []attendanceRecord
	postings   map[int]*model.FairWorkPosting
}

func NewStore() *Store {
	return &Store{
		users:     make(map[int]*userRecord),
		profiles:  make(map[int]*model.Profile),
		events:    make(map[int]*model.Event),
		posts:     make(map[int]*model.Post),
		postOwner: make(map[int]int),
		postings:  make(map[int]*model.FairWorkPosting),
	}
}

// CreateUser 创建用户及其资料，邮箱重复时返回业务错误
func (s *Store) CreateUser(req model.RegisterRequest, passwordHash string) (*model.User, *model.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(req.Email))
	for _, u := range s.users {
		if u.Email == email {
			return nil, nil, apperrors.New(apperrors.ErrEmailRegistered, "Email already registered")
		}
	}

	s.nextUserID++
	user := &userRecord{
		User: model.User{
			ID:        s.nextUserID,
			Email:     email,
			CreatedAt: time.Now().UTC(),
		},
		PasswordHash: passwordHash,
	}
	s.users[user.ID] = user

	causes := req.Causes
	if causes == nil {
		causes = []string{}
	}
	s.nextProfileID++
	profile := &model.Profile{
		ID:          s.nextProfileID,
		Name:        req.Name,
		Bio:         req.Bio,
		Location:    req.Location,
		ProfileType: req.ProfileType,
		Causes:      causes,
		User:        model.UserRef{ID: user.ID, Email: user.Email},
		CreatedAt:   time.Now().UTC(),
	}
	s.profiles[profile.ID] = profile

	u := user.User
	p := *profile
	return &u, &p, nil
}

// FindUserByEmail 返回用户及密码哈希
func (s *Store) FindUserByEmail(email string) (*model.User, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.users {
		if u.Email == email {
			user := u.User
			return &user, u.PasswordHash, true
		}
	}
	return nil, "", false
}

// UserExists 实现认证中间件的 UserFinder
func (s *Store) UserExists(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[id]
	return ok
}

// ProfileByUserID 按用户ID查资料
func (s *Store) ProfileByUserID(userID int) (*model.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profileByUserLocked(userID)
}

func (s *Store) profileByUserLocked(userID int) (*model.Profile, bool) {
	for _, p := range s.profiles {
		if p.User.ID == userID {
			out := *p
			return &out, true
		}
	}
	return nil, false
}

// ProfileByID 按资料ID查资料
func (s *Store) ProfileByID(id int) (*model.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[id]
	if !ok {
		return nil, false
	}
	out := *p
	return &out, true
}

// UpdateProfile 应用部分更新并返回新资料
func (s *Store) UpdateProfile(userID int, req model.ProfileUpdateRequest) (*model.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.profiles {
		if p.User.ID == userID {
			if req.Name != nil {
				p.Name = *req.Name
			}
			if req.Bio != nil {
				p.Bio = *req.Bio
			}
			if req.Location != nil {
				p.Location = *req.Location
			}
			if req.Causes != nil {
				p.Causes = req.Causes
			}
			now := time.Now().UTC()
			p.UpdatedAt = &now
			out := *p
			return &out, true
		}
	}
	return nil, false
}

// CreateEvent 创建活动
func (s *Store) CreateEvent(creatorProfileID int, req model.EventCreateRequest) *model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	s.nextEventID++
	event := &model.Event{
		ID:          s.nextEventID,
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Tags:        tags,
		CreatorID:   creatorProfileID,
		CreatedAt:   time.Now().UTC(),
	}
	s.events[event.ID] = event
	out := *event
	return &out
}

// ListEvents 按创建时间倒序返回全部活动
func (s *Store) ListEvents(onlyMapped bool) []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Event, 0, len(s.events))
	for _, e := range s.events {
		if onlyMapped && (e.Latitude == nil || e.Longitude == nil) {
			continue
		}
		ev := *e
		ev.AttendeeCount = s.attendeeCountLocked(e.ID)
		out = append(out, ev)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// GetEvent 按ID查活动
func (s *Store) GetEvent(id int) (*model.Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events[id]
	if !ok {
		return nil, false
	}
	out := *e
	out.AttendeeCount = s.attendeeCountLocked(id)
	return &out, true
}

// EventsByCreator 返回某资料创建的活动
func (s *Store) EventsByCreator(profileID int) []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.Event{}
	for _, e := range s.events {
		if e.CreatorID == profileID {
			ev := *e
			ev.AttendeeCount = s.attendeeCountLocked(e.ID)
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *Store) attendeeCountLocked(eventID int) int {
	n := 0
	for _, a := range s.attendance {
		if a.EventID == eventID {
			n++
		}
	}
	return n
}

// Join 用户加入活动，重复加入是幂等的
func (s *Store) Join(userID, eventID int) (model.AttendanceResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[eventID]; !ok {
		return model.AttendanceResponse{}, apperrors.New(apperrors.ErrEventNotFound, "Event not found")
	}
	for _, a := range s.attendance {
		if a.UserID == userID && a.EventID == eventID {
			return s.attendanceResponseLocked(userID, eventID), nil
		}
	}
	s.attendance = append(s.attendance, attendanceRecord{UserID: userID, EventID: eventID})
	return s.attendanceResponseLocked(userID, eventID), nil
}

// Leave 用户退出活动
func (s *Store) Leave(userID, eventID int) (model.AttendanceResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[eventID]; !ok {
		return model.AttendanceResponse{}, apperrors.New(apperrors.ErrEventNotFound, "Event not found")
	}
	for i, a := range s.attendance {
		if a.UserID == userID && a.EventID == eventID {
			s.attendance = append(s.attendance[:i], s.attendance[i+1:]...)
			return s.attendanceResponseLocked(userID, eventID), nil
		}
	}
	return model.AttendanceResponse{}, apperrors.New(apperrors.ErrNotAttending, "Not attending this event")
}

// Attendees 返回活动的参与者资料
func (s *Store) Attendees(eventID int) (model.AttendanceResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.events[eventID]; !ok {
		return model.AttendanceResponse{}, apperrors.New(apperrors.ErrEventNotFound, "Event not found")
	}
	resp := model.AttendanceResponse{
		EventID:         eventID,
		AttendanceCount: s.attendeeCountLocked(eventID),
		Attendees:       []model.Attendee{},
	}
	for _, a := range s.attendance {
		if a.EventID != eventID {
			continue
		}
		if p, ok := s.profileByUserLocked(a.UserID); ok {
			resp.Attendees = append(resp.Attendees, model.Attendee{
				ID:          p.ID,
				Name:        p.Name,
				ProfileType: p.ProfileType,
			})
		}
	}
	return resp, nil
}

// EventsAttendedBy 返回用户加入的活动
func (s *Store) EventsAttendedBy(userID int) []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []model.Event{}
	for _, a := range s.attendance {
		if a.UserID != userID {
			continue
		}
		if e, ok := s.events[a.EventID]; ok {
			ev := *e
			ev.AttendeeCount = s.attendeeCountLocked(e.ID)
			out = append(out, ev)
		}
	}
	return out
}

func (s *Store) attendanceResponseLocked(userID, eventID int) model.AttendanceResponse {
	attending := false
	for _, a := range s.attendance {
		if a.UserID == userID && a.EventID == eventID {
			attending = true
			break
		}
	}
	return model.AttendanceResponse{
		EventID:         eventID,
		AttendanceCount: s.attendeeCountLocked(eventID),
		UserAttending:   attending,
	}
}

// CreatePost 创建帖子
func (s *Store) CreatePost(creatorProfileID int, req model.PostCreateRequest) (*model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.profiles[creatorProfileID]
	if !ok {
		return nil, apperrors.New(apperrors.ErrProfileNotFound, "Profile not found")
	}

	s.nextPostID++
	post := &model.Post{
		ID:       s.nextPostID,
		Text:     req.Text,
		ImageURL: req.ImageURL,
		Author: model.Creator{
			ID:          profile.ID,
			Name:        profile.Name,
			ProfileType: profile.ProfileType,
		},
		CreatedAt: time.Now().UTC(),
	}
	s.posts[post.ID] = post
	s.postOwner[post.ID] = creatorProfileID
	out := *post
	return &out, nil
}

// GetPost 按ID查帖子
func (s *Store) GetPost(id int) (*model.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.posts[id]
	if !ok {
		return nil, false
	}
	out := *p
	return &out, true
}

// TargetExists 判断反应目标是否存在
func (s *Store) TargetExists(target model.TargetType, id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if target == model.TargetEvent {
		_, ok := s.events[id]
		return ok
	}
	_, ok := s.posts[id]
	return ok
}

// UpsertReaction 添加或切换反应：同一用户在同一目标上最多持有一个反应，
// 已有反应时仅更新其类型（切换语义在服务端）。
func (s *Store) UpsertReaction(userID int, target model.TargetType, targetID int, kind model.ReactionKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reactions {
		r := &s.reactions[i]
		if r.UserID == userID && r.TargetType == target && r.TargetID == targetID {
			r.Kind = kind
			return
		}
	}
	s.nextReactionID++
	s.reactions = append(s.reactions, reactionRecord{
		ID:         s.nextReactionID,
		UserID:     userID,
		TargetType: target,
		TargetID:   targetID,
		Kind:       kind,
		CreatedAt:  time.Now().UTC(),
	})
}

// DeleteReaction 删除用户在目标上的反应（无论类型）
func (s *Store) DeleteReaction(userID int, target model.TargetType, targetID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.reactions {
		if r.UserID == userID && r.TargetType == target && r.TargetID == targetID {
			s.reactions = append(s.reactions[:i], s.reactions[i+1:]...)
			return nil
		}
	}
	return apperrors.New(apperrors.ErrReactionNotFound, "Reaction not found")
}

// ReactionSummary 汇总目标上的反应，并标记当前观看者的那一条
func (s *Store) ReactionSummary(target model.TargetType, targetID, viewerID int) []model.ReactionCount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reactionSummaryLocked(target, targetID, viewerID)
}

func (s *Store) reactionSummaryLocked(target model.TargetType, targetID, viewerID int) []model.ReactionCount {
	byKind := map[model.ReactionKind]*model.ReactionCount{}
	order := []model.ReactionKind{}
	for _, r := range s.reactions {
		if r.TargetType != target || r.TargetID != targetID {
			continue
		}
		entry, ok := byKind[r.Kind]
		if !ok {
			entry = &model.ReactionCount{ReactionType: r.Kind}
			byKind[r.Kind] = entry
			order = append(order, r.Kind)
		}
		entry.Count++
		if r.UserID == viewerID {
			entry.UserReacted = true
		}
	}
	out := make([]model.ReactionCount, 0, len(order))
	for _, kind := range order {
		out = append(out, *byKind[kind])
	}
	return out
}

// ReactionTotals 聚合目标上各类型的反应数
func (s *Store) ReactionTotals(target model.TargetType, targetID int) model.ReactionTotals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	totals := model.ReactionTotals{}
	for _, r := range s.reactions {
		if r.TargetType != target || r.TargetID != targetID {
			continue
		}
		switch r.Kind {
		case model.ReactionCare:
			totals.Care++
		case model.ReactionSolidarity:
			totals.Solidarity++
		case model.ReactionRespect:
			totals.Respect++
		case model.ReactionGratitude:
			totals.Gratitude++
		}
	}
	return totals
}

// FeedItems 合并活动与帖子，按创建时间倒序返回
func (s *Store) FeedItems(viewerID, limit int) []model.FeedItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := []model.FeedItem{}
	for _, e := range s.events {
		creator := model.Creator{}
		if p, ok := s.profiles[e.CreatorID]; ok {
			creator = model.Creator{ID: p.ID, Name: p.Name, ProfileType: p.ProfileType}
		}
		eventDate := e.EventDate
		items = append(items, model.FeedItem{
			Type:          model.TargetEvent,
			ID:            e.ID,
			Creator:       creator,
			CreatedAt:     e.CreatedAt,
			Reactions:     s.reactionSummaryLocked(model.TargetEvent, e.ID, viewerID),
			Title:         e.Title,
			Description:   e.Description,
			EventDate:     &eventDate,
			Location:      e.Location,
			Latitude:      e.Latitude,
			Longitude:     e.Longitude,
			Tags:          e.Tags,
			AttendeeCount: s.attendeeCountLocked(e.ID),
		})
	}
	for _, p := range s.posts {
		items = append(items, model.FeedItem{
			Type:      model.TargetPost,
			ID:        p.ID,
			Creator:   p.Author,
			CreatedAt: p.CreatedAt,
			Reactions: s.reactionSummaryLocked(model.TargetPost, p.ID, viewerID),
			Text:      p.Text,
			ImageURL:  p.ImageURL,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID > items[j].ID
		}
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// CreatePosting 创建工作信息
func (s *Store) CreatePosting(req model.FairWorkPostingCreateRequest) *model.FairWorkPosting {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPostingID++
	now := time.Now().UTC()
	posting := &model.FairWorkPosting{
		ID:             s.nextPostingID,
		Title:          req.Title,
		Organization:   req.Organization,
		Location:       req.Location,
		WageMin:        req.WageMin,
		WageMax:        req.WageMax,
		WageText:       req.WageText,
		EmploymentType: req.EmploymentType,
		UnionStatus:    req.UnionStatus,
		Description:    req.Description,
		WorkerNotes:    req.WorkerNotes,
		ApplicationURL: req.ApplicationURL,
		PostedDate:     now,
		CreatedAt:      now,
	}
	s.postings[posting.ID] = posting
	out := *posting
	return &out
}

// ListPostings 按过滤条件返回工作信息，最新的在前
func (s *Store) ListPostings(filter model.FairWorkFilter) []model.FairWorkPosting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.FairWorkPosting{}
	for _, p := range s.postings {
		if filter.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(filter.Location)) {
			continue
		}
		if filter.EmploymentType != "" && p.EmploymentType != filter.EmploymentType {
			continue
		}
		if filter.UnionStatus != "" && p.UnionStatus != filter.UnionStatus {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].PostedDate.Equal(out[j].PostedDate) {
			return out[i].ID > out[j].ID
		}
		return out[i].PostedDate.After(out[j].PostedDate)
	})

	if filter.Skip > 0 {
		if filter.Skip >= len(out) {
			return []model.FairWorkPosting{}
		}
		out = out[filter.Skip:]
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// GetPosting 按ID查工作信息
func (s *Store) GetPosting(id int) (*model.FairWorkPosting, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.postings[id]
	if !ok {
		return nil, false
	}
	out := *p
	return &out, true
}
