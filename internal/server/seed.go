package server

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sakialabs/RiseUp/internal/model"
)

// Seed 填充一组演示数据，便于离线开发时客户端有内容可看
func Seed(store *Store) {
	hash, err := bcrypt.GenerateFromPassword([]byte("riseup2024"), bcrypt.DefaultCost)
	if err != nil {
		zap.L().Error("生成演示密码失败", zap.Error(err))
		return
	}

	maya, mayaProfile, err := store.CreateUser(model.RegisterRequest{
		Email:       "maya@example.org",
		Password:    "riseup2024",
		Name:        "Maya Chen",
		ProfileType: model.ProfileIndividual,
		Bio:         "Tenant organizer in the east side.",
		Location:    "Oakland, CA",
		Causes:      []string{"HOUSING_JUSTICE", "MUTUAL_AID"},
	}, string(hash))
	if err != nil {
		zap.L().Warn("演示数据已存在，跳过填充")
		return
	}

	_, collectiveProfile, _ := store.CreateUser(model.RegisterRequest{
		Email:       "hello@sunrisecollective.org",
		Password:    "riseup2024",
		Name:        "Sunrise Mutual Aid",
		ProfileType: model.ProfileGroup,
		Location:    "Oakland, CA",
		Causes:      []string{"MUTUAL_AID", "FOOD_SECURITY"},
	}, string(hash))

	lat, lng := 37.8044, -122.2712
	event := store.CreateEvent(collectiveProfile.ID, model.EventCreateRequest{
		Title:       "Community Fridge Restock Day",
		Description: "Help us restock the 14th Street community fridge. Bring what you can, take what you need.",
		EventDate:   time.Now().UTC().Add(7 * 24 * time.Hour),
		Location:    "14th & Franklin, Oakland",
		Latitude:    &lat,
		Longitude:   &lng,
		Tags:        []string{"mutual-aid", "food"},
	})

	post, _ := store.CreatePost(mayaProfile.ID, model.PostCreateRequest{
		Text: "Rent board hearing moved to Thursday 6pm. Show up if you can, numbers matter.",
	})

	store.UpsertReaction(maya.ID, model.TargetEvent, event.ID, model.ReactionSolidarity)
	if post != nil {
		store.UpsertReaction(maya.ID, model.TargetPost, post.ID, model.ReactionCare)
	}

	store.CreatePosting(model.FairWorkPostingCreateRequest{
		Title:          "Warehouse Associate",
		Organization:   "Bay Logistics Workers Co-op",
		Location:       "Oakland, CA",
		WageText:       "$24-28/hr",
		EmploymentType: model.EmploymentFullTime,
		UnionStatus:    model.UnionStatusUnionized,
		Description:    "Worker-owned logistics co-op hiring for day shifts. Full benefits from day one.",
		WorkerNotes:    "Current members report genuine say in scheduling.",
	})

	zap.L().Info("演示数据填充完成")
}
