package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sakialabs/RiseUp/internal/model"
)

func registerTestUser(t *testing.T, router *gin.Engine, email string) model.AuthResponse {
	t.Helper()
	w := postJSON(router, "/api/v1/auth/register", model.RegisterRequest{
		Email:       email,
		Password:    "riseup2024",
		Name:        "Maya",
		ProfileType: model.ProfileIndividual,
	}, "")
	assert.Equal(t, http.StatusCreated, w.Code)
	var auth model.AuthResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &auth))
	return auth
}

func getJSON(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func deleteJSON(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("DELETE", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestReactionLifecycle 添加、切换、查询、删除反应的完整流程
func TestReactionLifecycle(t *testing.T) {
	store := NewStore()
	router := NewRouter(store, "http://localhost:3000")
	auth := registerTestUser(t, router, "maya@example.org")

	// 创建一个帖子作为反应目标
	w := postJSON(router, "/api/v1/posts", model.PostCreateRequest{Text: "Rent board meeting"}, auth.AccessToken)
	assert.Equal(t, http.StatusCreated, w.Code)
	var post model.Post
	json.Unmarshal(w.Body.Bytes(), &post)

	// 添加反应
	add := model.ReactionCreateRequest{
		TargetType:   model.TargetPost,
		TargetID:     post.ID,
		ReactionType: model.ReactionCare,
	}
	w = postJSON(router, "/api/v1/reactions", add, auth.AccessToken)
	assert.Equal(t, http.StatusCreated, w.Code)

	// 切换为另一种类型，旧的被替换
	add.ReactionType = model.ReactionSolidarity
	w = postJSON(router, "/api/v1/reactions", add, auth.AccessToken)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = getJSON(router, fmt.Sprintf("/api/v1/reactions/posts/%d", post.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)
	var totals model.ReactionTotals
	json.Unmarshal(w.Body.Bytes(), &totals)
	assert.Equal(t, 0, totals.Care)
	assert.Equal(t, 1, totals.Solidarity)

	// 删除反应，不带类型参数
	path := fmt.Sprintf("/api/v1/reactions?target_type=post&target_id=%d", post.ID)
	w = deleteJSON(router, path, auth.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code)

	// 再删一次返回404
	w = deleteJSON(router, path, auth.AccessToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestReactionTargetMissing 不存在的目标返回404
func TestReactionTargetMissing(t *testing.T) {
	store := NewStore()
	router := NewRouter(store, "http://localhost:3000")
	auth := registerTestUser(t, router, "maya@example.org")

	w := postJSON(router, "/api/v1/reactions", model.ReactionCreateRequest{
		TargetType:   model.TargetEvent,
		TargetID:     404,
		ReactionType: model.ReactionCare,
	}, auth.AccessToken)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Event not found", resp["detail"])
}

// TestReactionRequiresAuth 添加与删除都需要认证
func TestReactionRequiresAuth(t *testing.T) {
	store := NewStore()
	router := NewRouter(store, "http://localhost:3000")

	w := postJSON(router, "/api/v1/reactions", model.ReactionCreateRequest{
		TargetType:   model.TargetPost,
		TargetID:     1,
		ReactionType: model.ReactionCare,
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = deleteJSON(router, "/api/v1/reactions?target_type=post&target_id=1", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestFeedEndpoint 动态流携带每个条目的反应汇总
func TestFeedEndpoint(t *testing.T) {
	store := NewStore()
	router := NewRouter(store, "http://localhost:3000")
	auth := registerTestUser(t, router, "maya@example.org")

	w := postJSON(router, "/api/v1/posts", model.PostCreateRequest{Text: "hello"}, auth.AccessToken)
	var post model.Post
	json.Unmarshal(w.Body.Bytes(), &post)

	postJSON(router, "/api/v1/reactions", model.ReactionCreateRequest{
		TargetType:   model.TargetPost,
		TargetID:     post.ID,
		ReactionType: model.ReactionGratitude,
	}, auth.AccessToken)

	w = getJSON(router, "/api/v1/feed?limit=10", auth.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code)

	var items []model.FeedItem
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 1)
	assert.Equal(t, model.TargetPost, items[0].Type)
	assert.Len(t, items[0].Reactions, 1)
	assert.Equal(t, model.ReactionGratitude, items[0].Reactions[0].ReactionType)
	assert.True(t, items[0].Reactions[0].UserReacted)

	// 未认证访问动态流被拒绝
	w = getJSON(router, "/api/v1/feed", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
