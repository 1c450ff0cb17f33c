package server

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sakialabs/RiseUp/internal/middleware"
)

// FeedHandler 处理合并信息流请求
type FeedHandler struct {
	store *Store
}

// NewFeedHandler 创建一个新的 FeedHandler 实例
func NewFeedHandler(store *Store) *FeedHandler {
	return &FeedHandler{store}
}

// Get 返回合并后的信息流（活动+帖子，按时间倒序）
func (h *FeedHandler) Get(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	viewerID := middleware.CurrentUserID(c)
	c.JSON(200, h.store.FeedItems(viewerID, limit))
}
