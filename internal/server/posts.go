package server

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sakialabs/RiseUp/internal/errors"
	"github.com/sakialabs/RiseUp/internal/middleware"
	"github.com/sakialabs/RiseUp/internal/model"
)

// PostHandler 处理帖子相关请求
type PostHandler struct {
	store *Store
}

// NewPostHandler 创建一个新的 PostHandler 实例
func NewPostHandler(store *Store) *PostHandler {
	return &PostHandler{store}
}

// Create 创建帖子，正文不超过500字符
func (h *PostHandler) Create(c *gin.Context) {
	var req model.PostCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "Invalid post data", err))
		return
	}

	userID := middleware.CurrentUserID(c)
	profile, ok := h.store.ProfileByUserID(userID)
	if !ok {
		errors.HandleError(c, errors.New(errors.ErrProfileNotFound, "Profile not found"))
		return
	}

	post, err := h.store.CreatePost(profile.ID, req)
	if err != nil {
		errors.HandleError(c, err)
		return
	}
	c.JSON(201, post)
}

// Get 查询单个帖子
func (h *PostHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrValidation, "Invalid post ID"))
		return
	}
	post, ok := h.store.GetPost(id)
	if !ok {
		errors.HandleError(c, errors.New(errors.ErrPostNotFound, "Post not found"))
		return
	}
	c.JSON(200, post)
}
