package server

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sakialabs/RiseUp/internal/errors"
	"github.com/sakialabs/RiseUp/internal/middleware"
	"github.com/sakialabs/RiseUp/internal/model"
)

// ProfileHandler 处理资料相关请求
type ProfileHandler struct {
	store *Store
}

// NewProfileHandler 创建一个新的 ProfileHandler 实例
func NewProfileHandler(store *Store) *ProfileHandler {
	return &ProfileHandler{store}
}

// GetMe 返回当前用户的资料
func (h *ProfileHandler) GetMe(c *gin.Context) {
	profile, ok := h.store.ProfileByUserID(middleware.CurrentUserID(c))
	if !ok {
		errors.HandleError(c, errors.New(errors.ErrProfileNotFound, "Profile not found"))
		return
	}
	c.JSON(200, profile)
}

// UpdateMe 更新当前用户的资料
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	var req model.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "Invalid profile data", err))
		return
	}

	profile, ok := h.store.UpdateProfile(middleware.CurrentUserID(c), req)
	if !ok {
		errors.HandleError(c, errors.New(errors.ErrProfileNotFound, "Profile not found"))
		return
	}
	c.JSON(200, profile)
}

// Get 按ID查询资料
func (h *ProfileHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrValidation, "Invalid profile ID"))
		return
	}
	profile, ok := h.store.ProfileByID(id)
	if !ok {
		errors.HandleError(c, errors.New(errors.ErrProfileNotFound, "Profile not found"))
		return
	}
	c.JSON(200, profile)
}

// Events 返回某资料创建的活动
func (h *ProfileHandler) Events(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrValidation, "Invalid profile ID"))
		return
	}
	if _, ok := h.store.ProfileByID(id); !ok {
		errors.HandleError(c, errors.New(errors.ErrProfileNotFound, "Profile not found"))
		return
	}
	c.JSON(200, h.store.EventsByCreator(id))
}

// Attending 返回当前用户加入的活动
func (h *ProfileHandler) Attending(c *gin.Context) {
	c.JSON(200, h.store.EventsAttendedBy(middleware.CurrentUserID(c)))
}
