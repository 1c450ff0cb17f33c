package server

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sakialabs/RiseUp/internal/errors"
	"github.com/sakialabs/RiseUp/internal/middleware"
	"github.com/sakialabs/RiseUp/internal/model"
	"github.com/sakialabs/RiseUp/internal/util"
)

// EventHandler 处理活动相关请求
type EventHandler struct {
	store *Store
}

// NewEventHandler 创建一个新的 EventHandler 实例
func NewEventHandler(store *Store) *EventHandler {
	return &EventHandler{store}
}

// Create 创建活动
func (h *EventHandler) Create(c *gin.Context) {
	var req model.EventCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "Invalid event data", err))
		return
	}

	userID := middleware.CurrentUserID(c)
	profile, ok := h.store.ProfileByUserID(userID)
	if !ok {
		errors.HandleError(c, errors.New(errors.ErrProfileNotFound, "Profile not found"))
		return
	}

	event := h.store.CreateEvent(profile.ID, req)
	util.Logger.Info("活动已创建",
		zap.Int("event_id", event.ID),
		zap.Int("creator_profile_id", profile.ID))
	c.JSON(201, event)
}

// List 列出全部活动
func (h *EventHandler) List(c *gin.Context) {
	c.JSON(200, h.store.ListEvents(false))
}

// ListMap 列出带坐标的活动
func (h *EventHandler) ListMap(c *gin.Context) {
	c.JSON(200, h.store.ListEvents(true))
}

// Get 查询单个活动
func (h *EventHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrValidation, "Invalid event ID"))
		return
	}
	event, ok := h.store.GetEvent(id)
	if !ok {
		errors.HandleError(c, errors.New(errors.ErrEventNotFound, "Event not found"))
		return
	}
	c.JSON(200, event)
}

// Join 加入活动
func (h *EventHandler) Join(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrValidation, "Invalid event ID"))
		return
	}
	resp, joinErr := h.store.Join(middleware.CurrentUserID(c), id)
	if joinErr != nil {
		errors.HandleError(c, joinErr)
		return
	}
	c.JSON(200, resp)
}

// Leave 退出活动
func (h *EventHandler) Leave(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrValidation, "Invalid event ID"))
		return
	}
	resp, leaveErr := h.store.Leave(middleware.CurrentUserID(c), id)
	if leaveErr != nil {
		errors.HandleError(c, leaveErr)
		return
	}
	c.JSON(200, resp)
}

// Attendees 列出活动参与者
func (h *EventHandler) Attendees(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrValidation, "Invalid event ID"))
		return
	}
	resp, attErr := h.store.Attendees(id)
	if attErr != nil {
		errors.HandleError(c, attErr)
		return
	}
	c.JSON(200, resp)
}
