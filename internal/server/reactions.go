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

// ReactionHandler 处理支持反应的增删查
type ReactionHandler struct {
	store *Store
}

// NewReactionHandler 创建一个新的 ReactionHandler 实例
func NewReactionHandler(store *Store) *ReactionHandler {
	return &ReactionHandler{store}
}

// Add 添加或切换反应。同一用户在同一目标上已有反应时只更新类型，
// 客户端不需要先删后加。
func (h *ReactionHandler) Add(c *gin.Context) {
	var req model.ReactionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "Invalid request data", err))
		return
	}

	if !h.store.TargetExists(req.TargetType, req.TargetID) {
		if req.TargetType == model.TargetEvent {
			errors.HandleError(c, errors.New(errors.ErrEventNotFound, "Event not found"))
		} else {
			errors.HandleError(c, errors.New(errors.ErrPostNotFound, "Post not found"))
		}
		return
	}

	userID := middleware.CurrentUserID(c)
	h.store.UpsertReaction(userID, req.TargetType, req.TargetID, req.ReactionType)

	util.Logger.Debug("反应已记录",
		zap.Int("user_id", userID),
		zap.String("target_type", string(req.TargetType)),
		zap.Int("target_id", req.TargetID),
		zap.String("reaction_type", string(req.ReactionType)))

	c.JSON(201, gin.H{
		"target_type":   req.TargetType,
		"target_id":     req.TargetID,
		"reaction_type": req.ReactionType,
	})
}

// Remove 删除观看者在目标上的反应。不接收反应类型参数：每个用户在
// 每个目标上最多持有一个反应，删除的就是当前那一个。
func (h *ReactionHandler) Remove(c *gin.Context) {
	target := model.TargetType(c.Query("target_type"))
	targetID, err := strconv.Atoi(c.Query("target_id"))
	if err != nil || !target.Valid() {
		errors.HandleError(c, errors.New(errors.ErrValidation, "Invalid request data"))
		return
	}

	userID := middleware.CurrentUserID(c)
	if err := h.store.DeleteReaction(userID, target, targetID); err != nil {
		errors.HandleError(c, err)
		return
	}

	c.JSON(200, gin.H{"message": "Reaction removed successfully"})
}

// EventReactions 返回活动的反应聚合
func (h *ReactionHandler) EventReactions(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrValidation, "Invalid event ID"))
		return
	}
	if !h.store.TargetExists(model.TargetEvent, id) {
		errors.HandleError(c, errors.New(errors.ErrEventNotFound, "Event not found"))
		return
	}
	c.JSON(200, h.store.ReactionTotals(model.TargetEvent, id))
}

// PostReactions 返回帖子的反应聚合
func (h *ReactionHandler) PostReactions(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrValidation, "Invalid post ID"))
		return
	}
	if !h.store.TargetExists(model.TargetPost, id) {
		errors.HandleError(c, errors.New(errors.ErrPostNotFound, "Post not found"))
		return
	}
	c.JSON(200, h.store.ReactionTotals(model.TargetPost, id))
}
