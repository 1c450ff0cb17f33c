package server

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sakialabs/RiseUp/internal/errors"
	"github.com/sakialabs/RiseUp/internal/model"
)

// UnionizedHandler 处理公平工作信息板请求
type UnionizedHandler struct {
	store *Store
}

// NewUnionizedHandler 创建一个新的 UnionizedHandler 实例
func NewUnionizedHandler(store *Store) *UnionizedHandler {
	return &UnionizedHandler{store}
}

// List 按过滤条件列出工作信息
func (h *UnionizedHandler) List(c *gin.Context) {
	filter := model.FairWorkFilter{
		Location:       c.Query("location"),
		EmploymentType: model.EmploymentType(c.Query("employment_type")),
		UnionStatus:    model.UnionStatus(c.Query("union_status")),
	}
	if raw := c.Query("skip"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			filter.Skip = parsed
		}
	}
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 1 && parsed <= 100 {
			filter.Limit = parsed
		}
	}
	c.JSON(200, h.store.ListPostings(filter))
}

// Get 按ID查询工作信息
func (h *UnionizedHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		errors.HandleError(c, errors.New(errors.ErrValidation, "Invalid posting ID"))
		return
	}
	posting, ok := h.store.GetPosting(id)
	if !ok {
		errors.HandleError(c, errors.New(errors.ErrPostingNotFound, "Fair work posting not found"))
		return
	}
	c.JSON(200, posting)
}

// Create 发布工作信息
func (h *UnionizedHandler) Create(c *gin.Context) {
	var req model.FairWorkPostingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "Invalid posting data", err))
		return
	}
	c.JSON(201, h.store.CreatePosting(req))
}
