package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DetailResponse 定义错误响应结构。对外契约固定为 {"detail": ...}，
// detail 可以是字符串，也可以是字段错误数组。
type DetailResponse struct {
	Detail interface{} `json:"detail"`
}

// FieldError 字段级校验错误
type FieldError struct {
	Field string `json:"field,omitempty"`
	Msg   string `json:"msg"`
}

// 错误码与HTTP状态码映射
var errorStatusMap = map[ErrorCode]int{
	// 系统错误 (1000-1999)
	ErrInternal:    http.StatusInternalServerError,
	ErrUnavailable: http.StatusServiceUnavailable,
	ErrTimeout:     http.StatusRequestTimeout,

	// 认证错误 (2000-2999)
	ErrUnauthorized:       http.StatusUnauthorized,
	ErrForbidden:          http.StatusForbidden,
	ErrInvalidToken:       http.StatusUnauthorized,
	ErrTokenExpired:       http.StatusUnauthorized,
	ErrInvalidCredentials: http.StatusUnauthorized,

	// 请求错误 (3000-3999)
	ErrBadRequest:       http.StatusBadRequest,
	ErrValidation:       http.StatusBadRequest,
	ErrResourceNotFound: http.StatusNotFound,
	ErrResourceExists:   http.StatusConflict,

	// 业务错误 (4000-4999)
	ErrEmailRegistered:  http.StatusBadRequest,
	ErrWeakPassword:     http.StatusBadRequest,
	ErrProfileNotFound:  http.StatusNotFound,
	ErrEventNotFound:    http.StatusNotFound,
	ErrPostNotFound:     http.StatusNotFound,
	ErrReactionNotFound: http.StatusNotFound,
	ErrNotAttending:     http.StatusNotFound,
	ErrPostingNotFound:  http.StatusNotFound,
}

// StatusFor 返回错误码对应的HTTP状态码
func StatusFor(code ErrorCode) int {
	if status, ok := errorStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// HandleError 统一处理错误响应
func HandleError(c *gin.Context, err error) {
	if appErr, ok := err.(*AppError); ok {
		c.Error(appErr)
		c.JSON(StatusFor(appErr.Code), DetailResponse{Detail: appErr.Message})
		return
	}

	// 处理非 AppError 类型的错误
	c.Error(err)
	c.JSON(http.StatusInternalServerError, DetailResponse{Detail: "Internal server error"})
}

// HandleValidationErrors 以字段错误数组的形式返回校验失败
func HandleValidationErrors(c *gin.Context, fields []FieldError) {
	c.JSON(http.StatusBadRequest, DetailResponse{Detail: fields})
}
