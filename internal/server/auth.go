package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/sakialabs/RiseUp/internal/errors"
	"github.com/sakialabs/RiseUp/internal/model"
	"github.com/sakialabs/RiseUp/internal/util"
)

// AuthHandler 处理与认证相关的HTTP请求
type AuthHandler struct {
	store *Store
}

// NewAuthHandler 创建一个新的 AuthHandler 实例
func NewAuthHandler(store *Store) *AuthHandler {
	return &AuthHandler{store}
}

// Register 处理用户注册请求
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Logger.Warn("注册失败，无效的请求数据", zap.Error(err))
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "Invalid registration data", err))
		return
	}

	if err := util.ValidatePassword(req.Password); err != nil {
		errors.HandleError(c, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "Registration failed", err))
		return
	}

	user, profile, err := h.store.CreateUser(req, string(hashed))
	if err != nil {
		util.Logger.Warn("注册失败，邮箱已存在", zap.String("email", req.Email))
		errors.HandleError(c, err)
		return
	}

	token, err := util.GenerateToken(user.ID)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "Failed to generate token", err))
		return
	}

	c.JSON(201, model.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        *user,
		Profile:     *profile,
	})
}

// Login 处理用户登录请求
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrValidation, "Invalid request data", err))
		return
	}

	user, hash, ok := h.store.FindUserByEmail(req.Email)
	if !ok {
		errors.HandleError(c, errors.New(errors.ErrInvalidCredentials, "Invalid email or password"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		errors.HandleError(c, errors.New(errors.ErrInvalidCredentials, "Invalid email or password"))
		return
	}

	token, err := util.GenerateToken(user.ID)
	if err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrInternal, "Failed to generate token", err))
		return
	}

	profile, _ := h.store.ProfileByUserID(user.ID)
	resp := model.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        *user,
	}
	if profile != nil {
		resp.Profile = *profile
	}
	c.JSON(200, resp)
}

// Logout 处理登出。令牌是无状态的，真正的失效发生在客户端存储里。
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(200, gin.H{
		"message": "Successfully logged out. Please remove the token from client storage.",
	})
}
