package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sakialabs/RiseUp/internal/errors"
	"github.com/sakialabs/RiseUp/internal/util"
)

// UserFinder 校验用户是否存在
type UserFinder interface {
	UserExists(id int) bool
}

// AuthMiddleware 解析 Bearer 令牌并把用户ID写入上下文
func AuthMiddleware(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errors.HandleError(c, errors.New(errors.ErrUnauthorized, "Not authenticated"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			errors.HandleError(c, errors.New(errors.ErrUnauthorized, "Invalid authentication format"))
			c.Abort()
			return
		}

		userID, err := util.ValidateToken(parts[1])
		if err != nil {
			zap.L().Debug("令牌校验失败", zap.Error(err))
			errors.HandleError(c, errors.Wrap(errors.ErrUnauthorized, "Invalid or expired token", err))
			c.Abort()
			return
		}

		if users != nil && !users.UserExists(userID) {
			errors.HandleError(c, errors.New(errors.ErrUnauthorized, "Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// CurrentUserID 从上下文取出认证中间件写入的用户ID
func CurrentUserID(c *gin.Context) int {
	id, _ := c.Get("user_id")
	userID, _ := id.(int)
	return userID
}
