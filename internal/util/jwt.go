package util

import (
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/sakialabs/RiseUp/config"
)

// GenerateToken 为指定用户生成访问令牌，有效期由 TOKEN_TTL 控制（默认7天）
func GenerateToken(userID int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(config.AppConfig.TokenTTL).Unix(),
	})

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ValidateToken 校验令牌并返回用户ID
func ValidateToken(tokenString string) (int, error) {
	if tokenString == "" {
		return 0, errors.New("令牌为空")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("非预期的签名方法")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})

	if err != nil {
		return 0, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		sub, ok := claims["sub"].(float64)
		if !ok {
			return 0, errors.New("无效的用户ID")
		}
		return int(sub), nil
	}

	return 0, errors.New("无效的令牌")
}
