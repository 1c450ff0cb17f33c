package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sakialabs/RiseUp/config"
	"github.com/sakialabs/RiseUp/internal/model"
	"github.com/sakialabs/RiseUp/internal/util"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.AppConfig.JWTSecret = "test-secret"
	config.AppConfig.TokenTTL = time.Hour
	util.InitLogger("error")
	os.Exit(m.Run())
}

func postJSON(router *gin.Engine, path string, payload interface{}, token string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// TestRegisterHandler 测试注册接口
func TestRegisterHandler(t *testing.T) {
	store := NewStore()
	router := NewRouter(store, "http://localhost:3000")

	req := model.RegisterRequest{
		Email:       "maya@example.org",
		Password:    "riseup2024",
		Name:        "Maya",
		ProfileType: model.ProfileIndividual,
	}
	w := postJSON(router, "/api/v1/auth/register", req, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp model.AuthResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "maya@example.org", resp.User.Email)
	assert.Equal(t, "Maya", resp.Profile.Name)
	assert.NotNil(t, resp.Profile.Causes)
}

// TestRegisterDuplicateEmail 重复邮箱返回固定的 detail 字符串
func TestRegisterDuplicateEmail(t *testing.T) {
	store := NewStore()
	router := NewRouter(store, "http://localhost:3000")

	req := model.RegisterRequest{
		Email:       "maya@example.org",
		Password:    "riseup2024",
		Name:        "Maya",
		ProfileType: model.ProfileIndividual,
	}
	assert.Equal(t, http.StatusCreated, postJSON(router, "/api/v1/auth/register", req, "").Code)

	w := postJSON(router, "/api/v1/auth/register", req, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Email already registered", resp["detail"])
}

// TestRegisterWeakPassword 弱密码被拒绝
func TestRegisterWeakPassword(t *testing.T) {
	store := NewStore()
	router := NewRouter(store, "http://localhost:3000")

	req := model.RegisterRequest{
		Email:       "maya@example.org",
		Password:    "short1",
		Name:        "Maya",
		ProfileType: model.ProfileIndividual,
	}
	w := postJSON(router, "/api/v1/auth/register", req, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Equal(t, "Password must be at least 8 characters", resp["detail"])
}

// TestLoginHandler 测试登录接口
func TestLoginHandler(t *testing.T) {
	store := NewStore()
	router := NewRouter(store, "http://localhost:3000")

	register := model.RegisterRequest{
		Email:       "maya@example.org",
		Password:    "riseup2024",
		Name:        "Maya",
		ProfileType: model.ProfileIndividual,
	}
	postJSON(router, "/api/v1/auth/register", register, "")

	// 正确密码
	w := postJSON(router, "/api/v1/auth/login", model.LoginRequest{
		Email:    "maya@example.org",
		Password: "riseup2024",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	var resp model.AuthResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Maya", resp.Profile.Name)

	// 错误密码
	w = postJSON(router, "/api/v1/auth/login", model.LoginRequest{
		Email:    "maya@example.org",
		Password: "wrongpass1",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 不存在的用户
	w = postJSON(router, "/api/v1/auth/login", model.LoginRequest{
		Email:    "ghost@example.org",
		Password: "riseup2024",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// TestLogoutRequiresAuth 登出需要认证
func TestLogoutRequiresAuth(t *testing.T) {
	store := NewStore()
	router := NewRouter(store, "http://localhost:3000")

	w := postJSON(router, "/api/v1/auth/logout", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 注册后携带令牌可以登出
	reg := model.RegisterRequest{
		Email:       "maya@example.org",
		Password:    "riseup2024",
		Name:        "Maya",
		ProfileType: model.ProfileIndividual,
	}
	regW := postJSON(router, "/api/v1/auth/register", reg, "")
	var auth model.AuthResponse
	json.Unmarshal(regW.Body.Bytes(), &auth)

	w = postJSON(router, "/api/v1/auth/logout", nil, auth.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
