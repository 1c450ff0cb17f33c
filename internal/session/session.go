package session

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/sakialabs/RiseUp/internal/client"
	"github.com/sakialabs/RiseUp/internal/model"
	"github.com/sakialabs/RiseUp/internal/storage"
)

// State 会话状态机的状态
type State int

const (
	Uninitialized State = iota
	Loading
	Authenticated
	Unauthenticated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Loading:
		return "loading"
	case Authenticated:
		return "authenticated"
	case Unauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}

// Manager 持有当前用户与令牌，在整个进程生命周期内唯一。
// 所有出站请求的令牌都由它提供；任何 401 响应都会使会话全局失效。
type Manager struct {
	mu      sync.RWMutex
	api     *client.Client
	store   storage.Store
	state   State
	token   string
	user    *model.User
	profile *model.Profile
}

// NewManager 创建会话管理器并与 API 客户端双向接线：
// 客户端从这里取令牌，401 时回调这里使会话失效。
func NewManager(api *client.Client, store storage.Store) *Manager {
	m := &Manager{
		api:   api,
		store: store,
		state: Uninitialized,
	}
	api.SetTokenSource(m)
	api.SetOnUnauthorized(m.invalidate)
	return m
}

// Token 实现 client.TokenSource
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// State 返回当前会话状态
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// CurrentUser 返回当前登录用户
func (m *Manager) CurrentUser() (*model.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state != Authenticated || m.user == nil {
		return nil, false
	}
	u := *m.user
	return &u, true
}

// Profile 返回缓存的资料快照，可能为 nil
func (m *Manager) Profile() *model.Profile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.profile == nil {
		return nil
	}
	p := *m.profile
	return &p
}

// Restore 在冷启动时从本地存储恢复会话。
// 有令牌则直接进入 authenticated（令牌有效性由后续请求的 401 裁决），
// 没有则进入 unauthenticated。
func (m *Manager) Restore(ctx context.Context) State {
	m.mu.Lock()
	m.state = Loading
	m.mu.Unlock()

	token, err := m.store.Get(storage.KeyToken)
	if err != nil {
		if err != storage.ErrNotFound {
			zap.L().Warn("读取令牌失败", zap.Error(err))
		}
		m.mu.Lock()
		m.state = Unauthenticated
		m.mu.Unlock()
		return Unauthenticated
	}

	var profile *model.Profile
	if raw, err := m.store.Get(storage.KeyProfile); err == nil {
		var p model.Profile
		if err := json.Unmarshal([]byte(raw), &p); err == nil {
			profile = &p
		}
	}

	m.mu.Lock()
	m.token = token
	m.profile = profile
	if profile != nil {
		m.user = &model.User{ID: profile.User.ID, Email: profile.User.Email}
	}
	m.state = Authenticated
	m.mu.Unlock()

	zap.L().Info("会话已从本地存储恢复")
	return Authenticated
}

// Login 登录并持久化令牌与资料快照
func (m *Manager) Login(ctx context.Context, email, password string) error {
	auth, err := m.api.Login(ctx, model.LoginRequest{Email: email, Password: password})
	if err != nil {
		m.mu.Lock()
		if m.state == Uninitialized || m.state == Loading {
			m.state = Unauthenticated
		}
		m.mu.Unlock()
		return err
	}
	m.commit(auth)
	return nil
}

// Register 注册新账号，成功后立即进入已登录状态
func (m *Manager) Register(ctx context.Context, req model.RegisterRequest) error {
	auth, err := m.api.Register(ctx, req)
	if err != nil {
		m.mu.Lock()
		if m.state == Uninitialized || m.state == Loading {
			m.state = Unauthenticated
		}
		m.mu.Unlock()
		return err
	}
	m.commit(auth)
	return nil
}

// Logout 显式退出：通知后端（尽力而为）、清空本地存储与内存状态
func (m *Manager) Logout(ctx context.Context) {
	if err := m.api.Logout(ctx); err != nil {
		zap.L().Warn("登出请求失败", zap.Error(err))
	}
	m.invalidate()
}

// commit 先持久化再更新内存状态
func (m *Manager) commit(auth *model.AuthResponse) {
	if err := m.store.Set(storage.KeyToken, auth.AccessToken); err != nil {
		zap.L().Error("持久化令牌失败", zap.Error(err))
	}
	if raw, err := json.Marshal(auth.Profile); err == nil {
		if err := m.store.Set(storage.KeyProfile, string(raw)); err != nil {
			zap.L().Warn("持久化资料快照失败", zap.Error(err))
		}
	}

	m.mu.Lock()
	m.token = auth.AccessToken
	user := auth.User
	profile := auth.Profile
	m.user = &user
	m.profile = &profile
	m.state = Authenticated
	m.mu.Unlock()
}

// invalidate 使会话失效。登出与任何 401 响应都走这里。
func (m *Manager) invalidate() {
	if err := m.store.Delete(storage.KeyToken); err != nil {
		zap.L().Warn("清除令牌失败", zap.Error(err))
	}
	if err := m.store.Delete(storage.KeyProfile); err != nil {
		zap.L().Warn("清除资料快照失败", zap.Error(err))
	}

	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.profile = nil
	m.state = Unauthenticated
	m.mu.Unlock()

	zap.L().Info("会话已失效")
}

var _ client.TokenSource = (*Manager)(nil)
