package client

import (
	"context"

	"github.com/sakialabs/RiseUp/internal/model"
	"github.com/sakialabs/RiseUp/internal/util"
)

// Login authenticates with email/password and returns the token plus the
// current user and profile.
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	var out model.AuthResponse
	if err := c.post(ctx, "/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account. Pre-flight validation runs before any
// network call; a failing check never reaches the wire.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	if err := util.ValidateRegistration(req); err != nil {
		return nil, err
	}
	if req.Causes == nil {
		req.Causes = []string{}
	}
	var out model.AuthResponse
	if err := c.post(ctx, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout tells the backend the session ended. Token removal is the caller's
// job; the backend is stateless about it.
func (c *Client) Logout(ctx context.Context) error {
	return c.post(ctx, "/auth/logout", nil, nil)
}
