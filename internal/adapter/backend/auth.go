package backend

import (
	"context"
	"net/http"

	"currency-wallet-web/internal/core/domain"
	"currency-wallet-web/internal/core/ports"
)

// Register creates a new user. Some backend versions return a token right
// away, which lets the caller skip the login step.
func (c *Client) Register(ctx context.Context, req ports.RegisterRequest) (*domain.AuthResponse, error) {
	var resp domain.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/Auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login authenticates and returns the session token. The token field name
// varies by backend version; domain.AuthResponse absorbs the variance.
func (c *Client) Login(ctx context.Context, req ports.LoginRequest) (*domain.AuthResponse, error) {
	var resp domain.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/Auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the current user's identity and role set.
func (c *Client) Me(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/Auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
