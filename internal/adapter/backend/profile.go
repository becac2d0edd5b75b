package backend

import (
	"context"
	"net/http"

	"currency-wallet-web/internal/core/domain"
	"currency-wallet-web/internal/core/ports"
)

// MyProfile returns the caller's editable profile.
func (c *Client) MyProfile(ctx context.Context) (*domain.Profile, error) {
	var profile domain.Profile
	if err := c.do(ctx, http.MethodGet, "/Profile/me", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateMyProfile applies a partial profile update.
func (c *Client) UpdateMyProfile(ctx context.Context, update ports.ProfileUpdate) error {
	return c.do(ctx, http.MethodPut, "/Profile/me", update, nil)
}

// DeleteMyProfile permanently removes the caller's user and accounts.
func (c *Client) DeleteMyProfile(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/Profile/me", nil, nil)
}
