package backend

import (
	"context"
	"net/http"

	"currency-wallet-web/pkg/apierror"
)

// HealthCheck verifies the backend API is reachable.
type HealthCheck struct {
	client *Client
}

// NewHealthCheck creates a backend health checker.
func NewHealthCheck(client *Client) *HealthCheck {
	return &HealthCheck{client: client}
}

func (h *HealthCheck) Name() string {
	return "backend"
}

// Ping issues an unauthenticated request against the public currency list.
// Any HTTP answer counts as reachable; only transport failures are fatal.
func (h *HealthCheck) Ping(ctx context.Context) error {
	err := h.client.do(ctx, http.MethodGet, "/Utils/allowed-currencies", nil, nil)
	if err == nil {
		return nil
	}
	if apiErr, ok := err.(*apierror.APIError); ok && apiErr.Kind != apierror.KindUnreachable {
		return nil
	}
	return err
}
