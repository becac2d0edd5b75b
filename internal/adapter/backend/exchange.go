package backend

import (
	"context"
	"net/http"

	"currency-wallet-web/internal/core/domain"
	"currency-wallet-web/internal/core/ports"
)

// PerformExchange converts funds between two of the caller's accounts at
// the backend's current rate. The result is transient display data.
func (c *Client) PerformExchange(ctx context.Context, req ports.ExchangeRequest) (*domain.ExchangeResult, error) {
	var result domain.ExchangeResult
	if err := c.do(ctx, http.MethodPost, "/Exchange/perform", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
