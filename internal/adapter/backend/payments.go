package backend

import (
	"context"
	"net/http"
	"net/url"

	"currency-wallet-web/internal/core/domain"
	"currency-wallet-web/internal/core/ports"
)

// CreatePayment initiates a simulated provider deposit and returns the
// order reference plus the redirect target. Navigation to the target is the
// user's choice, never automatic.
func (c *Client) CreatePayment(ctx context.Context, req ports.CreatePaymentRequest) (*domain.PaymentIntent, error) {
	var intent domain.PaymentIntent
	if err := c.do(ctx, http.MethodPost, "/PayU/create-payment", req, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// PaymentStatus polls the state of a deposit order.
func (c *Client) PaymentStatus(ctx context.Context, orderID string) (*domain.PaymentStatus, error) {
	var status domain.PaymentStatus
	path := "/PayU/payment-status/" + url.PathEscape(orderID)
	if err := c.do(ctx, http.MethodGet, path, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
