package backend

import (
	"context"
	"net/http"

	"currency-wallet-web/internal/core/domain"
	"currency-wallet-web/internal/core/ports"
)

// Convert performs a stateless currency conversion at the current rate.
func (c *Client) Convert(ctx context.Context, req ports.ConvertRequest) (*domain.ConversionResult, error) {
	var result domain.ConversionResult
	if err := c.do(ctx, http.MethodPost, "/Currency/convert", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AllowedCurrencies lists the currency codes accounts may be opened in.
func (c *Client) AllowedCurrencies(ctx context.Context) ([]string, error) {
	var currencies []string
	if err := c.do(ctx, http.MethodGet, "/Utils/allowed-currencies", nil, &currencies); err != nil {
		return nil, err
	}
	if currencies == nil {
		currencies = []string{}
	}
	return currencies, nil
}
