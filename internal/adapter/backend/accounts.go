package backend

import (
	"context"
	"net/http"

	"currency-wallet-web/internal/core/domain"
)

type createAccountRequest struct {
	CurrencyCode string `json:"currencyCode"`
}

// MyAccounts lists the caller's accounts. A null or missing body decodes to
// an empty list rather than an error.
func (c *Client) MyAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := c.do(ctx, http.MethodGet, "/Accounts", nil, &accounts); err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

// CreateAccount opens a new account in the given currency. The backend
// assigns the id and opening balance; the currency is immutable afterwards.
func (c *Client) CreateAccount(ctx context.Context, currencyCode string) (*domain.Account, error) {
	var account domain.Account
	if err := c.do(ctx, http.MethodPost, "/Accounts", createAccountRequest{CurrencyCode: currencyCode}, &account); err != nil {
		return nil, err
	}
	return &account, nil
}
