package backend

import (
	"context"
	"fmt"
	"net/http"

	"currency-wallet-web/internal/core/domain"
)

// AllAccounts lists every account across all users.
func (c *Client) AllAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := c.do(ctx, http.MethodGet, "/Accounts/all", nil, &accounts); err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

// AllTransactions lists every ledger entry across all users.
func (c *Client) AllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	if err := c.do(ctx, http.MethodGet, "/Transfers/all", nil, &transactions); err != nil {
		return nil, err
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	return transactions, nil
}

// DeleteAccount removes an account by id.
func (c *Client) DeleteAccount(ctx context.Context, accountID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/Admin/accounts/%d", accountID), nil, nil)
}

// DeleteTransaction removes a ledger entry by id.
func (c *Client) DeleteTransaction(ctx context.Context, transactionID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/Admin/transactions/%d", transactionID), nil, nil)
}
