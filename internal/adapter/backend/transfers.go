package backend

import (
	"context"
	"net/http"

	"currency-wallet-web/internal/core/domain"
	"currency-wallet-web/internal/core/ports"
)

// CreateTransfer moves funds between two accounts. The backend validates
// ownership, currency, and balance; this client never pre-computes the
// resulting balances.
func (c *Client) CreateTransfer(ctx context.Context, req ports.TransferRequest) (*domain.TransferReceipt, error) {
	var receipt domain.TransferReceipt
	if err := c.do(ctx, http.MethodPost, "/Transfers", req, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// MyTransactions lists the caller's ledger entries in backend order.
func (c *Client) MyTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	if err := c.do(ctx, http.MethodGet, "/Transfers", nil, &transactions); err != nil {
		return nil, err
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	return transactions, nil
}
