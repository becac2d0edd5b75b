package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one entry of the backend's append-only ledger. Immutable
// once created; the list order returned by the backend is preserved as-is.
type Transaction struct {
	ID            int64           `json:"id"`
	Timestamp     time.Time       `json:"timestamp"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	Description   *string         `json:"description"`
	FromAccountID int64           `json:"fromAccountId"`
	ToAccountID   int64           `json:"toAccountId"`
}

// DescriptionOrDash returns the description, or a dash when absent.
func (t Transaction) DescriptionOrDash() string {
	if t.Description == nil || *t.Description == "" {
		return "—"
	}
	return *t.Description
}

// TransferReceipt is the backend's acknowledgement of a created transfer.
type TransferReceipt struct {
	TransactionID int64 `json:"transactionId"`
}
