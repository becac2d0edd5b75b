package domain

import "github.com/shopspring/decimal"

// ExchangeDetails describes one executed exchange between two of the
// caller's accounts: what was debited and credited, the rate applied, the
// resulting balances, and the ledger entry created.
type ExchangeDetails struct {
	TransactionID    int64           `json:"transactionId"`
	AmountDebited    decimal.Decimal `json:"amountDebited"`
	AmountCredited   decimal.Decimal `json:"amountCredited"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
	FromCurrency     string          `json:"fromCurrency"`
	ToCurrency       string          `json:"toCurrency"`
	NewFromBalance   decimal.Decimal `json:"newFromAccountBalance"`
	NewToBalance     decimal.Decimal `json:"newToAccountBalance"`
}

// ExchangeResult wraps the outcome of POST /Exchange/perform. It is
// transient: rendered once on the page that performed the exchange and
// never persisted.
type ExchangeResult struct {
	Success         bool             `json:"success"`
	ErrorMessage    string           `json:"errorMessage"`
	ExchangeDetails *ExchangeDetails `json:"exchangeDetails"`
}

// ConversionResult is the outcome of a stateless currency conversion.
type ConversionResult struct {
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	Amount          decimal.Decimal `json:"amount"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	Rate            decimal.Decimal `json:"rate"`
}
