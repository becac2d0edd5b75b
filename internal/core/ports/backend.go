package ports

import (
	"context"

	"currency-wallet-web/internal/core/domain"

	"github.com/shopspring/decimal"
)

type tokenKey struct{}

// WithToken attaches the session's bearer token to a request context. The
// backend client reads it at the start of every call; requests without one
// go out unauthenticated.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom returns the bearer token carried by ctx, or "".
func TokenFrom(ctx context.Context) string {
	if tok, ok := ctx.Value(tokenKey{}).(string); ok {
		return tok
	}
	return ""
}

// RegisterRequest is the payload for POST /Auth/register.
type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginRequest is the payload for POST /Auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ProfileUpdate is the payload for PUT /Profile/me. Empty fields are
// omitted so the backend keeps their current values.
type ProfileUpdate struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

// TransferRequest is the payload for POST /Transfers. The destination may
// belong to a different user, which is why it is a raw id.
type TransferRequest struct {
	FromAccountID int64           `json:"fromAccountId"`
	ToAccountID   int64           `json:"toAccountId"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description,omitempty"`
}

// ExchangeRequest is the payload for POST /Exchange/perform. Both accounts
// belong to the caller and must hold different currencies.
type ExchangeRequest struct {
	FromAccountID int64           `json:"fromAccountId"`
	ToAccountID   int64           `json:"toAccountId"`
	Amount        decimal.Decimal `json:"amount"`
}

// ConvertRequest is the payload for POST /Currency/convert.
type ConvertRequest struct {
	FromCurrency string          `json:"FromCurrency"`
	ToCurrency   string          `json:"ToCurrency"`
	Amount       decimal.Decimal `json:"Amount"`
}

// CreatePaymentRequest is the payload for POST /PayU/create-payment.
type CreatePaymentRequest struct {
	AccountID    int64           `json:"accountId"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Description  string          `json:"description,omitempty"`
}

// AuthAPI covers registration, login, and identity lookup.
type AuthAPI interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*domain.AuthResponse, error)
	Me(ctx context.Context) (*domain.User, error)
}

// ProfileAPI covers the caller's own profile.
type ProfileAPI interface {
	MyProfile(ctx context.Context) (*domain.Profile, error)
	UpdateMyProfile(ctx context.Context, update ProfileUpdate) error
	DeleteMyProfile(ctx context.Context) error
}

// AccountAPI covers the caller's own accounts.
type AccountAPI interface {
	MyAccounts(ctx context.Context) ([]domain.Account, error)
	CreateAccount(ctx context.Context, currencyCode string) (*domain.Account, error)
}

// TransferAPI covers transfers and the caller's transaction history.
type TransferAPI interface {
	CreateTransfer(ctx context.Context, req TransferRequest) (*domain.TransferReceipt, error)
	MyTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// ExchangeAPI performs currency exchanges between the caller's accounts.
type ExchangeAPI interface {
	PerformExchange(ctx context.Context, req ExchangeRequest) (*domain.ExchangeResult, error)
}

// CurrencyAPI covers stateless conversion and the supported-currency list.
type CurrencyAPI interface {
	Convert(ctx context.Context, req ConvertRequest) (*domain.ConversionResult, error)
	AllowedCurrencies(ctx context.Context) ([]string, error)
}

// PaymentAPI covers the simulated deposit provider.
type PaymentAPI interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*domain.PaymentIntent, error)
	PaymentStatus(ctx context.Context, orderID string) (*domain.PaymentStatus, error)
}

// AdminAPI covers cross-user listings and removals. Callers must hold the
// admin role; the backend re-checks it on every call.
type AdminAPI interface {
	AllAccounts(ctx context.Context) ([]domain.Account, error)
	AllTransactions(ctx context.Context) ([]domain.Transaction, error)
	DeleteAccount(ctx context.Context, accountID int64) error
	DeleteTransaction(ctx context.Context, transactionID int64) error
}
