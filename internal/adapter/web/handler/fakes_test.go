package handler

import (
	"context"
	"net/http"
	"sync"

	"currency-wallet-web/internal/core/domain"
	"currency-wallet-web/internal/core/ports"
)

// fakeBackend implements every backend port in memory and counts calls, so
// tests can assert both what a page shows and which calls it made.
type fakeBackend struct {
	user         *domain.User
	authResp     *domain.AuthResponse
	profile      *domain.Profile
	accounts     []domain.Account
	transactions []domain.Transaction
	currencies   []string
	receipt      *domain.TransferReceipt
	exchangeRes  *domain.ExchangeResult
	convertRes   *domain.ConversionResult
	intent       *domain.PaymentIntent
	status       *domain.PaymentStatus

	// The dashboard fetches run in concurrent goroutines, so every map
	// access goes through mu.
	mu    sync.Mutex
	errs  map[string]error
	calls map[string]int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		user:       &domain.User{ID: "u1", Username: "alice", Email: "alice@example.com", Role: domain.Roles{"User"}},
		authResp:   &domain.AuthResponse{Token: "tok-123"},
		profile:    &domain.Profile{ID: "u1", FirstName: "Alice", LastName: "Nowak", Email: "alice@example.com", UserName: "alice"},
		currencies: []string{"PLN", "EUR", "USD"},
		receipt:    &domain.TransferReceipt{TransactionID: 42},
		errs:       map[string]error{},
		calls:      map[string]int{},
	}
}

func (f *fakeBackend) call(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	return f.errs[name]
}

// callCount reads a counter without racing the handlers still running.
func (f *fakeBackend) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeBackend) Register(ctx context.Context, req ports.RegisterRequest) (*domain.AuthResponse, error) {
	if err := f.call("Register"); err != nil {
		return nil, err
	}
	return f.authResp, nil
}

func (f *fakeBackend) Login(ctx context.Context, req ports.LoginRequest) (*domain.AuthResponse, error) {
	if err := f.call("Login"); err != nil {
		return nil, err
	}
	return f.authResp, nil
}

func (f *fakeBackend) Me(ctx context.Context) (*domain.User, error) {
	if err := f.call("Me"); err != nil {
		return nil, err
	}
	return f.user, nil
}

func (f *fakeBackend) MyProfile(ctx context.Context) (*domain.Profile, error) {
	if err := f.call("MyProfile"); err != nil {
		return nil, err
	}
	return f.profile, nil
}

func (f *fakeBackend) UpdateMyProfile(ctx context.Context, update ports.ProfileUpdate) error {
	return f.call("UpdateMyProfile")
}

func (f *fakeBackend) DeleteMyProfile(ctx context.Context) error {
	return f.call("DeleteMyProfile")
}

func (f *fakeBackend) MyAccounts(ctx context.Context) ([]domain.Account, error) {
	if err := f.call("MyAccounts"); err != nil {
		return nil, err
	}
	return f.accounts, nil
}

func (f *fakeBackend) CreateAccount(ctx context.Context, currencyCode string) (*domain.Account, error) {
	if err := f.call("CreateAccount"); err != nil {
		return nil, err
	}
	return &domain.Account{ID: 99, CurrencyCode: currencyCode}, nil
}

func (f *fakeBackend) CreateTransfer(ctx context.Context, req ports.TransferRequest) (*domain.TransferReceipt, error) {
	if err := f.call("CreateTransfer"); err != nil {
		return nil, err
	}
	return f.receipt, nil
}

func (f *fakeBackend) MyTransactions(ctx context.Context) ([]domain.Transaction, error) {
	if err := f.call("MyTransactions"); err != nil {
		return nil, err
	}
	return f.transactions, nil
}

func (f *fakeBackend) PerformExchange(ctx context.Context, req ports.ExchangeRequest) (*domain.ExchangeResult, error) {
	if err := f.call("PerformExchange"); err != nil {
		return nil, err
	}
	return f.exchangeRes, nil
}

func (f *fakeBackend) Convert(ctx context.Context, req ports.ConvertRequest) (*domain.ConversionResult, error) {
	if err := f.call("Convert"); err != nil {
		return nil, err
	}
	return f.convertRes, nil
}

func (f *fakeBackend) AllowedCurrencies(ctx context.Context) ([]string, error) {
	if err := f.call("AllowedCurrencies"); err != nil {
		return nil, err
	}
	return f.currencies, nil
}

func (f *fakeBackend) CreatePayment(ctx context.Context, req ports.CreatePaymentRequest) (*domain.PaymentIntent, error) {
	if err := f.call("CreatePayment"); err != nil {
		return nil, err
	}
	return f.intent, nil
}

func (f *fakeBackend) PaymentStatus(ctx context.Context, orderID string) (*domain.PaymentStatus, error) {
	if err := f.call("PaymentStatus"); err != nil {
		return nil, err
	}
	return f.status, nil
}

func (f *fakeBackend) AllAccounts(ctx context.Context) ([]domain.Account, error) {
	if err := f.call("AllAccounts"); err != nil {
		return nil, err
	}
	return f.accounts, nil
}

func (f *fakeBackend) AllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	if err := f.call("AllTransactions"); err != nil {
		return nil, err
	}
	return f.transactions, nil
}

func (f *fakeBackend) DeleteAccount(ctx context.Context, accountID int64) error {
	return f.call("DeleteAccount")
}

func (f *fakeBackend) DeleteTransaction(ctx context.Context, transactionID int64) error {
	return f.call("DeleteTransaction")
}

// stubSessions is an in-memory session store. Tests set token directly to
// simulate a logged-in visitor.
type stubSessions struct {
	token   string
	issued  string
	cleared bool
}

func (s *stubSessions) Issue(ctx context.Context, w http.ResponseWriter, token string) error {
	s.issued = token
	s.token = token
	return nil
}

func (s *stubSessions) Token(ctx context.Context, r *http.Request) (string, error) {
	return s.token, nil
}

func (s *stubSessions) Clear(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	s.cleared = true
	s.token = ""
	return nil
}
