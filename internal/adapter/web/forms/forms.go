// Package forms holds the page form models and their client-side
// validation. A form that fails validation never reaches the backend; the
// page re-renders with an inline message and the submitted values intact.
package forms

import (
	"strconv"
	"strings"

	"currency-wallet-web/internal/core/domain"
	"currency-wallet-web/internal/core/ports"
	"currency-wallet-web/internal/i18n"

	"github.com/shopspring/decimal"
)

// ValidationError names the message key for an inline form error.
type ValidationError struct {
	Key string
}

func (e *ValidationError) Error() string { return e.Key }

func invalid(key string) *ValidationError { return &ValidationError{Key: key} }

// parseAmount accepts a decimal string and requires it to be positive.
// Zero, negative, and non-numeric input all fail the same way.
func parseAmount(raw string) (decimal.Decimal, *ValidationError) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !amount.IsPositive() {
		return decimal.Decimal{}, invalid(i18n.KeyAmountPositive)
	}
	return amount, nil
}

func parseAccountID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	return id, err == nil && id > 0
}

// LoginForm is the credential form on /login.
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// Request builds the backend payload.
func (f *LoginForm) Request() ports.LoginRequest {
	return ports.LoginRequest{
		Username: strings.TrimSpace(f.Username),
		Password: f.Password,
	}
}

// RegisterForm is the sign-up form on /register.
type RegisterForm struct {
	Username  string `form:"username"`
	Email     string `form:"email"`
	Password  string `form:"password"`
	FirstName string `form:"firstName"`
	LastName  string `form:"lastName"`
}

// Validate applies the registration constraints.
func (f *RegisterForm) Validate() *ValidationError {
	if len(f.Password) < 6 {
		return invalid(i18n.KeyPasswordMinLength)
	}
	if strings.TrimSpace(f.Username) == "" {
		return invalid(i18n.KeyUsernameRequired)
	}
	return nil
}

// Request builds the backend payload.
func (f *RegisterForm) Request() ports.RegisterRequest {
	return ports.RegisterRequest{
		Username:  strings.TrimSpace(f.Username),
		Email:     strings.TrimSpace(f.Email),
		Password:  f.Password,
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
	}
}

// CreateAccountForm opens a new account in one currency.
type CreateAccountForm struct {
	CurrencyCode string `form:"currencyCode" binding:"required,currencycode"`
}

// Validate requires a well-formed currency code.
func (f *CreateAccountForm) Validate() *ValidationError {
	f.CurrencyCode = NormalizeCurrency(f.CurrencyCode)
	if !ValidCurrency(f.CurrencyCode) {
		return invalid(i18n.KeyCurrencyRequired)
	}
	return nil
}

// TransferForm moves funds to a raw destination account id, which may
// belong to another user.
type TransferForm struct {
	FromAccountID string `form:"fromAccountId"`
	ToAccountID   string `form:"toAccountId"`
	Amount        string `form:"amount"`
	Description   string `form:"description"`
}

// Parse validates the form and builds the backend payload. No network call
// may happen when an error is returned.
func (f *TransferForm) Parse() (ports.TransferRequest, *ValidationError) {
	var req ports.TransferRequest

	fromID, ok := parseAccountID(f.FromAccountID)
	if !ok {
		return req, invalid(i18n.KeySelectSourceAccount)
	}
	toID, ok := parseAccountID(f.ToAccountID)
	if !ok {
		return req, invalid(i18n.KeyReceiverNumeric)
	}
	amount, verr := parseAmount(f.Amount)
	if verr != nil {
		return req, verr
	}
	description := strings.TrimSpace(f.Description)
	if description == "" {
		return req, invalid(i18n.KeyDescriptionRequired)
	}
	if fromID == toID {
		return req, invalid(i18n.KeySameAccounts)
	}

	req = ports.TransferRequest{
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        amount,
		Description:   description,
	}
	return req, nil
}

// ExchangeForm converts funds between two of the user's own accounts.
type ExchangeForm struct {
	FromAccountID string `form:"fromAccountId"`
	ToAccountID   string `form:"toAccountId"`
	Amount        string `form:"amount"`
}

// Parse validates the form against the user's freshly fetched account list:
// both accounts must exist, the ids must differ, and the currency codes
// must differ. No network call may happen when an error is returned.
func (f *ExchangeForm) Parse(accounts []domain.Account) (ports.ExchangeRequest, *ValidationError) {
	var req ports.ExchangeRequest

	fromID, ok := parseAccountID(f.FromAccountID)
	if !ok {
		return req, invalid(i18n.KeySelectSourceAccount)
	}
	toID, ok := parseAccountID(f.ToAccountID)
	if !ok {
		return req, invalid(i18n.KeyAccountNotFound)
	}
	amount, verr := parseAmount(f.Amount)
	if verr != nil {
		return req, verr
	}
	if fromID == toID {
		return req, invalid(i18n.KeySameAccounts)
	}

	from := domain.FindAccount(accounts, fromID)
	to := domain.FindAccount(accounts, toID)
	if from == nil || to == nil {
		return req, invalid(i18n.KeyAccountNotFound)
	}
	if from.CurrencyCode == to.CurrencyCode {
		return req, invalid(i18n.KeySameCurrency)
	}

	req = ports.ExchangeRequest{
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        amount,
	}
	return req, nil
}

// ConvertForm is the stateless currency converter.
type ConvertForm struct {
	FromCurrency string `form:"fromCurrency"`
	ToCurrency   string `form:"toCurrency"`
	Amount       string `form:"amount"`
}

// Parse validates and builds the backend payload.
func (f *ConvertForm) Parse() (ports.ConvertRequest, *ValidationError) {
	var req ports.ConvertRequest

	from := NormalizeCurrency(f.FromCurrency)
	to := NormalizeCurrency(f.ToCurrency)
	if !ValidCurrency(from) || !ValidCurrency(to) {
		return req, invalid(i18n.KeyCurrencyRequired)
	}
	amount, verr := parseAmount(f.Amount)
	if verr != nil {
		return req, verr
	}

	req = ports.ConvertRequest{
		FromCurrency: from,
		ToCurrency:   to,
		Amount:       amount,
	}
	return req, nil
}

// DepositForm initiates a simulated provider deposit into one of the
// user's accounts. The account's own currency is used.
type DepositForm struct {
	AccountID   string `form:"accountId"`
	Amount      string `form:"amount"`
	Description string `form:"description"`
}

// Parse validates against the user's account list and builds the payload.
func (f *DepositForm) Parse(accounts []domain.Account) (ports.CreatePaymentRequest, *ValidationError) {
	var req ports.CreatePaymentRequest

	accountID, ok := parseAccountID(f.AccountID)
	if !ok {
		return req, invalid(i18n.KeySelectSourceAccount)
	}
	amount, verr := parseAmount(f.Amount)
	if verr != nil {
		return req, verr
	}
	account := domain.FindAccount(accounts, accountID)
	if account == nil {
		return req, invalid(i18n.KeyAccountNotFound)
	}

	description := strings.TrimSpace(f.Description)
	if description == "" {
		description = "Account Deposit"
	}

	req = ports.CreatePaymentRequest{
		AccountID:    accountID,
		Amount:       amount,
		CurrencyCode: account.CurrencyCode,
		Description:  description,
	}
	return req, nil
}

// ProfileForm updates the editable profile fields. Blank fields are left
// out of the payload so the backend keeps their current values.
type ProfileForm struct {
	FirstName string `form:"firstName"`
	LastName  string `form:"lastName"`
	Email     string `form:"email"`
}

// Request builds the backend payload.
func (f *ProfileForm) Request() ports.ProfileUpdate {
	return ports.ProfileUpdate{
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
		Email:     strings.TrimSpace(f.Email),
	}
}
