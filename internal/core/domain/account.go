package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Account is a balance-holding record in one currency, owned by a user.
// The currency code is set at creation and never changes. The balance is
// mutated only by the backend; this application re-fetches after every
// mutating call instead of computing balances locally.
type Account struct {
	ID           int64           `json:"id"`
	CurrencyCode string          `json:"currencyCode"`
	Balance      decimal.Decimal `json:"balance"`
	UserID       int64           `json:"userId,omitempty"`
}

// Label renders the account the way selection lists display it.
func (a Account) Label() string {
	return fmt.Sprintf("#%d — %s %s", a.ID, a.Balance.StringFixed(2), a.CurrencyCode)
}

// FindAccount returns the account with the given id, or nil.
func FindAccount(accounts []Account, id int64) *Account {
	for i := range accounts {
		if accounts[i].ID == id {
			return &accounts[i]
		}
	}
	return nil
}

// ExchangeTargets filters the destination candidates for an exchange from
// the given source account: the source itself and every account sharing its
// currency code are excluded.
func ExchangeTargets(accounts []Account, from *Account) []Account {
	if from == nil {
		return nil
	}
	var targets []Account
	for _, acc := range accounts {
		if acc.ID == from.ID || acc.CurrencyCode == from.CurrencyCode {
			continue
		}
		targets = append(targets, acc)
	}
	return targets
}
