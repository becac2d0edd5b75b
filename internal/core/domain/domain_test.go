package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoles_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want Roles
	}{
		{"list of strings", `["User","Admin"]`, Roles{"User", "Admin"}},
		{"single string shim", `"Admin"`, Roles{"Admin"}},
		{"empty string", `""`, nil},
		{"null", `null`, nil},
		{"empty list", `[]`, Roles{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Roles
			require.NoError(t, json.Unmarshal([]byte(tt.body), &r))
			assert.Equal(t, tt.want, r)
		})
	}
}

func TestRoles_UnmarshalJSON_Invalid(t *testing.T) {
	var r Roles
	assert.Error(t, json.Unmarshal([]byte(`42`), &r))
}

func TestUser_IsAdmin(t *testing.T) {
	var body = `{"id":"u1","username":"alice","email":"a@example.com","role":["Admin"]}`
	var u User
	require.NoError(t, json.Unmarshal([]byte(body), &u))
	assert.True(t, u.IsAdmin())

	body = `{"id":"u2","username":"bob","role":"User"}`
	u = User{}
	require.NoError(t, json.Unmarshal([]byte(body), &u))
	assert.False(t, u.IsAdmin())

	var nilUser *User
	assert.False(t, nilUser.IsAdmin())
}

func TestUser_DisplayName(t *testing.T) {
	u := &User{Username: "alice", Email: "a@example.com"}
	assert.Equal(t, "a@example.com", u.DisplayName())

	u.Email = ""
	assert.Equal(t, "alice", u.DisplayName())
}

func TestAuthResponse_BearerToken(t *testing.T) {
	var resp AuthResponse
	require.NoError(t, json.Unmarshal([]byte(`{"token":"tok-1"}`), &resp))
	assert.Equal(t, "tok-1", resp.BearerToken())

	resp = AuthResponse{}
	require.NoError(t, json.Unmarshal([]byte(`{"accessToken":"tok-2"}`), &resp))
	assert.Equal(t, "tok-2", resp.BearerToken())

	resp = AuthResponse{}
	require.NoError(t, json.Unmarshal([]byte(`{"username":"alice"}`), &resp))
	assert.Equal(t, "", resp.BearerToken())

	// token wins over accessToken when both are present
	resp = AuthResponse{Token: "a", AccessToken: "b"}
	assert.Equal(t, "a", resp.BearerToken())
}

func TestAccount_DecodesDecimalBalance(t *testing.T) {
	var acc Account
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"currencyCode":"EUR","balance":40.50}`), &acc))
	assert.True(t, acc.Balance.Equal(decimal.RequireFromString("40.50")))
	assert.Equal(t, "#1 — 40.50 EUR", acc.Label())
}

func TestFindAccount(t *testing.T) {
	accounts := []Account{{ID: 1}, {ID: 2}}
	require.NotNil(t, FindAccount(accounts, 2))
	assert.Nil(t, FindAccount(accounts, 3))
}

func TestExchangeTargets(t *testing.T) {
	accounts := []Account{
		{ID: 1, CurrencyCode: "USD"},
		{ID: 2, CurrencyCode: "USD"},
		{ID: 3, CurrencyCode: "EUR"},
		{ID: 4, CurrencyCode: "UAH"},
	}

	targets := ExchangeTargets(accounts, &accounts[0])
	require.Len(t, targets, 2)
	assert.Equal(t, int64(3), targets[0].ID)
	assert.Equal(t, int64(4), targets[1].ID)

	assert.Nil(t, ExchangeTargets(accounts, nil))
}

func TestTransaction_DescriptionOrDash(t *testing.T) {
	tx := Transaction{}
	assert.Equal(t, "—", tx.DescriptionOrDash())

	desc := "rent"
	tx.Description = &desc
	assert.Equal(t, "rent", tx.DescriptionOrDash())
}

func TestPaymentStatus_Predicates(t *testing.T) {
	assert.True(t, PaymentStatus{Status: "COMPLETED"}.Completed())
	assert.True(t, PaymentStatus{Status: "CANCELED"}.Failed())
	assert.True(t, PaymentStatus{Status: "FAILED_TIMEOUT"}.Failed())
	assert.False(t, PaymentStatus{Status: "PENDING"}.Failed())
	assert.False(t, PaymentStatus{Status: "PENDING"}.Completed())
	assert.True(t, PaymentStatus{Status: "PENDING"}.Pending())
	assert.True(t, PaymentStatus{Status: "NOT_FOUND"}.NotFound())
	assert.False(t, PaymentStatus{Status: "NOT_FOUND"}.Failed())
	assert.False(t, PaymentStatus{Status: "COMPLETED"}.Pending())
}
