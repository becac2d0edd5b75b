package handler

import (
	"fmt"
	"net/http"
	"sync"

	"currency-wallet-web/internal/adapter/web/forms"
	"currency-wallet-web/internal/adapter/web/middleware"
	"currency-wallet-web/internal/core/domain"
	"currency-wallet-web/internal/core/ports"
	"currency-wallet-web/internal/i18n"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DashboardHandler owns the main page: account and transaction listings
// plus the four operation forms (create account, transfer, exchange,
// deposit) and the stateless converter.
type DashboardHandler struct {
	auth      ports.AuthAPI
	accounts  ports.AccountAPI
	transfers ports.TransferAPI
	exchange  ports.ExchangeAPI
	currency  ports.CurrencyAPI
	payments  ports.PaymentAPI
	sessions  ports.SessionStore
	bundle    *i18n.Bundle
	secure    bool
	log       zerolog.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(
	auth ports.AuthAPI,
	accounts ports.AccountAPI,
	transfers ports.TransferAPI,
	exchange ports.ExchangeAPI,
	currency ports.CurrencyAPI,
	payments ports.PaymentAPI,
	sessions ports.SessionStore,
	bundle *i18n.Bundle,
	secure bool,
	log zerolog.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		auth:      auth,
		accounts:  accounts,
		transfers: transfers,
		exchange:  exchange,
		currency:  currency,
		payments:  payments,
		sessions:  sessions,
		bundle:    bundle,
		secure:    secure,
		log:       log,
	}
}

// dashboardData is everything the dashboard template lists. It is fetched
// fresh on every render; balances are never carried over from a previous
// request.
type dashboardData struct {
	User         *domain.User
	Accounts     []domain.Account
	Transactions []domain.Transaction
	Currencies   []string
	LoadError    string
}

// load fetches the dashboard's backing data. The four reads run
// concurrently on the request context. A 401 from any of them ends the
// session and reports done=false; other failures degrade into a page-level
// message so the rest of the page still renders.
func (h *DashboardHandler) load(c *gin.Context) (*dashboardData, bool) {
	data := &dashboardData{}

	var mu sync.Mutex
	degrade := func(err error) error {
		if unauthorized(err) {
			// Cancels the sibling fetches.
			return err
		}
		mu.Lock()
		if data.LoadError == "" {
			data.LoadError = displayError(err)
		}
		mu.Unlock()
		return nil
	}

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		user, err := h.auth.Me(ctx)
		if err != nil {
			return degrade(err)
		}
		data.User = user
		return nil
	})
	g.Go(func() error {
		accounts, err := h.accounts.MyAccounts(ctx)
		if err != nil {
			return degrade(err)
		}
		data.Accounts = accounts
		return nil
	})
	g.Go(func() error {
		transactions, err := h.transfers.MyTransactions(ctx)
		if err != nil {
			return degrade(err)
		}
		data.Transactions = transactions
		return nil
	})
	g.Go(func() error {
		currencies, err := h.currency.AllowedCurrencies(ctx)
		if err != nil {
			return degrade(err)
		}
		data.Currencies = currencies
		return nil
	})

	if err := g.Wait(); err != nil {
		expireSession(c, h.sessions)
		return nil, false
	}
	return data, true
}

// exchangePair is one source account with its valid exchange destinations:
// the source itself and every same-currency account are excluded.
type exchangePair struct {
	From    domain.Account
	Targets []domain.Account
}

// exchangePairs builds the exchange form's selection data. Accounts with no
// valid destination are left out entirely; with no pairs at all the form is
// not rendered.
func exchangePairs(accounts []domain.Account) []exchangePair {
	var pairs []exchangePair
	for i := range accounts {
		targets := domain.ExchangeTargets(accounts, &accounts[i])
		if len(targets) == 0 {
			continue
		}
		pairs = append(pairs, exchangePair{From: accounts[i], Targets: targets})
	}
	return pairs
}

// render draws the dashboard with the given page-specific fields merged in.
func (h *DashboardHandler) render(c *gin.Context, status int, data *dashboardData, extra gin.H) {
	page := basePage(c, h.bundle, "Dashboard", gin.H{
		"User":          data.User,
		"Accounts":      data.Accounts,
		"Transactions":  data.Transactions,
		"Currencies":    data.Currencies,
		"ExchangePairs": exchangePairs(data.Accounts),
	})
	if data.LoadError != "" {
		page["Error"] = data.LoadError
	}
	for k, v := range extra {
		page[k] = v
	}
	c.HTML(status, "dashboard.gohtml", page)
}

// Show handles GET /.
func (h *DashboardHandler) Show(c *gin.Context) {
	data, ok := h.load(c)
	if !ok {
		return
	}
	h.render(c, http.StatusOK, data, nil)
}

// renderError redraws the dashboard with an inline error message.
func (h *DashboardHandler) renderError(c *gin.Context, msg string) {
	data, ok := h.load(c)
	if !ok {
		return
	}
	h.render(c, http.StatusBadRequest, data, gin.H{"Error": msg})
}

// CreateAccount handles POST /accounts.
func (h *DashboardHandler) CreateAccount(c *gin.Context) {
	lang := middleware.Lang(c)

	var form forms.CreateAccountForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderError(c, h.bundle.T(lang, i18n.KeyCurrencyRequired))
		return
	}
	if verr := form.Validate(); verr != nil {
		h.renderError(c, h.bundle.T(lang, verr.Key))
		return
	}

	if _, err := h.accounts.CreateAccount(c.Request.Context(), form.CurrencyCode); err != nil {
		if unauthorized(err) {
			expireSession(c, h.sessions)
			return
		}
		h.renderError(c, displayError(err))
		return
	}

	setFlash(c, h.secure, Flash{Key: i18n.KeyAccountCreated})
	c.Redirect(http.StatusSeeOther, "/")
}

// Transfer handles POST /transfers. Validation failures never reach the
// backend.
func (h *DashboardHandler) Transfer(c *gin.Context) {
	lang := middleware.Lang(c)

	var form forms.TransferForm
	_ = c.ShouldBind(&form)
	req, verr := form.Parse()
	if verr != nil {
		h.renderError(c, h.bundle.T(lang, verr.Key))
		return
	}

	receipt, err := h.transfers.CreateTransfer(c.Request.Context(), req)
	if err != nil {
		if unauthorized(err) {
			expireSession(c, h.sessions)
			return
		}
		h.renderError(c, displayError(err))
		return
	}

	flash := Flash{Key: i18n.KeyTransferDone}
	if receipt != nil && receipt.TransactionID != 0 {
		flash.Detail = fmt.Sprintf("Transaction #%d.", receipt.TransactionID)
	}
	setFlash(c, h.secure, flash)
	c.Redirect(http.StatusSeeOther, "/")
}

// Exchange handles POST /exchange. The receipt exists only in this
// response, so the page is rendered directly instead of redirecting.
func (h *DashboardHandler) Exchange(c *gin.Context) {
	lang := middleware.Lang(c)

	var form forms.ExchangeForm
	_ = c.ShouldBind(&form)

	accounts, err := h.accounts.MyAccounts(c.Request.Context())
	if err != nil {
		if unauthorized(err) {
			expireSession(c, h.sessions)
			return
		}
		h.renderError(c, displayError(err))
		return
	}

	req, verr := form.Parse(accounts)
	if verr != nil {
		h.renderError(c, h.bundle.T(lang, verr.Key))
		return
	}

	result, err := h.exchange.PerformExchange(c.Request.Context(), req)
	if err != nil {
		if unauthorized(err) {
			expireSession(c, h.sessions)
			return
		}
		h.renderError(c, displayError(err))
		return
	}

	data, ok := h.load(c)
	if !ok {
		return
	}
	if !result.Success {
		msg := result.ErrorMessage
		if msg == "" {
			msg = "The exchange was not performed."
		}
		h.render(c, http.StatusBadRequest, data, gin.H{"Error": msg})
		return
	}
	h.render(c, http.StatusOK, data, gin.H{"ExchangeResult": result})
}

// Convert handles POST /convert: a stateless rate lookup, rendered in
// place.
func (h *DashboardHandler) Convert(c *gin.Context) {
	lang := middleware.Lang(c)

	var form forms.ConvertForm
	_ = c.ShouldBind(&form)
	req, verr := form.Parse()
	if verr != nil {
		h.renderError(c, h.bundle.T(lang, verr.Key))
		return
	}

	result, err := h.currency.Convert(c.Request.Context(), req)
	if err != nil {
		if unauthorized(err) {
			expireSession(c, h.sessions)
			return
		}
		h.renderError(c, displayError(err))
		return
	}

	data, ok := h.load(c)
	if !ok {
		return
	}
	h.render(c, http.StatusOK, data, gin.H{"ConvertResult": result})
}

// Deposit handles POST /deposit. The provider link is rendered for the
// user to follow; the page never navigates there on its own.
func (h *DashboardHandler) Deposit(c *gin.Context) {
	lang := middleware.Lang(c)

	var form forms.DepositForm
	_ = c.ShouldBind(&form)

	accounts, err := h.accounts.MyAccounts(c.Request.Context())
	if err != nil {
		if unauthorized(err) {
			expireSession(c, h.sessions)
			return
		}
		h.renderError(c, displayError(err))
		return
	}

	req, verr := form.Parse(accounts)
	if verr != nil {
		h.renderError(c, h.bundle.T(lang, verr.Key))
		return
	}

	intent, err := h.payments.CreatePayment(c.Request.Context(), req)
	if err != nil {
		if unauthorized(err) {
			expireSession(c, h.sessions)
			return
		}
		h.renderError(c, displayError(err))
		return
	}

	data, ok := h.load(c)
	if !ok {
		return
	}
	if !intent.Success {
		msg := intent.ErrorMessage
		if msg == "" {
			msg = "The deposit could not be initiated."
		}
		h.render(c, http.StatusBadRequest, data, gin.H{"Error": msg})
		return
	}
	h.render(c, http.StatusOK, data, gin.H{"Deposit": intent})
}
