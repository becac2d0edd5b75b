package handler

import (
	"net/http"
	"strconv"

	"currency-wallet-web/internal/adapter/web/middleware"
	"currency-wallet-web/internal/core/ports"
	"currency-wallet-web/internal/i18n"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AdminHandler renders the cross-user listings and performs the two
// destructive removals. Every removal re-checks the role server-side (the
// route guard calls the backend) and requires an explicit confirmation
// field; a declined confirmation reloads the panel without any backend
// call.
type AdminHandler struct {
	admin    ports.AdminAPI
	sessions ports.SessionStore
	bundle   *i18n.Bundle
	secure   bool
	log      zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(admin ports.AdminAPI, sessions ports.SessionStore, bundle *i18n.Bundle, secure bool, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		admin:    admin,
		sessions: sessions,
		bundle:   bundle,
		secure:   secure,
		log:      log,
	}
}

// Show handles GET /admin.
func (h *AdminHandler) Show(c *gin.Context) {
	ctx := c.Request.Context()
	page := basePage(c, h.bundle, "Administration", gin.H{
		"User": middleware.CurrentUser(c),
	})

	accounts, err := h.admin.AllAccounts(ctx)
	if err != nil {
		if unauthorized(err) {
			expireSession(c, h.sessions)
			return
		}
		page["Error"] = displayError(err)
		c.HTML(http.StatusBadGateway, "admin.gohtml", page)
		return
	}

	transactions, err := h.admin.AllTransactions(ctx)
	if err != nil {
		if unauthorized(err) {
			expireSession(c, h.sessions)
			return
		}
		page["Error"] = displayError(err)
		c.HTML(http.StatusBadGateway, "admin.gohtml", page)
		return
	}

	page["Accounts"] = accounts
	page["Transactions"] = transactions
	c.HTML(http.StatusOK, "admin.gohtml", page)
}

// DeleteAccount handles POST /admin/accounts/:id/delete.
func (h *AdminHandler) DeleteAccount(c *gin.Context) {
	if !confirmed(c) {
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	if err := h.admin.DeleteAccount(c.Request.Context(), id); err != nil {
		if unauthorized(err) {
			expireSession(c, h.sessions)
			return
		}
		h.showError(c, displayError(err))
		return
	}

	setFlash(c, h.secure, Flash{Key: i18n.KeyAdminAccountDeleted})
	c.Redirect(http.StatusSeeOther, "/admin")
}

// DeleteTransaction handles POST /admin/transactions/:id/delete.
func (h *AdminHandler) DeleteTransaction(c *gin.Context) {
	if !confirmed(c) {
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	if err := h.admin.DeleteTransaction(c.Request.Context(), id); err != nil {
		if unauthorized(err) {
			expireSession(c, h.sessions)
			return
		}
		h.showError(c, displayError(err))
		return
	}

	setFlash(c, h.secure, Flash{Key: i18n.KeyAdminTransactionGone})
	c.Redirect(http.StatusSeeOther, "/admin")
}

// showError redraws the panel with an inline error and whatever listings
// still load.
func (h *AdminHandler) showError(c *gin.Context, msg string) {
	ctx := c.Request.Context()
	page := basePage(c, h.bundle, "Administration", gin.H{
		"User":  middleware.CurrentUser(c),
		"Error": msg,
	})
	if accounts, err := h.admin.AllAccounts(ctx); err == nil {
		page["Accounts"] = accounts
	}
	if transactions, err := h.admin.AllTransactions(ctx); err == nil {
		page["Transactions"] = transactions
	}
	c.HTML(http.StatusBadRequest, "admin.gohtml", page)
}
