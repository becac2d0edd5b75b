package handler

import (
	"net/http"
	"strings"

	"currency-wallet-web/internal/adapter/web/middleware"
	"currency-wallet-web/internal/core/ports"
	"currency-wallet-web/internal/i18n"

	"github.com/gin-gonic/gin"
)

// PaymentHandler renders the deposit status page. The page is public: the
// provider redirects the visitor back here after checkout, possibly on a
// fresh browser without a session, and the order id alone identifies the
// payment.
type PaymentHandler struct {
	payments ports.PaymentAPI
	bundle   *i18n.Bundle
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(payments ports.PaymentAPI, bundle *i18n.Bundle) *PaymentHandler {
	return &PaymentHandler{payments: payments, bundle: bundle}
}

// Status handles GET /payment-status?orderId=...
func (h *PaymentHandler) Status(c *gin.Context) {
	lang := middleware.Lang(c)
	page := basePage(c, h.bundle, "Payment status", nil)

	orderID := strings.TrimSpace(c.Query("orderId"))
	if orderID == "" {
		page["Error"] = h.bundle.T(lang, i18n.KeyOrderIDMissing)
		c.HTML(http.StatusBadRequest, "payment_status.gohtml", page)
		return
	}

	status, err := h.payments.PaymentStatus(c.Request.Context(), orderID)
	if err != nil {
		page["Error"] = displayError(err)
		page["OrderID"] = orderID
		c.HTML(http.StatusBadGateway, "payment_status.gohtml", page)
		return
	}

	page["Status"] = status
	page["OrderID"] = orderID
	c.HTML(http.StatusOK, "payment_status.gohtml", page)
}
