package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Payment status values reported by the deposit provider simulation.
const (
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusPending   = "PENDING"
	PaymentStatusCanceled  = "CANCELED"
	PaymentStatusNotFound  = "NOT_FOUND"
)

// PaymentIntent is the backend's answer to initiating a simulated deposit:
// an order reference plus the provider redirect target. The application
// never navigates to the target automatically; it is rendered as a link.
type PaymentIntent struct {
	OrderID      string `json:"orderId"`
	RedirectURI  string `json:"redirectUri"`
	Success      bool   `json:"success"`
	ErrorMessage string `json:"errorMessage"`
}

// PaymentStatus is the state of a deposit order, polled by order id.
type PaymentStatus struct {
	OrderID      string           `json:"orderId"`
	Status       string           `json:"status"`
	Amount       *decimal.Decimal `json:"amount"`
	CurrencyCode string           `json:"currencyCode"`
}

// Failed reports whether the payment ended unsuccessfully. The provider
// uses both a CANCELED status and FAILED-prefixed variants.
func (p PaymentStatus) Failed() bool {
	return p.Status == PaymentStatusCanceled || strings.HasPrefix(p.Status, "FAILED")
}

// Completed reports whether the deposit finished and the account was credited.
func (p PaymentStatus) Completed() bool {
	return p.Status == PaymentStatusCompleted
}

// Pending reports whether the provider is still processing the order.
func (p PaymentStatus) Pending() bool {
	return p.Status == PaymentStatusPending
}

// NotFound reports whether the provider has no record of the order.
func (p PaymentStatus) NotFound() bool {
	return p.Status == PaymentStatusNotFound
}
