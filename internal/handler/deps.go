package handler

import (
	"context"
	"time"

	"assistpay/internal/assist"
	"assistpay/internal/models"
)

// The host platform's services, seen through narrow seams. The gorm
// repositories and the order-processing service satisfy these in production;
// tests substitute fakes.

// OrderStore looks orders up by identifier.
type OrderStore interface {
	FindByID(id uint) (*models.Order, error)
}

// OrderProcessor owns the payment-state transition and its eligibility
// checks. Both Mark calls must be idempotent: repeating them on an order
// that already left Pending is a no-op.
type OrderProcessor interface {
	CanMarkAsPaid(order *models.Order) bool
	CanMarkAsAuthorized(order *models.Order) bool
	MarkAsPaid(order *models.Order) error
	MarkAsAuthorized(order *models.Order) error
}

// SettingsStore loads and persists the gateway configuration snapshot.
type SettingsStore interface {
	LoadAssist() (*assist.Settings, error)
	SaveAssist(s *assist.Settings) error
}

// CurrencyStore resolves the store's primary currency code.
type CurrencyStore interface {
	CodeByID(id uint) (string, error)
}

// StatusChecker is the server-to-server order-status query.
type StatusChecker interface {
	CheckPaymentStatus(ctx context.Context, s *assist.Settings, orderID uint, createdAt time.Time) assist.Verdict
}
