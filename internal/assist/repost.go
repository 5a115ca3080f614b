package assist

import (
	"time"

	"assistpay/internal/models"
)

// repostCoolDown keeps a customer from being bounced straight back to the
// gateway before the gateway-side session for the order can plausibly exist.
const repostCoolDown = time.Minute

// CanRePostProcessPayment reports whether the customer may be redirected to
// the gateway again for this order: only Pending orders, and only once the
// cool-down since order creation has elapsed. Paid and authorized orders are
// never re-posted.
func CanRePostProcessPayment(order *models.Order, now time.Time) bool {
	if order == nil || order.PaymentStatus != models.PaymentStatusPending {
		return false
	}
	return now.Sub(order.CreatedAt) >= repostCoolDown
}
