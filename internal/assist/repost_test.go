package assist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"assistpay/internal/models"
)

func TestCanRePostProcessPayment(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	pendingAt := func(age time.Duration) *models.Order {
		return &models.Order{
			ID:            1,
			PaymentStatus: models.PaymentStatusPending,
			CreatedAt:     now.Add(-age),
		}
	}

	assert.False(t, CanRePostProcessPayment(nil, now))

	// Less than a minute old: still inside the cool-down.
	assert.False(t, CanRePostProcessPayment(pendingAt(30*time.Second), now))
	assert.False(t, CanRePostProcessPayment(pendingAt(59*time.Second), now))

	assert.True(t, CanRePostProcessPayment(pendingAt(time.Minute), now))
	assert.True(t, CanRePostProcessPayment(pendingAt(48*time.Hour), now))

	// Non-pending orders are never re-posted, however old.
	paid := pendingAt(time.Hour)
	paid.PaymentStatus = models.PaymentStatusPaid
	assert.False(t, CanRePostProcessPayment(paid, now))

	authorized := pendingAt(time.Hour)
	authorized.PaymentStatus = models.PaymentStatusAuthorized
	assert.False(t, CanRePostProcessPayment(authorized, now))
}
