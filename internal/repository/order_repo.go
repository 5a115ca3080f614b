package repository

import (
	"gorm.io/gorm"

	"assistpay/internal/models"
)

// OrderRepository handles order database operations. Orders belong to the
// host platform; this service reads them and performs the conditional
// payment-status transition on behalf of the order-processing service.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// FindByID returns an order by its identifier.
func (r *OrderRepository) FindByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Where("id = ?", id).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// Create inserts a new order. Used by the host checkout, not by the
// payment flow itself.
func (r *OrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// TransitionPaymentStatus moves an order from one payment status to another
// in a single conditional UPDATE. It reports whether a row actually changed,
// so a concurrent or repeated transition on an already-moved order is a safe
// no-op rather than a double-apply.
func (r *OrderRepository) TransitionPaymentStatus(id uint, from, to models.PaymentStatus) (bool, error) {
	res := r.db.Model(&models.Order{}).
		Where("id = ? AND payment_status = ?", id, from).
		Update("payment_status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
