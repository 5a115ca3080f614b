package orderproc

import (
	"go.uber.org/zap"

	"assistpay/internal/models"
	"assistpay/internal/repository"
)

// Service is the host's order-processing boundary: eligibility checks plus
// the actual payment-status transitions. The transition is a conditional
// UPDATE keyed on the current status, so duplicate callbacks, including two
// arriving in the same instant, apply it at most once. This idempotence is
// the only concurrency-safety mechanism the callback flow relies on.
type Service struct {
	orders *repository.OrderRepository
	logger *zap.Logger
}

func New(orders *repository.OrderRepository, logger *zap.Logger) *Service {
	return &Service{orders: orders, logger: logger}
}

// CanMarkAsPaid reports whether the order is eligible to become Paid.
func (s *Service) CanMarkAsPaid(order *models.Order) bool {
	return order != nil && !order.Deleted && order.PaymentStatus == models.PaymentStatusPending
}

// CanMarkAsAuthorized reports whether the order is eligible to become
// Authorized.
func (s *Service) CanMarkAsAuthorized(order *models.Order) bool {
	return order != nil && !order.Deleted && order.PaymentStatus == models.PaymentStatusPending
}

// MarkAsPaid transitions Pending -> Paid. Calling it on an order that has
// already left Pending is a no-op, not an error.
func (s *Service) MarkAsPaid(order *models.Order) error {
	return s.transition(order, models.PaymentStatusPaid)
}

// MarkAsAuthorized transitions Pending -> Authorized under the same rules.
func (s *Service) MarkAsAuthorized(order *models.Order) error {
	return s.transition(order, models.PaymentStatusAuthorized)
}

func (s *Service) transition(order *models.Order, to models.PaymentStatus) error {
	moved, err := s.orders.TransitionPaymentStatus(order.ID, models.PaymentStatusPending, to)
	if err != nil {
		return err
	}
	if !moved {
		// Lost the race or a replayed callback; the order already moved.
		s.logger.Info("order payment status already transitioned",
			zap.Uint("order_id", order.ID),
			zap.String("wanted", string(to)),
			zap.String("current", string(order.PaymentStatus)))
		return nil
	}
	order.PaymentStatus = to
	s.logger.Info("order payment status updated",
		zap.Uint("order_id", order.ID), zap.String("status", string(to)))
	return nil
}
