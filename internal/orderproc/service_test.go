package orderproc

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"assistpay/internal/models"
	"assistpay/internal/repository"
)

func newService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return New(repository.NewOrderRepository(db), zap.NewNop()), mock
}

func TestCanMarkAsPaid(t *testing.T) {
	svc, _ := newService(t)

	assert.False(t, svc.CanMarkAsPaid(nil))
	assert.False(t, svc.CanMarkAsPaid(&models.Order{ID: 1, PaymentStatus: models.PaymentStatusPaid}))
	assert.False(t, svc.CanMarkAsPaid(&models.Order{ID: 1, PaymentStatus: models.PaymentStatusPending, Deleted: true}))
	assert.True(t, svc.CanMarkAsPaid(&models.Order{ID: 1, PaymentStatus: models.PaymentStatusPending}))
}

func TestCanMarkAsAuthorized(t *testing.T) {
	svc, _ := newService(t)

	assert.False(t, svc.CanMarkAsAuthorized(nil))
	assert.False(t, svc.CanMarkAsAuthorized(&models.Order{ID: 1, PaymentStatus: models.PaymentStatusAuthorized}))
	assert.True(t, svc.CanMarkAsAuthorized(&models.Order{ID: 1, PaymentStatus: models.PaymentStatusPending}))
}

func TestMarkAsPaidAppliesTransition(t *testing.T) {
	svc, mock := newService(t)
	order := &models.Order{ID: 42, PaymentStatus: models.PaymentStatusPending}

	mock.ExpectExec("UPDATE `orders` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.MarkAsPaid(order))
	assert.Equal(t, models.PaymentStatusPaid, order.PaymentStatus)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAsPaidLostRaceIsNoOp(t *testing.T) {
	svc, mock := newService(t)
	order := &models.Order{ID: 42, PaymentStatus: models.PaymentStatusPending}

	// Another request moved the order first: zero rows matched, no error,
	// and the in-memory copy keeps whatever state it had.
	mock.ExpectExec("UPDATE `orders` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, svc.MarkAsPaid(order))
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
}

func TestMarkAsAuthorizedAppliesTransition(t *testing.T) {
	svc, mock := newService(t)
	order := &models.Order{ID: 42, PaymentStatus: models.PaymentStatusPending}

	mock.ExpectExec("UPDATE `orders` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.MarkAsAuthorized(order))
	assert.Equal(t, models.PaymentStatusAuthorized, order.PaymentStatus)
}
