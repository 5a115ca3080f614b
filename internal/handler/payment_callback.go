package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"assistpay/internal/assist"
	"assistpay/internal/middleware"
	"assistpay/internal/models"
)

// CallbackHandler drives the order-state transition when the gateway sends
// the customer's browser back. The browser callback itself proves nothing:
// confirmation always comes from the server-to-server status query, and any
// rejection short of a configuration error ends in a neutral redirect.
type CallbackHandler struct {
	orders   OrderStore
	proc     OrderProcessor
	settings SettingsStore
	status   StatusChecker
	logger   *zap.Logger
}

func NewCallbackHandler(
	orders OrderStore,
	proc OrderProcessor,
	settings SettingsStore,
	status StatusChecker,
	logger *zap.Logger,
) *CallbackHandler {
	return &CallbackHandler{
		orders:   orders,
		proc:     proc,
		settings: settings,
		status:   status,
		logger:   logger,
	}
}

// Return handles the success callback (URL_RETURN_OK).
func (h *CallbackHandler) Return(c echo.Context) error {
	settings, err := h.loadMethod()
	if err != nil {
		h.logger.Error("assist module cannot be loaded", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Assist module cannot be loaded")
	}

	order, ok := h.resolveOwnedOrder(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/")
	}

	verdict := h.status.CheckPaymentStatus(c.Request().Context(), settings, order.ID, order.CreatedAt)
	if !assist.Verified(order.Total, verdict) {
		h.logger.Warn("assist payment not confirmed",
			zap.Uint("order_id", order.ID),
			zap.String("gateway_amount", verdict.OrderAmount),
			zap.String("gateway_state", verdict.OrderState))
		return c.Redirect(http.StatusFound, "/")
	}

	if settings.AuthorizeOnly {
		if h.proc.CanMarkAsAuthorized(order) {
			if err := h.proc.MarkAsAuthorized(order); err != nil {
				h.logger.Error("mark as authorized failed", zap.Uint("order_id", order.ID), zap.Error(err))
				return echo.NewHTTPError(http.StatusInternalServerError, "order processing failed")
			}
		}
	} else {
		if h.proc.CanMarkAsPaid(order) {
			if err := h.proc.MarkAsPaid(order); err != nil {
				h.logger.Error("mark as paid failed", zap.Uint("order_id", order.ID), zap.Error(err))
				return echo.NewHTTPError(http.StatusInternalServerError, "order processing failed")
			}
		}
	}

	return c.Redirect(http.StatusFound, fmt.Sprintf("/checkout/completed/%d", order.ID))
}

// Fail handles the failure callback (URL_RETURN). It never changes order
// state: a "fail" bounce from the gateway confirms nothing either way.
func (h *CallbackHandler) Fail(c echo.Context) error {
	if _, err := h.loadMethod(); err != nil {
		h.logger.Error("assist module cannot be loaded", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Assist module cannot be loaded")
	}

	order, ok := h.resolveOwnedOrder(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/")
	}

	return c.Redirect(http.StatusFound, fmt.Sprintf("/orders/%d", order.ID))
}

// loadMethod resolves the payment method instance. A snapshot that fails
// validation means the module is misconfigured, which is fatal for the
// request. Unlike verification failures, this never degrades silently.
func (h *CallbackHandler) loadMethod() (*assist.Settings, error) {
	settings, err := h.settings.LoadAssist()
	if err != nil {
		return nil, err
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// resolveOwnedOrder re-establishes the order from the untrusted ordernumber
// query parameter and checks it exists, is not deleted, and belongs to the
// authenticated customer. Anything else is rejected without revealing
// whether the order exists.
func (h *CallbackHandler) resolveOwnedOrder(c echo.Context) (*models.Order, bool) {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		h.logger.Warn("callback without customer session")
		return nil, false
	}

	orderID, err := strconv.ParseUint(c.QueryParam("ordernumber"), 10, 32)
	if err != nil {
		h.logger.Warn("callback with invalid ordernumber", zap.String("raw", c.QueryParam("ordernumber")))
		return nil, false
	}

	order, err := h.orders.FindByID(uint(orderID))
	if err != nil {
		h.logger.Warn("callback for unknown order", zap.Uint64("order_id", orderID))
		return nil, false
	}
	if order.Deleted || order.CustomerID != customerID {
		h.logger.Warn("callback rejected by ownership check",
			zap.Uint("order_id", order.ID),
			zap.Uint("customer_id", customerID))
		return nil, false
	}
	return order, true
}
