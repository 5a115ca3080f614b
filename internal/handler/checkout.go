package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"assistpay/internal/assist"
	"assistpay/internal/middleware"
	"assistpay/internal/models"
)

// CheckoutHandler emits the redirect to the gateway: it builds the payment
// form for an order and hands it to the browser as an auto-submitting page.
// It performs no network calls of its own.
type CheckoutHandler struct {
	orders     OrderStore
	currencies CurrencyStore
	settings   SettingsStore
	storeURL   string
	logger     *zap.Logger
}

func NewCheckoutHandler(
	orders OrderStore,
	currencies CurrencyStore,
	settings SettingsStore,
	storeURL string,
	logger *zap.Logger,
) *CheckoutHandler {
	return &CheckoutHandler{
		orders:     orders,
		currencies: currencies,
		settings:   settings,
		storeURL:   storeURL,
		logger:     logger,
	}
}

// Pay renders the redirect form for a freshly placed order.
func (h *CheckoutHandler) Pay(c echo.Context) error {
	order, ok := h.ownedOrderFromParam(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/")
	}
	if order.PaymentStatus != models.PaymentStatusPending {
		return c.Redirect(http.StatusFound, fmt.Sprintf("/orders/%d", order.ID))
	}
	return h.renderPaymentForm(c, order)
}

// Repay re-sends a pending order to the gateway when the customer retries
// payment. Gated by the re-post cool-down so a customer bounced straight
// back cannot immediately collide with the gateway-side session.
func (h *CheckoutHandler) Repay(c echo.Context) error {
	order, ok := h.ownedOrderFromParam(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/")
	}
	if !assist.CanRePostProcessPayment(order, time.Now().UTC()) {
		return c.Redirect(http.StatusFound, fmt.Sprintf("/orders/%d", order.ID))
	}
	return h.renderPaymentForm(c, order)
}

func (h *CheckoutHandler) renderPaymentForm(c echo.Context, order *models.Order) error {
	settings, err := h.settings.LoadAssist()
	if err == nil {
		err = settings.Validate()
	}
	if err != nil {
		h.logger.Error("assist module cannot be loaded", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Assist module cannot be loaded")
	}

	// An unresolvable primary currency is a configuration error; the
	// payload is never sent without its currency field.
	currencyCode, err := h.currencies.CodeByID(settings.PrimaryCurrencyID)
	if err != nil {
		h.logger.Error("primary store currency cannot be resolved",
			zap.Uint("currency_id", settings.PrimaryCurrencyID), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "store currency is not configured")
	}

	form, err := assist.BuildPaymentForm(settings, order, currencyCode, h.storeURL)
	if err != nil {
		h.logger.Error("payment form build failed", zap.Uint("order_id", order.ID), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "payment form build failed")
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/html; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return form.RenderHTML(c.Response().Writer)
}

func (h *CheckoutHandler) ownedOrderFromParam(c echo.Context) (*models.Order, bool) {
	customerID, ok := middleware.CustomerID(c)
	if !ok {
		return nil, false
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return nil, false
	}
	order, err := h.orders.FindByID(uint(orderID))
	if err != nil {
		return nil, false
	}
	if order.Deleted || order.CustomerID != customerID {
		h.logger.Warn("checkout rejected by ownership check",
			zap.Uint("order_id", order.ID), zap.Uint("customer_id", customerID))
		return nil, false
	}
	return order, true
}
