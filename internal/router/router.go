package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"assistpay/internal/assist"
	"assistpay/internal/config"
	"assistpay/internal/handler"
	"assistpay/internal/middleware"
	"assistpay/internal/orderproc"
	"assistpay/internal/repository"
)

// Setup configures all routes for the Echo server.
func Setup(e *echo.Echo, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {
	// Global middleware
	e.Use(echomw.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.CustomerSession())

	// Repositories and host services
	orders := repository.NewOrderRepository(db)
	currencies := repository.NewCurrencyRepository(db)
	settings := repository.NewSettingRepository(db)
	processing := orderproc.New(orders, logger)
	statusClient := assist.NewStatusClient(logger)

	// Handlers
	callbackHandler := handler.NewCallbackHandler(orders, processing, settings, statusClient, logger)
	checkoutHandler := handler.NewCheckoutHandler(orders, currencies, settings, cfg.Store.BaseURL, logger)
	configureHandler := handler.NewConfigureHandler(settings, logger)

	// Gateway callback routes (the gateway bounces the browser here)
	paymentGroup := e.Group("/payment/assist")
	paymentGroup.GET("/return", callbackHandler.Return)
	paymentGroup.GET("/fail", callbackHandler.Fail)

	// Checkout redirect
	e.GET("/checkout/:id/pay", checkoutHandler.Pay)
	e.GET("/orders/:id/repay", checkoutHandler.Repay)

	// Thin storefront pages the flow lands on
	e.GET("/", handler.Home)
	e.GET("/checkout/completed/:id", handler.CheckoutCompleted)
	e.GET("/orders/:id", handler.OrderDetails)

	// Admin configuration form
	adminGroup := e.Group("/admin/payments/assist")
	adminGroup.Use(middleware.AdminAuth(cfg.Admin.Token))
	adminGroup.GET("", configureHandler.Show)
	adminGroup.POST("", configureHandler.Save)

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
}
