package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const customerIDKey = "customer_id"

// CustomerSession resolves the authenticated customer from the host session
// cookie. The host platform owns real authentication; this is only the seam
// the payment handlers read the customer identity through. Requests without
// a session simply carry no customer and fail the ownership checks later.
func CustomerSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cookie, err := c.Cookie(customerIDKey); err == nil {
				if id, err := strconv.ParseUint(cookie.Value, 10, 32); err == nil {
					c.Set(customerIDKey, uint(id))
				}
			}
			return next(c)
		}
	}
}

// CustomerID returns the authenticated customer for this request.
func CustomerID(c echo.Context) (uint, bool) {
	id, ok := c.Get(customerIDKey).(uint)
	return id, ok
}

// SetCustomerID stashes a customer identity on the context. Exposed for the
// handlers' tests.
func SetCustomerID(c echo.Context, id uint) {
	c.Set(customerIDKey, id)
}

// AdminAuth guards the configuration surface with a static token header.
func AdminAuth(token string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token == "" || c.Request().Header.Get("Token") != token {
				return c.JSON(http.StatusUnauthorized, map[string]interface{}{
					"status": false,
					"msg":    "Invalid token",
				})
			}
			return next(c)
		}
	}
}

// RequestLogger tags every request with an id and logs it through zap.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			requestID := uuid.New().String()
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			err := next(c)

			logger.Info("http request",
				zap.String("request_id", requestID),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.String("ip", c.RealIP()),
				zap.Duration("duration", time.Since(start)))
			return err
		}
	}
}

// CORS configures CORS headers.
func CORS() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set("Access-Control-Allow-Origin", "*")
			c.Response().Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type, Token")
			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusOK)
			}
			return next(c)
		}
	}
}
