package handler

import (
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Thin stand-ins for the host platform's storefront pages. The real host
// owns these views; the payment flow only needs somewhere safe to land.

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
</head>
<body>
    <h1>{{.Title}}</h1>
    <p>{{.Message}}</p>
</body>
</html>
`))

func renderPage(c echo.Context, title, message string) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/html; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return pageTemplate.Execute(c.Response().Writer, map[string]string{
		"Title":   title,
		"Message": message,
	})
}

// Home is the neutral landing page every rejected callback redirects to.
func Home(c echo.Context) error {
	return renderPage(c, "Store", "Welcome.")
}

// CheckoutCompleted is shown after a confirmed payment.
func CheckoutCompleted(c echo.Context) error {
	return renderPage(c, "Order completed", "Your order "+c.Param("id")+" has been placed. Thank you!")
}

// OrderDetails is where failed or pending payments land.
func OrderDetails(c echo.Context) error {
	return renderPage(c, "Order "+c.Param("id"), "Order details.")
}
