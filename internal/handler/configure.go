package handler

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"assistpay/internal/assist"
)

// ConfigureHandler is the administrative configuration form. It loads the
// current snapshot, and on save builds a fresh snapshot and persists it
// explicitly; the loaded one is never mutated.
type ConfigureHandler struct {
	settings SettingsStore
	logger   *zap.Logger
}

func NewConfigureHandler(settings SettingsStore, logger *zap.Logger) *ConfigureHandler {
	return &ConfigureHandler{settings: settings, logger: logger}
}

var configureTemplate = template.Must(template.New("configure").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Assist payment settings</title>
</head>
<body>
    <h1>Assist payment settings</h1>
    {{if .Saved}}<p>Settings saved.</p>{{end}}
    <form method="POST" action="/admin/payments/assist">
        <label>Enabled <input type="checkbox" name="enabled" value="1"{{if .S.Enabled}} checked{{end}}></label><br>
        <label>Merchant ID <input type="text" name="merchant_id" value="{{.S.MerchantID}}"></label><br>
        <label>Login <input type="text" name="login" value="{{.S.Login}}"></label><br>
        <label>Password <input type="password" name="password" value="{{.S.Password}}"></label><br>
        <label>Gateway URL <input type="text" name="gateway_url" value="{{.S.GatewayURL}}"></label><br>
        <label>Test mode <input type="checkbox" name="test_mode" value="1"{{if .S.TestMode}} checked{{end}}></label><br>
        <label>Authorize only <input type="checkbox" name="authorize_only" value="1"{{if .S.AuthorizeOnly}} checked{{end}}></label><br>
        <label>Additional fee <input type="text" name="additional_fee" value="{{.Fee}}"></label><br>
        <label>Primary currency ID <input type="text" name="primary_currency_id" value="{{.S.PrimaryCurrencyID}}"></label><br>
        <input type="submit" value="Save">
    </form>
</body>
</html>
`))

// Show renders the form with the current configuration.
func (h *ConfigureHandler) Show(c echo.Context) error {
	settings, err := h.settings.LoadAssist()
	if err != nil {
		h.logger.Error("load settings failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "settings unavailable")
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/html; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return configureTemplate.Execute(c.Response().Writer, map[string]interface{}{
		"S":     settings,
		"Fee":   assist.FormatAmount(settings.AdditionalFee),
		"Saved": c.QueryParam("saved") == "1",
	})
}

// Save validates the submitted form and persists a new snapshot.
func (h *ConfigureHandler) Save(c echo.Context) error {
	fee, err := strconv.ParseFloat(c.FormValue("additional_fee"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "additional fee must be a number")
	}
	currencyID, err := strconv.ParseUint(c.FormValue("primary_currency_id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "primary currency id must be a number")
	}

	snapshot := &assist.Settings{
		Enabled:           c.FormValue("enabled") == "1",
		MerchantID:        c.FormValue("merchant_id"),
		Login:             c.FormValue("login"),
		Password:          c.FormValue("password"),
		GatewayURL:        c.FormValue("gateway_url"),
		TestMode:          c.FormValue("test_mode") == "1",
		AuthorizeOnly:     c.FormValue("authorize_only") == "1",
		AdditionalFee:     fee,
		PrimaryCurrencyID: uint(currencyID),
	}

	if err := h.settings.SaveAssist(snapshot); err != nil {
		h.logger.Error("save settings failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "settings could not be saved")
	}

	h.logger.Info("assist settings updated",
		zap.Bool("enabled", snapshot.Enabled),
		zap.Bool("test_mode", snapshot.TestMode),
		zap.Bool("authorize_only", snapshot.AuthorizeOnly))

	return c.Redirect(http.StatusFound, "/admin/payments/assist?saved=1")
}
