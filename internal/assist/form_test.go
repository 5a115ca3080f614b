package assist

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistpay/internal/models"
)

func testOrder() *models.Order {
	return &models.Order{
		ID:         42,
		CustomerID: 7,
		Total:      19.99,
		CurrencyID: 1,
		Billing: models.Address{
			FirstName:   "Ivan",
			LastName:    "Petrov",
			Email:       "ivan@example.com",
			Address1:    "Tverskaya 1",
			City:        "Moscow",
			Zip:         "125009",
			Phone:       "+7 495 000-00-00",
			StateAbbr:   "MOW",
			CountryISO3: "RUS",
		},
		PaymentStatus: models.PaymentStatusPending,
		CreatedAt:     time.Now(),
	}
}

func TestBuildPaymentForm(t *testing.T) {
	s := validSettings()
	form, err := BuildPaymentForm(s, testOrder(), "RUB", "https://shop.example.com/")
	require.NoError(t, err)

	assert.Equal(t, "https://payments.example.com/pay/order.cfm", form.URL)

	wantOrder := []string{
		"Merchant_ID", "Delay", "OrderNumber", "OrderAmount", "OrderCurrency",
		"URL_RETURN", "URL_RETURN_OK", "FirstName", "LastName", "Email",
		"Address", "City", "Zip", "Phone", "State", "Country",
	}
	var gotOrder []string
	for _, f := range form.Fields {
		gotOrder = append(gotOrder, f.Name)
	}
	assert.Equal(t, wantOrder, gotOrder)

	wantValues := map[string]string{
		"Merchant_ID":   "M-1",
		"Delay":         "0",
		"OrderNumber":   "42",
		"OrderAmount":   "19.99",
		"OrderCurrency": "RUB",
		"URL_RETURN":    "https://shop.example.com/payment/assist/fail",
		"URL_RETURN_OK": "https://shop.example.com/payment/assist/return",
		"FirstName":     "Ivan",
		"LastName":      "Petrov",
		"Email":         "ivan@example.com",
		"Address":       "Tverskaya 1",
		"City":          "Moscow",
		"Zip":           "125009",
		"Phone":         "+7 495 000-00-00",
		"State":         "MOW",
		"Country":       "RUS",
	}
	for name, want := range wantValues {
		got, ok := form.Get(name)
		require.True(t, ok, "field %s missing", name)
		assert.Equal(t, want, got, "field %s", name)
	}
}

func TestBuildPaymentFormOptionalFields(t *testing.T) {
	order := testOrder()
	order.Billing.StateAbbr = ""
	order.Billing.CountryISO3 = ""

	form, err := BuildPaymentForm(validSettings(), order, "RUB", "https://shop.example.com")
	require.NoError(t, err)

	_, hasState := form.Get("State")
	_, hasCountry := form.Get("Country")
	assert.False(t, hasState)
	assert.False(t, hasCountry)

	// All mandatory fields survive.
	for _, name := range []string{
		"Merchant_ID", "Delay", "OrderNumber", "OrderAmount", "OrderCurrency",
		"URL_RETURN", "URL_RETURN_OK", "FirstName", "LastName", "Email",
		"Address", "City", "Zip", "Phone",
	} {
		_, ok := form.Get(name)
		assert.True(t, ok, "field %s missing", name)
	}
}

func TestBuildPaymentFormAuthorizeOnlyDelay(t *testing.T) {
	s := validSettings()
	s.AuthorizeOnly = true

	form, err := BuildPaymentForm(s, testOrder(), "RUB", "https://shop.example.com")
	require.NoError(t, err)

	delay, _ := form.Get("Delay")
	assert.Equal(t, "1", delay)
}

func TestBuildPaymentFormSandboxURL(t *testing.T) {
	s := validSettings()
	s.TestMode = true

	form, err := BuildPaymentForm(s, testOrder(), "RUB", "https://shop.example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://test.paysecure.ru/pay/order.cfm", form.URL)
}

func TestBuildPaymentFormMissingCurrency(t *testing.T) {
	_, err := BuildPaymentForm(validSettings(), testOrder(), "", "https://shop.example.com")
	assert.Error(t, err)

	_, err = BuildPaymentForm(validSettings(), nil, "RUB", "https://shop.example.com")
	assert.Error(t, err)
}

func TestPaymentFormRenderHTML(t *testing.T) {
	form, err := BuildPaymentForm(validSettings(), testOrder(), "RUB", "https://shop.example.com")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, form.RenderHTML(&buf))
	html := buf.String()

	assert.Contains(t, html, `action="https://payments.example.com/pay/order.cfm"`)
	assert.Contains(t, html, `name="OrderAmount" value="19.99"`)
	assert.Contains(t, html, `name="OrderNumber" value="42"`)
	assert.Contains(t, html, "document.getElementById('AssistPaymentForm').submit()")
}
