package assist

import (
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"assistpay/internal/models"
)

// FormField is a single hidden input of the outbound payment form. Field
// order matters to the gateway, so the form keeps a slice, not a map.
type FormField struct {
	Name  string
	Value string
}

// PaymentForm is the fully assembled redirect payload: the gateway payment
// URL plus the ordered hidden fields the browser will POST there. It exists
// only for the duration of one checkout redirect and is never persisted.
type PaymentForm struct {
	URL    string
	Fields []FormField
}

// Get returns the value of the named field.
func (f *PaymentForm) Get(name string) (string, bool) {
	for _, fld := range f.Fields {
		if fld.Name == name {
			return fld.Value, true
		}
	}
	return "", false
}

func (f *PaymentForm) add(name, value string) {
	f.Fields = append(f.Fields, FormField{Name: name, Value: value})
}

// BuildPaymentForm assembles the outbound payment initiation payload for an
// order. currencyCode must already be resolved from the store's primary
// currency; an unresolvable currency is a configuration error and surfaces
// before any redirect happens. The builder itself never touches the network.
func BuildPaymentForm(s *Settings, order *models.Order, currencyCode, storeURL string) (*PaymentForm, error) {
	if order == nil {
		return nil, fmt.Errorf("build payment form: nil order")
	}
	if currencyCode == "" {
		return nil, fmt.Errorf("build payment form: order %d: currency code is not resolved", order.ID)
	}

	delay := "0"
	if s.AuthorizeOnly {
		delay = "1"
	}

	store := strings.TrimRight(storeURL, "/")

	form := &PaymentForm{URL: s.PaymentURL()}
	form.add("Merchant_ID", s.MerchantID)
	form.add("Delay", delay)
	form.add("OrderNumber", strconv.FormatUint(uint64(order.ID), 10))
	form.add("OrderAmount", FormatAmount(order.Total))
	form.add("OrderCurrency", currencyCode)
	form.add("URL_RETURN", store+"/payment/assist/fail")
	form.add("URL_RETURN_OK", store+"/payment/assist/return")
	form.add("FirstName", order.Billing.FirstName)
	form.add("LastName", order.Billing.LastName)
	form.add("Email", order.Billing.Email)
	form.add("Address", order.Billing.Address1)
	form.add("City", order.Billing.City)
	form.add("Zip", order.Billing.Zip)
	form.add("Phone", order.Billing.Phone)

	if order.Billing.StateAbbr != "" {
		form.add("State", order.Billing.StateAbbr)
	}
	if order.Billing.CountryISO3 != "" {
		form.add("Country", order.Billing.CountryISO3)
	}

	return form, nil
}

var formTemplate = template.Must(template.New("assist_form").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Redirecting to payment...</title>
</head>
<body onload="document.getElementById('AssistPaymentForm').submit()">
    <form id="AssistPaymentForm" method="POST" action="{{.URL}}">
{{- range .Fields}}
        <input type="hidden" name="{{.Name}}" value="{{.Value}}">
{{- end}}
        <noscript><input type="submit" value="Continue to payment"></noscript>
    </form>
</body>
</html>
`))

// RenderHTML writes the auto-submitting form page. The customer's browser
// performs the actual POST to the gateway.
func (f *PaymentForm) RenderHTML(w io.Writer) error {
	return formTemplate.Execute(w, f)
}
