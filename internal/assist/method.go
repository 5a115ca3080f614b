package assist

import "assistpay/internal/models"

// PaymentResult is how the host's payment pipeline sees the outcome of an
// operation. Declined operations carry error strings the caller must check;
// they are results, not Go errors.
type PaymentResult struct {
	NewPaymentStatus models.PaymentStatus
	Errors           []string
}

func (r *PaymentResult) Success() bool {
	return len(r.Errors) == 0
}

func (r *PaymentResult) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// Method is the Assist payment method as the host checkout pipeline sees it.
// Assist is a pure redirect method: the order stays Pending at checkout and
// is settled later by the callback flow, so capture, refund, void and
// recurring billing are all declined outright.
type Method struct {
	settings *Settings
}

func NewMethod(s *Settings) *Method {
	return &Method{settings: s}
}

// ProcessPayment runs at checkout, before the redirect. Nothing is charged
// yet; the order enters Pending and waits for the gateway callback.
func (m *Method) ProcessPayment() *PaymentResult {
	return &PaymentResult{NewPaymentStatus: models.PaymentStatusPending}
}

func (m *Method) Capture() *PaymentResult {
	return notSupported("Capture method not supported")
}

func (m *Method) Refund() *PaymentResult {
	return notSupported("Refund method not supported")
}

func (m *Method) Void() *PaymentResult {
	return notSupported("Void method not supported")
}

func (m *Method) ProcessRecurringPayment() *PaymentResult {
	return notSupported("Recurring payment not supported")
}

func (m *Method) CancelRecurringPayment() *PaymentResult {
	return notSupported("Recurring payment not supported")
}

// AdditionalHandlingFee is the configured surcharge for paying via Assist.
func (m *Method) AdditionalHandlingFee() float64 {
	return m.settings.AdditionalFee
}

func (m *Method) SupportsCapture() bool { return false }
func (m *Method) SupportsRefund() bool  { return false }
func (m *Method) SupportsVoid() bool    { return false }

func notSupported(msg string) *PaymentResult {
	r := &PaymentResult{}
	r.AddError(msg)
	return r
}
