package assist

import (
	"errors"
	"strings"
)

// TestGatewayURL is the fixed Assist sandbox; it replaces the configured
// gateway URL whenever test mode is on.
const TestGatewayURL = "https://test.paysecure.ru/"

const (
	paymentCommand    = "pay/order.cfm"
	orderStateCommand = "orderstate/orderstate.cfm"
)

// Settings is an immutable snapshot of the gateway configuration. It is
// loaded from the settings store at request time; the admin form persists a
// new snapshot rather than mutating a shared one.
type Settings struct {
	Enabled           bool
	MerchantID        string
	Login             string
	Password          string
	GatewayURL        string
	TestMode          bool
	AuthorizeOnly     bool
	AdditionalFee     float64
	PrimaryCurrencyID uint
}

var (
	// ErrNotConfigured means the payment method cannot serve requests at
	// all. This is a configuration error and aborts the current flow.
	ErrNotConfigured = errors.New("assist payment method is not configured")

	// ErrDisabled means the method is installed but switched off.
	ErrDisabled = errors.New("assist payment method is disabled")
)

// Validate reports whether the snapshot describes a usable payment method.
func (s *Settings) Validate() error {
	if s == nil || s.MerchantID == "" {
		return ErrNotConfigured
	}
	if !s.TestMode && s.GatewayURL == "" {
		return ErrNotConfigured
	}
	if !s.Enabled {
		return ErrDisabled
	}
	return nil
}

func (s *Settings) baseURL() string {
	base := s.GatewayURL
	if s.TestMode {
		base = TestGatewayURL
	}
	return strings.TrimRight(base, "/")
}

// PaymentURL is the target of the outbound browser form post.
func (s *Settings) PaymentURL() string {
	return s.baseURL() + "/" + paymentCommand
}

// OrderStateURL is the server-to-server order-status endpoint.
func (s *Settings) OrderStateURL() string {
	return s.baseURL() + "/" + orderStateCommand
}
