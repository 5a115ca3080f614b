package assist

import (
	"context"
	"encoding/xml"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"assistpay/internal/pkg/httpclient"
)

// Verdict is the parsed result of one order-status query: the amount and
// state the gateway reports for the order. The zero Verdict never verifies.
type Verdict struct {
	OrderAmount string
	OrderState  string
}

// StatusClient queries the gateway's order-status endpoint server to server.
// Every failure mode of the call (network error, timeout, HTML error page,
// broken XML) degrades to an unconfirmed verdict instead of an error: the
// caller only ever refuses to mark the order paid, it never crashes.
type StatusClient struct {
	client *httpclient.Client
	logger *zap.Logger
}

func NewStatusClient(logger *zap.Logger) *StatusClient {
	return &StatusClient{
		// No retries: a transient failure is a safe "not confirmed" and the
		// customer can re-trigger verification from the order page.
		client: httpclient.New().WithTimeout(20 * time.Second),
		logger: logger,
	}
}

type statusResponse struct {
	XMLName xml.Name
	Order   struct {
		OrderAmount string `xml:"orderamount"`
		OrderState  string `xml:"orderstate"`
	} `xml:"order"`
}

// CheckPaymentStatus posts one status query for the order and parses the
// response. The search window starts at the order's creation day with hour
// and minute pinned to zero, as the gateway protocol requires.
func (c *StatusClient) CheckPaymentStatus(ctx context.Context, s *Settings, orderID uint, createdAt time.Time) Verdict {
	searchFrom := createdAt.UTC()

	fields := map[string]string{
		"Merchant_ID": s.MerchantID,
		"Login":       s.Login,
		"Password":    s.Password,
		"OrderNumber": strconv.FormatUint(uint64(orderID), 10),
		"StartYear":   strconv.Itoa(searchFrom.Year()),
		"StartMonth":  strconv.Itoa(int(searchFrom.Month())),
		"StartDay":    strconv.Itoa(searchFrom.Day()),
		"StartHour":   "0",
		"StartMin":    "0",
		// Format 3 asks for an XML response.
		"Format": "3",
	}

	body, err := c.client.PostForm(ctx, s.OrderStateURL(), fields)
	if err != nil {
		c.logger.Warn("assist orderstate request failed",
			zap.Uint("order_id", orderID), zap.Error(err))
		return Verdict{}
	}

	text := string(body)
	if !strings.Contains(text, "?xml") {
		// The gateway answered with something that is not a document,
		// typically an HTML error page. Not confirmed, not an error.
		c.logger.Warn("assist orderstate returned non-XML body",
			zap.Uint("order_id", orderID))
		return Verdict{}
	}

	var resp statusResponse
	if err := xml.Unmarshal(body, &resp); err != nil {
		c.logger.Warn("assist orderstate XML parse failed",
			zap.Uint("order_id", orderID), zap.Error(err))
		return Verdict{}
	}

	return Verdict{
		OrderAmount: resp.Order.OrderAmount,
		OrderState:  resp.Order.OrderState,
	}
}
