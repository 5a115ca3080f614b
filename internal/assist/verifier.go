package assist

// approvedState is the exact gateway token for a settled payment. The
// comparison is case-sensitive on purpose.
const approvedState = "Approved"

// Verified is the single authority for "was this order actually paid": the
// gateway-reported amount must equal the locally formatted order total AND
// the gateway-reported state must be exactly Approved. Any mismatch, or an
// empty verdict from a failed status call, means not paid.
func Verified(orderTotal float64, v Verdict) bool {
	return v.OrderAmount == FormatAmount(orderTotal) && v.OrderState == approvedState
}
