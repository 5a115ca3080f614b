package assist

import "strconv"

// FormatAmount renders a monetary total with exactly two fractional digits
// and a dot decimal separator, regardless of host locale. The outbound
// OrderAmount field and the status verdict comparison both go through this
// one routine so the two representations cannot drift apart.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
