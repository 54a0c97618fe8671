package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRupiah renders an amount the way id-ID does: "Rp 14.430.000" and
// "Rp 1.234,5" when there is a fractional part.
func FormatRupiah(amount decimal.Decimal) string {
	neg := amount.IsNegative()
	amount = amount.Abs().Round(2)

	whole := amount.Truncate(0).String()
	frac := strings.TrimRight(strings.TrimPrefix(amount.Sub(amount.Truncate(0)).StringFixed(2), "0."), "0")

	n := len(whole)
	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	if frac != "" {
		b.WriteByte(',')
		b.WriteString(frac)
	}

	if neg {
		return "-Rp " + b.String()
	}
	return "Rp " + b.String()
}
