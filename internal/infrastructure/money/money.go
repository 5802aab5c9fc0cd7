// Package money formats computed amounts for display.
//
// Amounts are carried as float64 through the pricing pipeline and only
// rounded here, at the presentation edge.
package money

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// WholeDollars clamps amount at zero and rounds it half away from zero to
// whole dollars.
func WholeDollars(amount float64) decimal.Decimal {
	d := decimal.NewFromFloat(amount)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d.Round(0)
}

// Cents clamps amount at zero and rounds it half away from zero to cents.
func Cents(amount float64) decimal.Decimal {
	d := decimal.NewFromFloat(amount)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d.Round(2)
}

// Format renders amount as whole US dollars, e.g. "$4,223".
// Negative amounts render as "$0".
func Format(amount float64) string {
	return "$" + humanize.Comma(WholeDollars(amount).IntPart())
}

// Count renders an integer with thousands separators, e.g. "3,847".
func Count(n int) string {
	return humanize.Comma(int64(n))
}
