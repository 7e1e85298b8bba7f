package ggchart

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatFixed formats v with a fixed number of decimals using the decimal
// separator of tag. Ties round away from zero and digits are never
// grouped, so 2.25 prints as "2.3" and 1500 as "1500". Values that round
// to zero print without a sign.
func FormatFixed(tag language.Tag, v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	p := math.Pow10(decimals)
	v = math.Round(v*p) / p
	if v == 0 {
		v = 0 // drops negative zero
	}
	return message.NewPrinter(tag).Sprint(number.Decimal(v, number.NoSeparator(), number.Scale(decimals)))
}
