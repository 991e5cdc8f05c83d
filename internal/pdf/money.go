package pdf

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount with thousands separators and exactly two
// decimal places, followed by the 3-letter currency code. Only USD gets a
// literal "$" prefix; every other currency shows the bare number with the
// code suffix. The asymmetry is intentional and matches the documents this
// layout reproduces: "$1,234.56 USD" versus "1,234.56 EUR".
func FormatMoney(amount decimal.Decimal, currency string) string {
	sym := ""
	if currency == "USD" {
		sym = "$"
	}

	return strings.TrimSpace(sym + groupThousands(amount.StringFixed(2)) + " " + currency)
}

// groupThousands inserts comma separators into the integer part of a fixed
// decimal string, preserving an optional leading sign.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := sign + b.String()
	if hasFrac {
		out += "." + fracPart
	}

	return out
}
