package pdf

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		name     string
		amount   string
		currency string
		want     string
	}{
		{"USD gets dollar prefix", "1234.56", "USD", "$1,234.56 USD"},
		{"EUR gets bare number", "1234.56", "EUR", "1,234.56 EUR"},
		{"MXN gets bare number", "99.9", "MXN", "99.90 MXN"},
		{"always two decimal places", "5", "USD", "$5.00 USD"},
		{"zero", "0", "USD", "$0.00 USD"},
		{"million grouping", "1234567.89", "USD", "$1,234,567.89 USD"},
		{"no grouping under a thousand", "999.99", "EUR", "999.99 EUR"},
		{"negative amount", "-1234.5", "USD", "$-1,234.50 USD"},
		{"empty currency", "10", "", "10.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FormatMoney(decimal.RequireFromString(tc.amount), tc.currency)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGroupThousands(t *testing.T) {
	assert.Equal(t, "1,000", groupThousands("1000"))
	assert.Equal(t, "100", groupThousands("100"))
	assert.Equal(t, "12,345.67", groupThousands("12345.67"))
	assert.Equal(t, "-1,234.00", groupThousands("-1234.00"))
}
