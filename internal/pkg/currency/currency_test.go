//go:build unit

package currency_test

import (
	"testing"

	"cart-recovery/internal/pkg/currency"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		code  string
		want  string
	}{
		{name: "dollars and cents", cents: 1998, code: "USD", want: "$19.98"},
		{name: "whole dollars", cents: 500, code: "USD", want: "$5.00"},
		{name: "sub-dollar amount", cents: 9, code: "USD", want: "$0.09"},
		{name: "zero", cents: 0, code: "USD", want: "$0.00"},
		{name: "euro", cents: 1250, code: "EUR", want: "€12.50"},
		{name: "pound", cents: 100, code: "GBP", want: "£1.00"},
		{name: "yen has no minor unit", cents: 1998, code: "JPY", want: "¥1998"},
		{name: "unknown zero-decimal code", cents: 5000, code: "KRW", want: "5000 KRW"},
		{name: "unknown code falls back to ISO suffix", cents: 1998, code: "SEK", want: "19.98 SEK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, currency.Format(tt.cents, tt.code))
		})
	}
}
