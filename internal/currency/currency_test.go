package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		amount float64
		want   string
	}{
		{name: "usd", code: "USD", amount: 1234.5, want: "$1,234.50"},
		{name: "usd negative", code: "USD", amount: -3.5, want: "-$3.50"},
		{name: "btc eight digits", code: "BTC", amount: 0.5, want: "₿0.50000000"},
		{name: "unknown code", code: "XYZ", amount: 12.345, want: "12.35 XYZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.code, tt.amount))
		})
	}
}

func TestDecimals(t *testing.T) {
	assert.Equal(t, 2, Decimals("USD"))
	assert.Equal(t, 8, Decimals("BTC"))
	assert.Equal(t, 2, Decimals("XYZ"))
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "$", Symbol("USD"))
	assert.Equal(t, "₿", Symbol("BTC"))
	assert.Equal(t, "XYZ", Symbol("XYZ"))
}
