// Package currency maps currency codes to display rules. It only formats;
// no conversion is ever applied to amounts.
package currency

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Fallback rules for codes the registry does not know.
const unknownFraction = 2

func init() {
	// Crypto currencies on top of the ISO set. ETH is displayed with 8
	// digits like BTC; full wei precision is pointless on screen.
	money.AddCurrency("BTC", "₿", "$1", ".", ",", 8)
	money.AddCurrency("ETH", "Ξ", "$1", ".", ",", 8)
}

// Format renders an amount using the display rules of the given currency
// code. Unknown codes fall back to a plain two-decimal "1234.50 XXX" form.
func Format(code string, amount float64) string {
	c := money.GetCurrency(code)
	if c == nil {
		return fmt.Sprintf("%s %s", decimal.NewFromFloat(amount).StringFixed(unknownFraction), code)
	}
	minor := decimal.NewFromFloat(amount).Shift(int32(c.Fraction)).Round(0).IntPart()
	return money.New(minor, code).Display()
}

// Decimals returns the number of fraction digits used for display.
func Decimals(code string) int {
	if c := money.GetCurrency(code); c != nil {
		return c.Fraction
	}
	return unknownFraction
}

// Symbol returns the display symbol for the code, or the code itself when
// unknown.
func Symbol(code string) string {
	if c := money.GetCurrency(code); c != nil {
		return c.Grapheme
	}
	return code
}
