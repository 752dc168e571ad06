// Package currency renders ledger amounts for display. Amounts are stored
// as int64 minor units, which is exactly go-money's model.
package currency

import "github.com/Rhymond/go-money"

// DefaultCode is the base currency used when config does not override it.
const DefaultCode = "IDR"

func init() {
	// Rupiah has no circulating sub-unit: ledger amounts are whole rupiah,
	// so the display fraction is zero.
	money.AddCurrency("IDR", "Rp", "$1", ",", ".", 0)
}

// Format renders a minor-unit amount in the given currency.
func Format(amount int64, code string) string {
	return money.New(amount, code).Display()
}
