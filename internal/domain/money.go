package domain

import "github.com/shopspring/decimal"

const (
	// OneMillion is the fixed-point scale of every stored amount.
	OneMillion int64 = 1_000_000

	fixedPointExp = -6
)

var hundred = decimal.NewFromInt(100)

// FromFixed converts a stored fixed-point integer to its display value.
func FromFixed(v int64) decimal.Decimal {
	return decimal.New(v, fixedPointExp)
}

// ToFixed converts a display value to the stored fixed-point integer,
// truncating anything below the scale.
func ToFixed(d decimal.Decimal) int64 {
	return d.Shift(-fixedPointExp).IntPart()
}

// interest returns the fee percentage implied by a ledger delta against a
// fiat amount converted at exchangeRate. All three values are fixed point.
func interest(delta, amount, exchangeRate int64, viewer Role) decimal.Decimal {
	if amount == 0 || exchangeRate == 0 {
		return decimal.Zero
	}

	converted := decimal.NewFromInt(amount).Div(decimal.NewFromInt(exchangeRate))
	ratio := FromFixed(delta).Div(converted).Abs()
	if viewer.PaysFee() {
		ratio = ratio.Sub(decimal.NewFromInt(1))
	}

	return ratio.Abs().Mul(hundred).Round(2)
}
