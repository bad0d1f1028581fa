package order

import "github.com/shopspring/decimal"

// Money is the exact-decimal currency representation used across the order
// domain. Binary floating point is never used for currency. Stored amounts are
// rounded to two decimal places at the point of storage; intermediate
// arithmetic keeps full precision.
type Money = decimal.Decimal

// currencyScale is the number of decimal places stored for currency amounts.
const currencyScale = 2

// NewMoneyFromString parses a decimal currency amount such as "29.99".
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoneyFromString parses a decimal currency amount and panics on malformed
// input. Intended for literals in configuration defaults and tests.
func MustMoneyFromString(s string) Money {
	return decimal.RequireFromString(s)
}

// ZeroMoney returns the zero currency amount.
func ZeroMoney() Money {
	return decimal.Zero
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// roundCurrency rounds an amount to the stored currency scale.
func roundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(currencyScale)
}
