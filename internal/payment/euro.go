package payment

import (
	"fmt"
	"math"
)

// Euro is a monetary amount held in euro cents.
type Euro struct {
	cents int64
}

// EuroFromCents builds an amount from a cent value.
func EuroFromCents(cents int64) Euro {
	return Euro{cents: cents}
}

// Cents returns the amount in euro cents.
func (e Euro) Cents() int64 {
	return e.cents
}

// EuroString renders the amount with two decimals, e.g. "10.00".
func (e Euro) EuroString() string {
	sign := ""
	cents := e.cents
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// Times multiplies the amount by n, saturating at the int64 bounds instead of
// wrapping.
func (e Euro) Times(n int64) Euro {
	if e.cents == 0 || n == 0 {
		return Euro{}
	}
	product := e.cents * n
	overflow := product/n != e.cents || (n == -1 && e.cents == math.MinInt64)
	if !overflow {
		return Euro{cents: product}
	}
	if (e.cents < 0) != (n < 0) {
		return Euro{cents: math.MinInt64}
	}
	return Euro{cents: math.MaxInt64}
}

func (e Euro) String() string {
	return e.EuroString() + " EUR"
}
