package money

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	ErrInvalidAmount  = errors.New("invalid money amount")
	ErrNegativeAmount = errors.New("money cannot be negative")
)

// Money is an amount in euro cents, prices are TTC.
type Money struct {
	cents int64
}

func FromCents(cents int64) Money {
	return Money{cents: cents}
}

// Parse reads a decimal string as sent by the catalog API ("50", "50.5", "50.00").
// Amounts that cannot be expressed in whole cents are rejected.
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, fmt.Errorf("%w: empty value", ErrInvalidAmount)
	}

	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	cents := new(big.Rat).Mul(rat, big.NewRat(100, 1))
	if !cents.IsInt() || !cents.Num().IsInt64() {
		return Money{}, fmt.Errorf("%w: %q is not a whole number of cents", ErrInvalidAmount, s)
	}
	return Money{cents: cents.Num().Int64()}, nil
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) IsNegative() bool { return m.cents < 0 }

func (m Money) IsZero() bool { return m.cents == 0 }

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Times(n int) Money {
	return Money{cents: m.cents * int64(n)}
}

// Euros returns the amount as a float for display payloads only.
func (m Money) Euros() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) String() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}
