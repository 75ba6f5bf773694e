package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// maxFractionalDigits is the precision of the money domain: amounts carry at
// most four decimal places, exactly.
const maxFractionalDigits = 4

// Money is a signed fixed-point decimal amount with four fractional digits.
type Money struct {
	dec decimal.Decimal
}

// ParseMoney parses a textual decimal literal into a Money value.
// Literals with more than four fractional digits are rejected.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q", s)
	}
	if d.Exponent() < -maxFractionalDigits {
		return Money{}, fmt.Errorf("amount %q has more than %d fractional digits", s, maxFractionalDigits)
	}
	return Money{dec: d}, nil
}

// MustMoney parses a decimal literal and panics on failure. For fixtures.
func MustMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Add(o Money) Money {
	return Money{dec: m.dec.Add(o.dec)}
}

func (m Money) Sub(o Money) Money {
	return Money{dec: m.dec.Sub(o.dec)}
}

// Cmp returns -1, 0 or 1 depending on whether m is less than, equal to, or
// greater than o.
func (m Money) Cmp(o Money) int {
	return m.dec.Cmp(o.dec)
}

func (m Money) Equal(o Money) bool {
	return m.dec.Cmp(o.dec) == 0
}

func (m Money) IsPositive() bool {
	return m.dec.IsPositive()
}

func (m Money) IsNegative() bool {
	return m.dec.IsNegative()
}

func (m Money) IsZero() bool {
	return m.dec.IsZero()
}

// String renders the shortest representation that round-trips: trailing
// fractional zeros are trimmed and zero renders as "0".
func (m Money) String() string {
	s := m.dec.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
