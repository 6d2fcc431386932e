package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Money is an exact monetary amount stored as an integer count of minor
// currency units (cents). It is never backed by floating point.
type Money struct {
	minorUnits int64
}

// amountPattern accepts an unsigned decimal number with at most two
// fractional digits, e.g. "10" or "10.50". No sign, no thousands separators,
// no comma as decimal separator.
var amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// FromMinorUnits creates a Money from a count of minor units. Negative
// values are allowed; sign constraints live in Account.
func FromMinorUnits(n int64) Money {
	return Money{minorUnits: n}
}

// ParseMoney parses a user-entered decimal amount string into a Money.
// It returns ErrInvalidAmount for empty input, signs, commas, more than two
// fractional digits, or any non-digit character.
func ParseMoney(text string) (Money, error) {
	if !amountPattern.MatchString(text) {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}

	whole, frac, _ := strings.Cut(text, ".")

	// Pad the fractional part to exactly two digits ("5" -> "50").
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}

	return Money{minorUnits: units*100 + cents}, nil
}

// MinorUnits returns the amount as a count of minor units.
func (m Money) MinorUnits() int64 {
	return m.minorUnits
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.minorUnits < 0
}

// Add returns the sum of the two amounts.
func (m Money) Add(other Money) Money {
	return Money{minorUnits: m.minorUnits + other.minorUnits}
}

// Sub returns the difference of the two amounts.
func (m Money) Sub(other Money) Money {
	return Money{minorUnits: m.minorUnits - other.minorUnits}
}

// GreaterThan reports whether m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.minorUnits > other.minorUnits
}

// Format renders the amount as "[-]<units>.<2-digit cents> <currency>",
// e.g. "10.50 EUR". The sign appears only for negative amounts.
func (m Money) Format(currency string) string {
	cents := m.minorUnits
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, cents/100, cents%100, currency)
}
