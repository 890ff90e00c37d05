// Package money represents amounts as int64 minor units (cents).
//
// Floating point is never used for amounts anywhere in the codebase; equal
// splits must sum back to the original total exactly, and floats drift.
package money

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/splithappens/splithappens/internal/apperr"
)

// Amount is a currency-agnostic amount in minor units.
// It marshals to JSON as a plain integer.
type Amount int64

// Parse converts a user-entered decimal string ("12.34") to an Amount.
// At most two fractional digits are accepted.
func Parse(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, apperr.Validationf("amount is required")
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, apperr.Validationf("invalid amount %q", s)
	}

	var cents int64
	switch len(frac) {
	case 0:
	case 1:
		cents, err = strconv.ParseInt(frac, 10, 64)
		cents *= 10
	case 2:
		cents, err = strconv.ParseInt(frac, 10, 64)
	default:
		return 0, apperr.Validationf("amount %q has more than two decimal places", s)
	}
	if err != nil {
		return 0, apperr.Validationf("invalid amount %q", s)
	}

	total := units*100 + cents
	if total < 0 {
		return 0, apperr.Validationf("amount %q overflows", s)
	}
	if neg {
		total = -total
	}
	return Amount(total), nil
}

// String formats the amount as a decimal string without float math.
func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// IsPositive reports whether the amount is strictly greater than zero.
func (a Amount) IsPositive() bool { return a > 0 }
