package domain

import (
	"fmt"
	"strconv"
	"strings"

	dErrors "onboard/pkg/domain-errors"
)

// Money is an amount in currency minor units (pence, cents). Holding an int64
// avoids the float rounding problems a payment pipeline cannot afford.
type Money struct {
	MinorUnits int64  `json:"minor_units"`
	Currency   string `json:"currency"`
}

// NewMoney constructs a Money value.
//
// Errors: returns CodeInvalidInput on negative amounts or a missing currency.
func NewMoney(minorUnits int64, currency string) (Money, error) {
	if minorUnits < 0 {
		return Money{}, dErrors.New(dErrors.CodeInvalidInput, "amount cannot be negative")
	}
	if currency == "" {
		return Money{}, dErrors.New(dErrors.CodeInvalidInput, "currency is required")
	}
	return Money{MinorUnits: minorUnits, Currency: currency}, nil
}

// ParseAmount converts a decimal string such as "100.00" or "0.99" to minor
// units, assuming a two-decimal currency. At most two fractional digits are
// accepted.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "amount cannot be empty")
	}
	if strings.HasPrefix(s, "-") {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "amount cannot be negative")
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "amount has more than two decimal places")
	}
	// Right-pad the fraction so "1.5" means 150 minor units.
	frac += strings.Repeat("0", 2-len(frac))

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "amount is not a valid decimal")
	}
	cents, err := strconv.ParseInt(frac, 10, 64)
	if err != nil || cents < 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "amount is not a valid decimal")
	}
	return units*100 + cents, nil
}

// String renders the amount back as a decimal, e.g. "100.00 GBP".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d %s", m.MinorUnits/100, m.MinorUnits%100, m.Currency)
}
