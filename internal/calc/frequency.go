// Package calc implements the pay cycle allocation, envelope health,
// scenario and reconciliation arithmetic for My Budget Mate.
//
// Every function in this package is pure: no I/O, no shared state, inputs
// are never mutated. Money values stay exact decimals throughout; rounding
// to two decimal places only happens at presentation boundaries such as
// the CSV export.
package calc

import (
	"fmt"

	"github.com/my-budget-mate/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Annualize converts an amount due at the given frequency into the amount
// due per year. A frequency of "none" yields zero.
func Annualize(amount decimal.Decimal, frequency types.Frequency) (decimal.Decimal, error) {
	if !frequency.Valid() {
		return decimal.Zero, fmt.Errorf("annualize: %w", types.ErrInvalidFrequency)
	}

	return amount.Mul(frequency.PerYear()), nil
}

// RequiredContribution converts an annual amount into the contribution
// needed per pay cycle. A pay frequency of "none" yields zero, it is not
// an error: an envelope without a funding schedule simply needs nothing
// per cycle.
func RequiredContribution(annual decimal.Decimal, payFrequency types.Frequency) (decimal.Decimal, error) {
	if !payFrequency.Valid() {
		return decimal.Zero, fmt.Errorf("required contribution: %w", types.ErrInvalidFrequency)
	}

	perYear := payFrequency.PerYear()
	if perYear.IsZero() {
		return decimal.Zero, nil
	}

	return annual.Div(perYear), nil
}

// PerPayAmount chains Annualize and RequiredContribution: it converts an
// envelope's target amount at its own frequency into the contribution per
// pay cycle. This is the single place the stored per-pay amount of an
// envelope is recomputed from.
func PerPayAmount(target decimal.Decimal, frequency, payFrequency types.Frequency) (decimal.Decimal, error) {
	annual, err := Annualize(target, frequency)
	if err != nil {
		return decimal.Zero, err
	}

	return RequiredContribution(annual, payFrequency)
}
