package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ActiveEnvelopes returns all envelopes that are not archived, ordered
// by name.
func ActiveEnvelopes() ([]Envelope, error) {
	var envelopes []Envelope

	err := DB.
		Where("archived = ?", false).
		Order("envelopes.name ASC").
		Find(&envelopes).Error
	if err != nil {
		return nil, fmt.Errorf("getting envelopes failed: %w", err)
	}

	return envelopes, nil
}

// EnvelopeBalanceSum returns the sum of the balances of all active
// envelopes.
func EnvelopeBalanceSum() (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := DB.Table("envelopes").
		Where("archived = ?", false).
		Where("deleted_at IS NULL").
		Select("SUM(balance)").
		Row().
		Scan(&sum)
	if err != nil {
		// Raw row queries bypass the error callbacks, map the error here
		return decimal.Zero, fmt.Errorf("%w: summing envelope balances failed: %s", ErrGeneral, err)
	}

	return sum.Decimal, nil
}

// CCHoldingSum returns the sum of the credit card holding amounts over
// all active accounts.
func CCHoldingSum() (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := DB.Table("accounts").
		Where("archived = ?", false).
		Where("deleted_at IS NULL").
		Select("SUM(cc_holding)").
		Row().
		Scan(&sum)
	if err != nil {
		// Raw row queries bypass the error callbacks, map the error here
		return decimal.Zero, fmt.Errorf("%w: summing account holdings failed: %s", ErrGeneral, err)
	}

	return sum.Decimal, nil
}
