package calc

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ReconciliationStatus classifies the size of the discrepancy for
// display. Only Balanced means the books actually balance.
type ReconciliationStatus string

const (
	ReconciliationBalanced        ReconciliationStatus = "balanced"
	ReconciliationMinorDifference ReconciliationStatus = "minor difference"
	ReconciliationOutOfBalance    ReconciliationStatus = "out of balance"
)

var (
	// balancedEpsilon is the band below which the books count as
	// balanced: anything under a cent is floating dust, not money.
	balancedEpsilon = decimal.RequireFromString("0.01")

	// minorBand is the display-only band for "minor difference".
	minorBand = decimal.NewFromInt(10)
)

// ReconciliationBreakdown exposes every intermediate figure of the
// reconciliation so the UI can show its work.
type ReconciliationBreakdown struct {
	BankBalance           decimal.Decimal `json:"bankBalance" example:"2500"`           // Balance reported by the bank
	CCHolding             decimal.Decimal `json:"ccHolding" example:"300"`              // Money already spent on credit cards but still in the account
	AvailableCash         decimal.Decimal `json:"availableCash" example:"2200"`         // Bank balance minus the credit card holding
	EnvelopeTotal         decimal.Decimal `json:"envelopeTotal" example:"2200"`         // Sum of all envelope balances
	AdjustedEnvelopeTotal decimal.Decimal `json:"adjustedEnvelopeTotal" example:"2200"` // Envelope total after adjustments. The holding is subtracted on the bank side, so this equals the raw total.
	Discrepancy           decimal.Decimal `json:"discrepancy" example:"0"`              // Available cash minus the adjusted envelope total
}

// ReconciliationResult is the outcome of checking a bank balance against
// the envelope balances.
type ReconciliationResult struct {
	IsBalanced  bool                    `json:"isBalanced" example:"true"`                                                     // Whether the discrepancy is below a cent
	Status      ReconciliationStatus    `json:"status" example:"balanced"`                                                     // Display classification of the discrepancy
	Discrepancy decimal.Decimal         `json:"discrepancy" example:"0"`                                                       // Available cash minus envelope total
	Breakdown   ReconciliationBreakdown `json:"breakdown"`                                                                     // Every intermediate figure
	Explanation string                  `json:"explanation" example:"Your available cash matches your envelopes to the cent."` // Human readable summary
}

// explain formats amounts with thousands separators for the explanation
// sentence.
var explain = message.NewPrinter(language.English)

// ValidateReconciliation checks a bank balance against the sum of all
// envelope balances, with the credit card holding subtracted from the
// bank side.
func ValidateReconciliation(bankBalance, envelopeTotal, ccHolding decimal.Decimal) ReconciliationResult {
	availableCash := bankBalance.Sub(ccHolding)

	// The holding amount is already accounted for on the bank side, the
	// envelope total stays as-is. Both figures are exposed so the UI can
	// show where the adjustment happened.
	adjusted := envelopeTotal

	discrepancy := availableCash.Sub(adjusted)
	magnitude := discrepancy.Abs()

	var status ReconciliationStatus
	switch {
	case magnitude.LessThan(balancedEpsilon):
		status = ReconciliationBalanced
	case magnitude.LessThan(minorBand):
		status = ReconciliationMinorDifference
	default:
		status = ReconciliationOutOfBalance
	}

	var explanation string
	amount, _ := magnitude.Round(2).Float64()
	switch {
	case status == ReconciliationBalanced:
		explanation = "Your available cash matches your envelopes to the cent."
	case discrepancy.IsPositive():
		explanation = explain.Sprintf("You have $%.2f in the bank that is not allocated to any envelope.", amount)
	default:
		explanation = explain.Sprintf("Your envelopes are over-allocated by $%.2f compared to your available cash.", amount)
	}

	return ReconciliationResult{
		IsBalanced:  status == ReconciliationBalanced,
		Status:      status,
		Discrepancy: discrepancy,
		Breakdown: ReconciliationBreakdown{
			BankBalance:           bankBalance,
			CCHolding:             ccHolding,
			AvailableCash:         availableCash,
			EnvelopeTotal:         envelopeTotal,
			AdjustedEnvelopeTotal: adjusted,
			Discrepancy:           discrepancy,
		},
		Explanation: explanation,
	}
}
