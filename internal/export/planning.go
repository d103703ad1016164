// Package export renders calculation outputs for download.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/my-budget-mate/backend/internal/calc"
	"github.com/my-budget-mate/backend/internal/types"
	"github.com/shopspring/decimal"
)

// PlanningRow carries the per-envelope figures the planning export
// serializes. Callers map their rows into this struct so the export does
// not depend on the database layer.
type PlanningRow struct {
	Envelope       string
	Category       string
	TargetAmount   decimal.Decimal
	Frequency      types.Frequency
	PlanPerPay     decimal.Decimal
	OpeningBalance decimal.Decimal
	Balance        decimal.Decimal
	DueDate        *time.Time
	Note           string
}

// Filename returns the download filename for a planning export.
func Filename(today time.Time) string {
	return fmt.Sprintf("envelope-planning-%s.csv", today.Format("2006-01-02"))
}

// Planning serializes the planning rows as CSV. All numbers are rounded
// to two decimal places here, at the presentation boundary.
func Planning(rows []PlanningRow, payFrequency types.Frequency, today time.Time) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"Envelope",
		"Category",
		"Target Amount",
		"Annual Amount",
		fmt.Sprintf("Required %s Amount", payFrequency.Title()),
		"Plan Per Pay",
		"Plan Variance",
		"Current Balance",
		"Status",
		"Next Due",
		"Due Status",
		"Frequency",
		"Notes",
	}

	err := w.Write(header)
	if err != nil {
		return nil, fmt.Errorf("could not write CSV header: %w", err)
	}

	for _, row := range rows {
		annual, err := calc.Annualize(row.TargetAmount, row.Frequency)
		if err != nil {
			return nil, fmt.Errorf("envelope %q: %w", row.Envelope, err)
		}

		required, err := calc.RequiredContribution(annual, payFrequency)
		if err != nil {
			return nil, fmt.Errorf("envelope %q: %w", row.Envelope, err)
		}

		variance := row.PlanPerPay.Sub(required)
		expected := calc.ExpectedBalance(row.OpeningBalance, required)
		status := calc.DetermineStatus(row.Balance, expected)
		due := calc.DueProgressAt(row.DueDate, today)

		err = w.Write([]string{
			row.Envelope,
			row.Category,
			row.TargetAmount.StringFixed(2),
			annual.StringFixed(2),
			required.StringFixed(2),
			row.PlanPerPay.StringFixed(2),
			variance.StringFixed(2),
			row.Balance.StringFixed(2),
			string(status),
			due.Formatted,
			due.Label,
			row.Frequency.String(),
			row.Note,
		})
		if err != nil {
			return nil, fmt.Errorf("could not write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("could not flush CSV: %w", err)
	}

	return buf.Bytes(), nil
}
