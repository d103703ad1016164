package calc

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/my-budget-mate/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Status describes how an envelope's balance compares to the balance it
// should have at this point of the pay cycle.
type Status string

const (
	StatusOnTrack Status = "on-track"
	StatusOver    Status = "over"
	StatusUnder   Status = "under"
)

// GapStatus describes the sign of the funding gap. The gap is
// shouldHaveSaved minus the current balance, so a positive gap means the
// envelope is under-funded.
type GapStatus string

const (
	GapAhead   GapStatus = "ahead"
	GapOnTrack GapStatus = "on-track"
	GapBehind  GapStatus = "behind"
)

// statusTolerance is the band within which two money values count as
// equal. Without it, balances that differ by fractions of a cent would
// flap between "over" and "under".
var statusTolerance = decimal.RequireFromString("0.01")

// ExpectedBalance projects the balance an envelope should have after the
// current pay cycle: the opening balance plus one contribution.
//
// This is a single cycle projection on purpose. Projecting multiple
// cycles from the stored cycle start date is pending product
// clarification, see ElapsedCycles.
func ExpectedBalance(opening, contribution decimal.Decimal) decimal.Decimal {
	return opening.Add(contribution)
}

// DetermineStatus compares the current balance to the expected balance.
func DetermineStatus(current, expected decimal.Decimal) Status {
	diff := current.Sub(expected)

	switch {
	case diff.Abs().LessThanOrEqual(statusTolerance):
		return StatusOnTrack
	case diff.IsNegative():
		return StatusUnder
	default:
		return StatusOver
	}
}

// GapStatusOf classifies a funding gap.
func GapStatusOf(gap decimal.Decimal) GapStatus {
	switch {
	case gap.IsPositive():
		return GapBehind
	case gap.IsNegative():
		return GapAhead
	default:
		return GapOnTrack
	}
}

// DueProgress is the display representation of how far away a due date is.
type DueProgress struct {
	Label     string `json:"label" example:"In 3 days"`       // Bucketed distance to the due date
	Formatted string `json:"formatted" example:"26 Aug 2026"` // The due date formatted for display, empty without a due date
}

// DueProgressAt buckets the calendar-day distance from today to the due
// date. Both times are truncated to their date before comparing. A nil
// due date yields the zero value, not an error.
func DueProgressAt(due *time.Time, today time.Time) DueProgress {
	if due == nil {
		return DueProgress{}
	}

	days := DaysUntil(*due, today)

	var label string
	switch {
	case days < 0:
		label = "Overdue"
	case days == 0:
		label = "Today!"
	case days == 1:
		label = "Tomorrow"
	case days <= 7:
		label = fmt.Sprintf("In %d days", days)
	case days <= 14:
		label = "Next week"
	case days <= 30:
		label = fmt.Sprintf("In %d weeks", (days+6)/7)
	default:
		label = fmt.Sprintf("In %d months", (days+29)/30)
	}

	return DueProgress{
		Label:     label,
		Formatted: due.Format("2 Jan 2006"),
	}
}

// DaysUntil returns the number of calendar days from today to the target
// date, ignoring the time of day of both.
func DaysUntil(target, today time.Time) int {
	t := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	return int(t.Sub(n).Hours() / 24)
}

// ElapsedCycles returns the number of whole pay cycles that have passed
// between the cycle start date and today.
//
// It exists so that the expected balance can be projected across multiple
// cycles once the product confirms that behavior; nothing feeds it into
// status calculations yet.
func ElapsedCycles(start, today time.Time, frequency types.Frequency) int {
	if today.Before(start) {
		return 0
	}

	days := DaysUntil(today, start)

	switch frequency {
	case types.FrequencyWeekly:
		return days / 7
	case types.FrequencyFortnightly:
		return days / 14
	case types.FrequencyMonthly, types.FrequencyQuarterly, types.FrequencyAnnually:
		months := (today.Year()-start.Year())*12 + int(today.Month()) - int(start.Month())
		if today.Day() < start.Day() {
			months--
		}

		switch frequency {
		case types.FrequencyQuarterly:
			return months / 3
		case types.FrequencyAnnually:
			return months / 12
		default:
			return months
		}
	default:
		return 0
	}
}

// EnvelopeState carries the persisted fields of an envelope that the
// health calculation consumes. It deliberately mirrors the data model
// without depending on the database layer.
type EnvelopeState struct {
	ID             uuid.UUID
	Name           string
	Priority       types.Priority
	TargetAmount   decimal.Decimal
	Frequency      types.Frequency
	PerPayAmount   decimal.Decimal
	OpeningBalance decimal.Decimal
	Balance        decimal.Decimal
	DueDate        *time.Time
}

// Health is the derived view of an envelope's funding progress. It is
// computed fresh on every request and never persisted.
type Health struct {
	EnvelopeID      uuid.UUID       `json:"envelopeId" example:"65392deb-5e92-4268-b114-297faad6cdce"` // The envelope this health record describes
	Name            string          `json:"name" example:"Power"`                                      // Name of the envelope
	Priority        types.Priority  `json:"priority" example:"essential"`                              // Priority of the envelope
	PerPayAmount    decimal.Decimal `json:"perPayAmount" example:"69.23"`                              // Contribution per pay cycle
	Balance         decimal.Decimal `json:"balance" example:"120"`                                     // Current balance
	ShouldHaveSaved decimal.Decimal `json:"shouldHaveSaved" example:"138.46"`                          // Expected balance at this point of the cycle
	PercentComplete decimal.Decimal `json:"percentComplete" example:"86.67"`                           // Balance as a percentage of the expected balance
	Gap             decimal.Decimal `json:"gap" example:"18.46"`                                       // shouldHaveSaved - balance, positive means under-funded
	GapStatus       GapStatus       `json:"gapStatus" example:"behind"`                                // Classification of the gap
	Status          Status          `json:"status" example:"under"`                                    // Balance vs. expected balance
	DaysUntilDue    *int            `json:"daysUntilDue" example:"3"`                                  // Days until the due date, null without one
	Due             DueProgress     `json:"due"`                                                       // Display representation of the due date
}

// HealthOf computes the derived health view for one envelope.
func HealthOf(e EnvelopeState, today time.Time) Health {
	shouldHaveSaved := ExpectedBalance(e.OpeningBalance, e.PerPayAmount)
	gap := shouldHaveSaved.Sub(e.Balance)

	// An envelope that needs nothing is complete.
	percent := decimal.NewFromInt(100)
	if shouldHaveSaved.IsPositive() {
		percent = e.Balance.Div(shouldHaveSaved).Mul(decimal.NewFromInt(100))
	}

	var daysUntilDue *int
	if e.DueDate != nil {
		days := DaysUntil(*e.DueDate, today)
		daysUntilDue = &days
	}

	return Health{
		EnvelopeID:      e.ID,
		Name:            e.Name,
		Priority:        e.Priority,
		PerPayAmount:    e.PerPayAmount,
		Balance:         e.Balance,
		ShouldHaveSaved: shouldHaveSaved,
		PercentComplete: percent,
		Gap:             gap,
		GapStatus:       GapStatusOf(gap),
		Status:          DetermineStatus(e.Balance, shouldHaveSaved),
		DaysUntilDue:    daysUntilDue,
		Due:             DueProgressAt(e.DueDate, today),
	}
}
