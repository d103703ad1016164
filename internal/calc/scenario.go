package calc

import (
	"errors"

	"github.com/google/uuid"
	"github.com/my-budget-mate/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Scenario is a named reduction rule applied to the per-pay contributions
// of non-essential envelopes.
type Scenario struct {
	Name        string           `json:"name" example:"Cut discretionary by 20%"`                             // Name of the scenario
	Description string           `json:"description" example:"Reduce all discretionary envelopes by a fifth"` // What the scenario does
	Reduction   decimal.Decimal  `json:"reduction" example:"0.2"`                                             // Fraction of the per-pay contribution to cut, 0 to 1
	Priorities  []types.Priority `json:"priorities" example:"discretionary"`                                  // Priorities the scenario touches. Essential envelopes are never touched.
}

var ErrInvalidReduction = errors.New("the scenario reduction must be between 0 and 1")

// DefaultScenarios is the product's fixed scenario catalog.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{
			Name:        "Trim discretionary by 10%",
			Description: "Shave a tenth off every discretionary envelope",
			Reduction:   decimal.RequireFromString("0.1"),
			Priorities:  []types.Priority{types.PriorityDiscretionary},
		},
		{
			Name:        "Cut discretionary by 20%",
			Description: "Reduce every discretionary envelope by a fifth",
			Reduction:   decimal.RequireFromString("0.2"),
			Priorities:  []types.Priority{types.PriorityDiscretionary},
		},
		{
			Name:        "Tighten everything but essentials by 10%",
			Description: "Shave a tenth off important and discretionary envelopes",
			Reduction:   decimal.RequireFromString("0.1"),
			Priorities:  []types.Priority{types.PriorityImportant, types.PriorityDiscretionary},
		},
	}
}

// ImpactedEnvelope describes the effect of a scenario on one envelope.
type ImpactedEnvelope struct {
	EnvelopeID    uuid.UUID       `json:"envelopeId" example:"65392deb-5e92-4268-b114-297faad6cdce"` // The envelope the scenario touches
	Name          string          `json:"name" example:"Streaming"`                                  // Name of the envelope
	CurrentPerPay decimal.Decimal `json:"currentPerPay" example:"30"`                                // Contribution per pay before the scenario
	NewPerPay     decimal.Decimal `json:"newPerPay" example:"24"`                                    // Contribution per pay after the scenario
	SavedPerPay   decimal.Decimal `json:"savedPerPay" example:"6"`                                   // Difference per pay
}

// Projection describes what the scenario's savings do to the overall
// funding gap over a twelve month horizon.
type Projection struct {
	CurrentGap     decimal.Decimal `json:"currentGap" example:"250"`    // Sum of all positive envelope gaps
	TimeToCloseGap int             `json:"timeToCloseGap" example:"5"`  // Pay cycles until the savings cover the gap. 0 when there is no gap, -1 when the scenario saves nothing.
	BufferAfterGap decimal.Decimal `json:"bufferAfterGap" example:"62"` // Savings left over the horizon once the gap is closed
}

// ScenarioResult is the full outcome of applying a scenario to the
// current envelope health records.
type ScenarioResult struct {
	Scenario               Scenario           `json:"scenario"`                             // The scenario that was applied
	ImpactedEnvelopes      []ImpactedEnvelope `json:"impactedEnvelopes"`                    // Per-envelope changes
	SavingsPerPay          decimal.Decimal    `json:"savingsPerPay" example:"18.50"`        // Total saved per pay cycle
	TotalSavingsOverPeriod decimal.Decimal    `json:"totalSavingsOverPeriod" example:"481"` // Savings over twelve months of pay cycles
	Projection             Projection         `json:"projection"`                           // Effect on the funding gap
}

// Apply evaluates a scenario against the current health records.
//
// Essential envelopes are never reduced, regardless of what the
// scenario's priority list says. Per-pay contributions are clamped at
// zero so no scenario can turn a contribution negative.
func Apply(s Scenario, healths []Health, payFrequency types.Frequency) (ScenarioResult, error) {
	if s.Reduction.IsNegative() || s.Reduction.GreaterThan(decimal.NewFromInt(1)) {
		return ScenarioResult{}, ErrInvalidReduction
	}

	if !payFrequency.Valid() {
		return ScenarioResult{}, types.ErrInvalidFrequency
	}

	one := decimal.NewFromInt(1)

	impacted := make([]ImpactedEnvelope, 0)
	savingsPerPay := decimal.Zero
	currentGap := decimal.Zero

	for _, h := range healths {
		// Only positive gaps count: envelopes that are ahead do not
		// offset envelopes that are behind.
		if h.Gap.IsPositive() {
			currentGap = currentGap.Add(h.Gap)
		}

		if h.Priority == types.PriorityEssential {
			continue
		}

		if !slices.Contains(s.Priorities, h.Priority) {
			continue
		}

		newPerPay := h.PerPayAmount.Mul(one.Sub(s.Reduction))
		if newPerPay.IsNegative() {
			newPerPay = decimal.Zero
		}

		saved := h.PerPayAmount.Sub(newPerPay)

		impacted = append(impacted, ImpactedEnvelope{
			EnvelopeID:    h.EnvelopeID,
			Name:          h.Name,
			CurrentPerPay: h.PerPayAmount,
			NewPerPay:     newPerPay,
			SavedPerPay:   saved,
		})

		savingsPerPay = savingsPerPay.Add(saved)
	}

	// Twelve months expressed in pay cycles of the user's frequency
	totalSavings := savingsPerPay.Mul(payFrequency.PerYear())

	timeToCloseGap := 0
	if currentGap.IsPositive() {
		if savingsPerPay.IsPositive() {
			timeToCloseGap = int(currentGap.Div(savingsPerPay).Ceil().IntPart())
		} else {
			timeToCloseGap = -1
		}
	}

	buffer := totalSavings.Sub(currentGap)
	if buffer.IsNegative() {
		buffer = decimal.Zero
	}

	return ScenarioResult{
		Scenario:               s,
		ImpactedEnvelopes:      impacted,
		SavingsPerPay:          savingsPerPay,
		TotalSavingsOverPeriod: totalSavings,
		Projection: Projection{
			CurrentGap:     currentGap,
			TimeToCloseGap: timeToCloseGap,
			BufferAfterGap: buffer,
		},
	}, nil
}
