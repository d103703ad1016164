package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/my-budget-mate/backend/internal/calc"
	"github.com/my-budget-mate/backend/internal/httputil"
	"github.com/my-budget-mate/backend/internal/models"
	"github.com/my-budget-mate/backend/internal/types"
	"github.com/shopspring/decimal"
)

// RegisterPlanRoutes registers the routes for the pay plan with the
// RouterGroup that is passed.
func RegisterPlanRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsPlan)
	r.GET("", GetPlan)
	r.OPTIONS("/health", OptionsPlanHealth)
	r.GET("/health", GetPlanHealth)
}

// PlanLine is one envelope's row in the pay plan
type PlanLine struct {
	EnvelopeID   uuid.UUID       `json:"envelopeId" example:"2b1d8df5-e611-4e2b-9e83-1ecf59c82aaf"` // ID of the envelope
	Name         string          `json:"name" example:"Power"`                                      // Name of the envelope
	Priority     types.Priority  `json:"priority" example:"essential"`                              // Priority of the envelope
	TargetAmount decimal.Decimal `json:"targetAmount" example:"150"`                                // The target amount per frequency
	Frequency    types.Frequency `json:"frequency" example:"monthly"`                               // How often the target amount is due
	AnnualAmount decimal.Decimal `json:"annualAmount" example:"1800"`                               // The target amount per year
	PerPayAmount decimal.Decimal `json:"perPayAmount" example:"69.23"`                              // Contribution needed per pay cycle
}

// Plan is the full allocation of a pay cycle
type Plan struct {
	PayFrequency    types.Frequency `json:"payFrequency" example:"fortnightly"` // The frequency income arrives at
	Lines           []PlanLine      `json:"lines"`                              // One line per active envelope
	PerPayIncome    decimal.Decimal `json:"perPayIncome" example:"2400"`        // Income per pay cycle
	PerPayAllocated decimal.Decimal `json:"perPayAllocated" example:"2231.77"`  // Sum of all per-pay contributions
	PerPaySurplus   decimal.Decimal `json:"perPaySurplus" example:"168.23"`     // Income minus allocations. Negative when the plan over-commits the income.
}

type PlanResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Plan   `json:"data"`                                                          // The pay plan
}

// EnvelopeHealth is the health record for a single envelope. It is
// computed fresh on every request and never persisted.
type EnvelopeHealth = calc.Health

type PlanHealthResponse struct {
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []EnvelopeHealth `json:"data"`                                                          // Health records for all active envelopes
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plan
// @Success		204
// @Router			/v1/plan [options]
func OptionsPlan(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plan
// @Success		204
// @Router			/v1/plan/health [options]
func OptionsPlanHealth(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get pay plan
// @Description	Returns the allocation plan for one pay cycle: the required contribution of every active envelope against the configured income
// @Tags			Plan
// @Produce		json
// @Success		200	{object}	PlanResponse
// @Failure		400	{object}	PlanResponse
// @Failure		500	{object}	PlanResponse
// @Router			/v1/plan [get]
func GetPlan(c *gin.Context) {
	settings, err := models.GetPaySettings()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PlanResponse{
			Error: &s,
		})
		return
	}

	envelopes, err := models.ActiveEnvelopes()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PlanResponse{
			Error: &s,
		})
		return
	}

	lines := make([]PlanLine, 0, len(envelopes))
	allocated := decimal.Zero

	for _, envelope := range envelopes {
		annual, err := calc.Annualize(envelope.TargetAmount, envelope.Frequency)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), PlanResponse{
				Error: &s,
			})
			return
		}

		perPay, err := calc.RequiredContribution(annual, settings.PayFrequency)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), PlanResponse{
				Error: &s,
			})
			return
		}

		lines = append(lines, PlanLine{
			EnvelopeID:   envelope.ID,
			Name:         envelope.Name,
			Priority:     envelope.Priority,
			TargetAmount: envelope.TargetAmount,
			Frequency:    envelope.Frequency,
			AnnualAmount: annual,
			PerPayAmount: perPay,
		})

		allocated = allocated.Add(perPay)
	}

	c.JSON(http.StatusOK, PlanResponse{
		Data: &Plan{
			PayFrequency:    settings.PayFrequency,
			Lines:           lines,
			PerPayIncome:    settings.PerPayIncome,
			PerPayAllocated: allocated,
			PerPaySurplus:   settings.PerPayIncome.Sub(allocated),
		},
	})
}

// @Summary		Get envelope health
// @Description	Returns the health of every active envelope: expected balance, gap to the plan and due date progress
// @Tags			Plan
// @Produce		json
// @Success		200	{object}	PlanHealthResponse
// @Failure		500	{object}	PlanHealthResponse
// @Router			/v1/plan/health [get]
func GetPlanHealth(c *gin.Context) {
	envelopes, err := models.ActiveEnvelopes()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PlanHealthResponse{
			Error: &s,
		})
		return
	}

	today := time.Now()

	data := make([]EnvelopeHealth, 0, len(envelopes))
	for _, envelope := range envelopes {
		data = append(data, calc.HealthOf(envelope.State(), today))
	}

	c.JSON(http.StatusOK, PlanHealthResponse{Data: data})
}
