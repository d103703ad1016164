package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/my-budget-mate/backend/internal/calc"
	"github.com/my-budget-mate/backend/internal/httputil"
	"github.com/my-budget-mate/backend/internal/models"
)

// RegisterScenarioRoutes registers the routes for reduction scenarios
// with the RouterGroup that is passed.
func RegisterScenarioRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsScenarios)
	r.GET("", GetScenarios)
	r.POST("", EvaluateScenario)
}

type ScenarioListResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []calc.ScenarioResult `json:"data"`                                                          // The catalog scenarios applied to the current envelopes
}

type ScenarioResponse struct {
	Error *string              `json:"error" example:"the reduction must be between 0 and 1"` // The error, if any occurred
	Data  *calc.ScenarioResult `json:"data"`                                                  // The evaluated scenario
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Scenarios
// @Success		204
// @Router			/v1/scenarios [options]
func OptionsScenarios(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// currentHealths computes the health records the scenarios are
// evaluated against.
func currentHealths() ([]calc.Health, models.PaySettings, error) {
	settings, err := models.GetPaySettings()
	if err != nil {
		return nil, models.PaySettings{}, err
	}

	envelopes, err := models.ActiveEnvelopes()
	if err != nil {
		return nil, models.PaySettings{}, err
	}

	today := time.Now()

	healths := make([]calc.Health, 0, len(envelopes))
	for _, envelope := range envelopes {
		healths = append(healths, calc.HealthOf(envelope.State(), today))
	}

	return healths, settings, nil
}

// @Summary		Get scenarios
// @Description	Returns the scenario catalog, each scenario applied to the current envelopes
// @Tags			Scenarios
// @Produce		json
// @Success		200	{object}	ScenarioListResponse
// @Failure		500	{object}	ScenarioListResponse
// @Router			/v1/scenarios [get]
func GetScenarios(c *gin.Context) {
	healths, settings, err := currentHealths()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ScenarioListResponse{
			Error: &s,
		})
		return
	}

	scenarios := calc.DefaultScenarios()

	data := make([]calc.ScenarioResult, 0, len(scenarios))
	for _, scenario := range scenarios {
		result, err := calc.Apply(scenario, healths, settings.PayFrequency)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ScenarioListResponse{
				Error: &s,
			})
			return
		}

		data = append(data, result)
	}

	c.JSON(http.StatusOK, ScenarioListResponse{Data: data})
}

// @Summary		Evaluate scenario
// @Description	Evaluates a custom reduction scenario against the current envelopes. Essential envelopes are never reduced.
// @Tags			Scenarios
// @Accept			json
// @Produce		json
// @Success		200			{object}	ScenarioResponse
// @Failure		400			{object}	ScenarioResponse
// @Failure		500			{object}	ScenarioResponse
// @Param			scenario	body		calc.Scenario	true	"Scenario"
// @Router			/v1/scenarios [post]
func EvaluateScenario(c *gin.Context) {
	var scenario calc.Scenario
	err := httputil.BindData(c, &scenario)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ScenarioResponse{
			Error: &s,
		})
		return
	}

	healths, settings, err := currentHealths()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ScenarioResponse{
			Error: &s,
		})
		return
	}

	result, err := calc.Apply(scenario, healths, settings.PayFrequency)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ScenarioResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ScenarioResponse{Data: &result})
}
