package v1_test

import (
	"net/http"
	"time"

	"github.com/my-budget-mate/backend/internal/calc"
	v1 "github.com/my-budget-mate/backend/internal/controllers/v1"
	"github.com/my-budget-mate/backend/internal/types"
	"github.com/my-budget-mate/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestPlanOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/plan", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestPlanEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/plan", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.PlanResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), types.FrequencyFortnightly, response.Data.PayFrequency)
	assert.Empty(suite.T(), response.Data.Lines)
	assert.True(suite.T(), response.Data.PerPayAllocated.IsZero())
}

func (suite *TestSuiteStandard) TestPlan() {
	// Income of 2400 per fortnight
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", map[string]any{
		"perPayIncome": "2400",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		Name:         "Power",
		TargetAmount: decimal.NewFromInt(150),
		Frequency:    types.FrequencyMonthly,
	})

	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		Name:         "Groceries",
		TargetAmount: decimal.NewFromInt(260),
		Frequency:    types.FrequencyFortnightly,
	})

	// Archived envelopes do not take part in the plan
	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		Name:         "Old",
		TargetAmount: decimal.NewFromInt(1000),
		Frequency:    types.FrequencyMonthly,
		Archived:     true,
	})

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/plan", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.PlanResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data.Lines, 2)

	// Sorted by name
	groceries := response.Data.Lines[0]
	power := response.Data.Lines[1]

	assert.Equal(suite.T(), "Groceries", groceries.Name)
	assert.True(suite.T(), groceries.AnnualAmount.Equal(decimal.NewFromInt(6760)))
	assert.True(suite.T(), groceries.PerPayAmount.Equal(decimal.NewFromInt(260)))

	assert.Equal(suite.T(), "Power", power.Name)
	assert.True(suite.T(), power.AnnualAmount.Equal(decimal.NewFromInt(1800)))
	assert.Equal(suite.T(), "69.23", power.PerPayAmount.StringFixed(2))

	assert.Equal(suite.T(), "329.23", response.Data.PerPayAllocated.StringFixed(2))
	assert.Equal(suite.T(), "2070.77", response.Data.PerPaySurplus.StringFixed(2))
}

func (suite *TestSuiteStandard) TestPlanHealth() {
	due := time.Now().AddDate(0, 0, 3)

	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		Name:           "Power",
		TargetAmount:   decimal.NewFromInt(150),
		Frequency:      types.FrequencyMonthly,
		OpeningBalance: decimal.NewFromInt(100),
		Balance:        decimal.NewFromInt(120),
		DueDate:        &due,
		Priority:       types.PriorityEssential,
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/plan/health", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.PlanHealthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	health := response.Data[0]

	assert.Equal(suite.T(), "Power", health.Name)
	assert.Equal(suite.T(), types.PriorityEssential, health.Priority)

	// 100 opening + 69.23 one contribution
	assert.Equal(suite.T(), "169.23", health.ShouldHaveSaved.StringFixed(2))
	assert.Equal(suite.T(), "49.23", health.Gap.StringFixed(2))
	assert.Equal(suite.T(), calc.GapBehind, health.GapStatus)
	assert.Equal(suite.T(), calc.StatusUnder, health.Status)

	require.NotNil(suite.T(), health.DaysUntilDue)
	assert.Equal(suite.T(), 3, *health.DaysUntilDue)
	assert.Equal(suite.T(), "In 3 days", health.Due.Label)
}

func (suite *TestSuiteStandard) TestPlanDBClosed() {
	suite.CloseDB()

	for _, path := range []string{"/v1/plan", "/v1/plan/health"} {
		r := test.Request(suite.T(), http.MethodGet, "http://example.com"+path, nil)
		test.AssertHTTPStatus(suite.T(), http.StatusInternalServerError, &r)
	}
}
