package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/my-budget-mate/backend/internal/controllers/v1"
	"github.com/my-budget-mate/backend/internal/types"
	"github.com/my-budget-mate/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestScenariosOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/scenarios", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}

// The catalog scenarios are applied to the current envelopes.
func (suite *TestSuiteStandard) TestScenariosCatalog() {
	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		Name:         "Streaming",
		TargetAmount: decimal.NewFromInt(30),
		Frequency:    types.FrequencyFortnightly,
		Priority:     types.PriorityDiscretionary,
	})

	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		Name:         "Rent",
		TargetAmount: decimal.NewFromInt(800),
		Frequency:    types.FrequencyFortnightly,
		Priority:     types.PriorityEssential,
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/scenarios", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.ScenarioListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 3)

	// "Trim discretionary by 10%" touches only the streaming envelope
	trim := response.Data[0]
	require.Len(suite.T(), trim.ImpactedEnvelopes, 1)
	assert.Equal(suite.T(), "Streaming", trim.ImpactedEnvelopes[0].Name)
	assert.Equal(suite.T(), "27.00", trim.ImpactedEnvelopes[0].NewPerPay.StringFixed(2))
	assert.Equal(suite.T(), "3.00", trim.SavingsPerPay.StringFixed(2))

	// The essential envelope is never reduced
	for _, result := range response.Data {
		for _, impacted := range result.ImpactedEnvelopes {
			assert.NotEqual(suite.T(), "Rent", impacted.Name)
		}
	}
}

func (suite *TestSuiteStandard) TestScenariosEvaluate() {
	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		Name:         "Streaming",
		TargetAmount: decimal.NewFromInt(30),
		Frequency:    types.FrequencyFortnightly,
		Priority:     types.PriorityDiscretionary,
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/scenarios", map[string]any{
		"name":       "Cut streaming in half",
		"reduction":  "0.5",
		"priorities": []string{"discretionary"},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.ScenarioResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	require.Len(suite.T(), response.Data.ImpactedEnvelopes, 1)
	assert.Equal(suite.T(), "15.00", response.Data.ImpactedEnvelopes[0].NewPerPay.StringFixed(2))
	assert.Equal(suite.T(), "15.00", response.Data.SavingsPerPay.StringFixed(2))

	// Fortnightly pay: 26 cycles per year
	assert.Equal(suite.T(), "390.00", response.Data.TotalSavingsOverPeriod.StringFixed(2))
}

func (suite *TestSuiteStandard) TestScenariosEvaluateFails() {
	tests := []struct {
		name string
		body any
	}{
		{"No body", ""},
		{"Reduction above one", map[string]any{"reduction": "1.5"}},
		{"Negative reduction", map[string]any{"reduction": "-0.1"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/scenarios", tt.body)
			test.AssertHTTPStatus(t, http.StatusBadRequest, &r)
		})
	}
}
