package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	v1 "github.com/my-budget-mate/backend/internal/controllers/v1"
	"github.com/my-budget-mate/backend/internal/types"
	"github.com/my-budget-mate/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEnvelope(t *testing.T, e v1.EnvelopeEditable, expectedStatus ...int) v1.EnvelopeResponse {
	if e.CategoryID == uuid.Nil {
		e.CategoryID = createTestCategory(t, v1.CategoryEditable{}).Data.ID
	}

	if e.Name == "" {
		e.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.EnvelopeEditable{e}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/envelopes", body)
	test.AssertHTTPStatus(t, expectedStatus[0], &r)

	var envelope v1.EnvelopeCreateResponse
	test.DecodeResponse(t, &r, &envelope)

	if r.Code == http.StatusCreated {
		return envelope.Data[0]
	}

	return v1.EnvelopeResponse{}
}

// The per-pay contribution and the annual amount are computed on the
// server, clients cannot set them.
func (suite *TestSuiteStandard) TestEnvelopesComputedAmounts() {
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		Name:         "Power",
		TargetAmount: decimal.NewFromInt(150),
		Frequency:    types.FrequencyMonthly,
	})

	// The default pay frequency is fortnightly: 150 * 12 / 26
	assert.Equal(suite.T(), "69.23", envelope.Data.PerPayAmount.StringFixed(2))
	assert.True(suite.T(), envelope.Data.AnnualAmount.Equal(decimal.NewFromInt(1800)), "annual amount is %s", envelope.Data.AnnualAmount)
}

// Changing the target amount recomputes the per-pay contribution.
func (suite *TestSuiteStandard) TestEnvelopesUpdateRecomputesPerPay() {
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		TargetAmount: decimal.NewFromInt(150),
		Frequency:    types.FrequencyMonthly,
	})

	r := test.Request(suite.T(), http.MethodPatch, envelope.Data.Links.Self, map[string]any{
		"targetAmount": "260",
		"frequency":    "fortnightly",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var updated v1.EnvelopeResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	// 260 fortnightly equals the pay frequency, the contribution is the
	// target itself
	assert.True(suite.T(), updated.Data.PerPayAmount.Equal(decimal.NewFromInt(260)), "per-pay amount is %s", updated.Data.PerPayAmount)
	assert.True(suite.T(), updated.Data.AnnualAmount.Equal(decimal.NewFromInt(6760)), "annual amount is %s", updated.Data.AnnualAmount)
}

func (suite *TestSuiteStandard) TestEnvelopesCreateFails() {
	tests := []struct {
		name     string
		body     any
		status   int
		testFunc func(t *testing.T, e v1.EnvelopeCreateResponse)
	}{
		{
			"Broken Body", `[{ "note": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, e v1.EnvelopeCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field EnvelopeEditable.note of type string", *e.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, e v1.EnvelopeCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *e.Error)
			},
		},
		{
			"No Category",
			`[{ "note": "Some text" }]`,
			http.StatusNotFound,
			func(t *testing.T, e v1.EnvelopeCreateResponse) {
				assert.Equal(t, "there is no category matching your query", *e.Data[0].Error)
			},
		},
		{
			"Non-existing Category",
			`[{ "categoryId": "ea85ad1a-3679-4ced-b83b-89566c12ece9" }]`,
			http.StatusNotFound,
			func(t *testing.T, e v1.EnvelopeCreateResponse) {
				assert.Equal(t, "there is no category matching your query", *e.Data[0].Error)
			},
		},
		{
			"Invalid frequency",
			`[{ "frequency": "biweekly" }]`,
			http.StatusBadRequest,
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/envelopes", tt.body)
			test.AssertHTTPStatus(t, tt.status, &r)

			var e v1.EnvelopeCreateResponse
			test.DecodeResponse(t, &r, &e)

			if tt.testFunc != nil {
				tt.testFunc(t, e)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestEnvelopesNegativeTarget() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/envelopes", []v1.EnvelopeEditable{
		{
			Name:         "Negative target",
			CategoryID:   category.Data.ID,
			TargetAmount: decimal.NewFromInt(-10),
		},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	var response v1.EnvelopeCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "the target amount of an envelope must not be negative", *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestEnvelopesGetSingle() {
	e := createTestEnvelope(suite.T(), v1.EnvelopeEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Envelope", e.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No Envelope with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/envelopes/%s", tt.id), "")

			var envelope v1.EnvelopeResponse
			test.DecodeResponse(t, &r, &envelope)
			test.AssertHTTPStatus(t, tt.status, &r)
		})
	}
}

func (suite *TestSuiteStandard) TestEnvelopesGetFilter() {
	c1 := createTestCategory(suite.T(), v1.CategoryEditable{})
	c2 := createTestCategory(suite.T(), v1.CategoryEditable{})

	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		Name:         "Power",
		Note:         "Monthly bill",
		CategoryID:   c1.Data.ID,
		Frequency:    types.FrequencyMonthly,
		Priority:     types.PriorityEssential,
		TargetAmount: decimal.NewFromInt(150),
		DueDate:      &due,
	})

	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		Name:       "Streaming",
		Note:       "Can be cut",
		CategoryID: c2.Data.ID,
		Frequency:  types.FrequencyMonthly,
		Priority:   types.PriorityDiscretionary,
	})

	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		Name:       "Old thing",
		CategoryID: c2.Data.ID,
		Archived:   true,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Category 1", fmt.Sprintf("category=%s", c1.Data.ID), 1},
		{"Category Not Existing", "category=c9e4ee7a-e702-4f92-b168-11a95b22c7aa", 0},
		{"Frequency monthly", "frequency=monthly", 2},
		{"Priority essential", "priority=essential", 1},
		{"Fuzzy name", "name=o", 2},
		{"Fuzzy note", "note=bill", 1},
		{"Search", "search=cut", 1},
		{"Not archived", "archived=false", 2},
		{"Archived", "archived=true", 1},
		{"Limit 1", "limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.EnvelopeListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/envelopes?%s", tt.query), "")
			test.AssertHTTPStatus(t, http.StatusOK, &r)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

func (suite *TestSuiteStandard) TestEnvelopesUpdateFails() {
	tests := []struct {
		name   string
		id     string
		body   any
		status int // expected response status
	}{
		{"Invalid type", "", `{"name": 2}`, http.StatusBadRequest},
		{"Broken JSON", "", `{ "name": 2" }`, http.StatusBadRequest},
		{"Non-existing Envelope", uuid.New().String(), `{"name": "Not found"}`, http.StatusNotFound},
		{"Set Category to uuid.Nil", "", v1.EnvelopeEditable{}, http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{})
				tt.id = envelope.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodPatch, fmt.Sprintf("http://example.com/v1/envelopes/%s", tt.id), tt.body)
			test.AssertHTTPStatus(t, tt.status, &recorder)
		})
	}
}

func (suite *TestSuiteStandard) TestEnvelopesDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing Envelope", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				e := createTestEnvelope(t, v1.EnvelopeEditable{})
				tt.id = e.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/envelopes/%s", tt.id), "")
			test.AssertHTTPStatus(t, tt.status, &recorder)
		})
	}
}

// TestEnvelopesGetSorted verifies that envelopes are sorted by name.
func (suite *TestSuiteStandard) TestEnvelopesGetSorted() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{})

	e1 := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Alphabetically first", CategoryID: category.Data.ID})
	e2 := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Second in creation, third in list", CategoryID: category.Data.ID})
	e3 := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "First is alphabetically second", CategoryID: category.Data.ID})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/envelopes", "")
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var envelopes v1.EnvelopeListResponse
	test.DecodeResponse(suite.T(), &r, &envelopes)

	require.Len(suite.T(), envelopes.Data, 3, "Envelope list has wrong length")

	assert.Equal(suite.T(), e1.Data.Name, envelopes.Data[0].Name)
	assert.Equal(suite.T(), e3.Data.Name, envelopes.Data[1].Name)
	assert.Equal(suite.T(), e2.Data.Name, envelopes.Data[2].Name)
}
