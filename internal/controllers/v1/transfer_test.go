package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/my-budget-mate/backend/internal/controllers/v1"
	"github.com/my-budget-mate/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTransfer(t *testing.T, tr v1.TransferEditable, expectedStatus ...int) v1.TransferResponse {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.TransferEditable{tr}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/transfers", body)
	test.AssertHTTPStatus(t, expectedStatus[0], &r)

	var transfer v1.TransferCreateResponse
	test.DecodeResponse(t, &r, &transfer)

	if r.Code == http.StatusCreated {
		return transfer.Data[0]
	}

	return v1.TransferResponse{}
}

// Creating a transfer moves money between the envelope balances.
func (suite *TestSuiteStandard) TestTransfersCreate() {
	from := createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		Name:    "Groceries",
		Balance: decimal.NewFromInt(100),
	})
	to := createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		Name:    "Power",
		Balance: decimal.NewFromInt(25),
	})

	transfer := createTestTransfer(suite.T(), v1.TransferEditable{
		FromEnvelopeID: from.Data.ID,
		ToEnvelopeID:   to.Data.ID,
		Amount:         decimal.NewFromInt(40),
		Note:           "Covering the power bill",
	})

	assert.Equal(suite.T(), "Covering the power bill", transfer.Data.Note)

	r := test.Request(suite.T(), http.MethodGet, from.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var fromReloaded v1.EnvelopeResponse
	test.DecodeResponse(suite.T(), &r, &fromReloaded)
	assert.True(suite.T(), fromReloaded.Data.Balance.Equal(decimal.NewFromInt(60)))

	r = test.Request(suite.T(), http.MethodGet, to.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var toReloaded v1.EnvelopeResponse
	test.DecodeResponse(suite.T(), &r, &toReloaded)
	assert.True(suite.T(), toReloaded.Data.Balance.Equal(decimal.NewFromInt(65)))
}

func (suite *TestSuiteStandard) TestTransfersCreateFails() {
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{})
	other := createTestEnvelope(suite.T(), v1.EnvelopeEditable{})

	tests := []struct {
		name     string
		body     any
		status   int
		testFunc func(t *testing.T, tr v1.TransferCreateResponse)
	}{
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, tr v1.TransferCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *tr.Error)
			},
		},
		{
			"Zero amount",
			[]v1.TransferEditable{
				{
					FromEnvelopeID: envelope.Data.ID,
					ToEnvelopeID:   other.Data.ID,
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, tr v1.TransferCreateResponse) {
				assert.Equal(t, "the amount of a transfer must be positive", *tr.Data[0].Error)
			},
		},
		{
			"Same envelope",
			[]v1.TransferEditable{
				{
					FromEnvelopeID: envelope.Data.ID,
					ToEnvelopeID:   envelope.Data.ID,
					Amount:         decimal.NewFromInt(10),
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, tr v1.TransferCreateResponse) {
				assert.Equal(t, "a transfer needs two different envelopes", *tr.Data[0].Error)
			},
		},
		{
			"Non-existing envelope",
			[]v1.TransferEditable{
				{
					FromEnvelopeID: envelope.Data.ID,
					ToEnvelopeID:   uuid.New(),
					Amount:         decimal.NewFromInt(10),
				},
			},
			http.StatusNotFound,
			func(t *testing.T, tr v1.TransferCreateResponse) {
				assert.Equal(t, "there is no envelope matching your query", *tr.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transfers", tt.body)
			test.AssertHTTPStatus(t, tt.status, &r)

			var tr v1.TransferCreateResponse
			test.DecodeResponse(t, &r, &tr)

			if tt.testFunc != nil {
				tt.testFunc(t, tr)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransfersGetSingle() {
	from := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Balance: decimal.NewFromInt(100)})
	to := createTestEnvelope(suite.T(), v1.EnvelopeEditable{})

	transfer := createTestTransfer(suite.T(), v1.TransferEditable{
		FromEnvelopeID: from.Data.ID,
		ToEnvelopeID:   to.Data.ID,
		Amount:         decimal.NewFromInt(10),
	})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"GET Existing Transfer", transfer.Data.ID.String(), http.StatusOK},
		{"GET No Transfer with this ID", uuid.New().String(), http.StatusNotFound},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transfers/%s", tt.id), "")

			var response v1.TransferResponse
			test.DecodeResponse(t, &r, &response)
			test.AssertHTTPStatus(t, tt.status, &r)
		})
	}
}

func (suite *TestSuiteStandard) TestTransfersGetFilter() {
	from := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Balance: decimal.NewFromInt(100)})
	to := createTestEnvelope(suite.T(), v1.EnvelopeEditable{})
	third := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Balance: decimal.NewFromInt(50)})

	_ = createTestTransfer(suite.T(), v1.TransferEditable{
		FromEnvelopeID: from.Data.ID,
		ToEnvelopeID:   to.Data.ID,
		Amount:         decimal.NewFromInt(10),
		Note:           "Monthly top up",
	})

	_ = createTestTransfer(suite.T(), v1.TransferEditable{
		FromEnvelopeID: third.Data.ID,
		ToEnvelopeID:   to.Data.ID,
		Amount:         decimal.NewFromInt(5),
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"From envelope", fmt.Sprintf("fromEnvelope=%s", from.Data.ID), 1},
		{"To envelope", fmt.Sprintf("toEnvelope=%s", to.Data.ID), 2},
		{"Fuzzy note", "note=top", 1},
		{"Limit 1", "limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.TransferListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/transfers?%s", tt.query), "")
			test.AssertHTTPStatus(t, http.StatusOK, &r)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data))
		})
	}
}

func (suite *TestSuiteStandard) TestTransfersOptions() {
	from := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Balance: decimal.NewFromInt(100)})
	to := createTestEnvelope(suite.T(), v1.EnvelopeEditable{})

	transfer := createTestTransfer(suite.T(), v1.TransferEditable{
		FromEnvelopeID: from.Data.ID,
		ToEnvelopeID:   to.Data.ID,
		Amount:         decimal.NewFromInt(10),
	})

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/transfers", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, transfer.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

// Transfers are immutable, they can only be created and read.
func (suite *TestSuiteStandard) TestTransfersImmutable() {
	from := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Balance: decimal.NewFromInt(100)})
	to := createTestEnvelope(suite.T(), v1.EnvelopeEditable{})

	transfer := createTestTransfer(suite.T(), v1.TransferEditable{
		FromEnvelopeID: from.Data.ID,
		ToEnvelopeID:   to.Data.ID,
		Amount:         decimal.NewFromInt(10),
	})

	r := test.Request(suite.T(), http.MethodPatch, transfer.Data.Links.Self, map[string]any{"note": "Changed"})
	require.Equal(suite.T(), http.StatusMethodNotAllowed, r.Code)

	r = test.Request(suite.T(), http.MethodDelete, transfer.Data.Links.Self, nil)
	require.Equal(suite.T(), http.StatusMethodNotAllowed, r.Code)
}
