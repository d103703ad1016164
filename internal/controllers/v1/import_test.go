package v1_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	v1 "github.com/my-budget-mate/backend/internal/controllers/v1"
	"github.com/my-budget-mate/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStatement = strings.Join([]string{
	"Date,Payee,Memo,Outflow,Inflow",
	"12/08/2026,Superstore Newmarket,Weekly groceries,114.37,",
	"14/08/2026,Employer Ltd,Salary,,2400.00",
}, "\n")

func (suite *TestSuiteStandard) TestImportOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/import", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)
	assert.Equal(suite.T(), "OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestImport() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})

	body, headers := test.MultipartFile(suite.T(), "statement.csv", []byte(testStatement))

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/import?accountId=%s", account.Data.ID), body, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), 2, response.Data.Created)
	assert.Equal(suite.T(), 0, response.Data.Skipped)
	assert.Equal(suite.T(), 0, response.Data.Matched)
	require.Len(suite.T(), response.Data.Transactions, 2)

	assert.Equal(suite.T(), "Superstore Newmarket", response.Data.Transactions[0].Payee)
	assert.True(suite.T(), response.Data.Transactions[0].Amount.Equal(decimal.RequireFromString("-114.37")))
}

// Importing the same statement twice skips every line.
func (suite *TestSuiteStandard) TestImportDeduplicates() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})

	for i, expectedCreated := range []int{2, 0} {
		body, headers := test.MultipartFile(suite.T(), "statement.csv", []byte(testStatement))

		r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/import?accountId=%s", account.Data.ID), body, headers)
		test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

		var response v1.ImportResponse
		test.DecodeResponse(suite.T(), &r, &response)

		assert.Equal(suite.T(), expectedCreated, response.Data.Created, "run %d", i)
		assert.Equal(suite.T(), 2-expectedCreated, response.Data.Skipped, "run %d", i)
	}
}

// Match rules assign envelopes to imported lines and the envelope
// balances are adjusted.
func (suite *TestSuiteStandard) TestImportMatchRules() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		Name:    "Groceries",
		Balance: decimal.NewFromInt(200),
	})

	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{
		Priority:   1,
		Match:      "Superstore*",
		EnvelopeID: envelope.Data.ID,
	})

	body, headers := test.MultipartFile(suite.T(), "statement.csv", []byte(testStatement))

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/import?accountId=%s", account.Data.ID), body, headers)
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), 2, response.Data.Created)
	assert.Equal(suite.T(), 1, response.Data.Matched)

	// The grocery line was assigned to the envelope
	require.NotNil(suite.T(), response.Data.Transactions[0].EnvelopeID)
	assert.Equal(suite.T(), envelope.Data.ID, *response.Data.Transactions[0].EnvelopeID)
	assert.Nil(suite.T(), response.Data.Transactions[1].EnvelopeID)

	// 200 - 114.37
	re := test.Request(suite.T(), http.MethodGet, envelope.Data.Links.Self, nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &re)

	var reloaded v1.EnvelopeResponse
	test.DecodeResponse(suite.T(), &re, &reloaded)
	assert.Equal(suite.T(), "85.63", reloaded.Data.Balance.StringFixed(2))
}

func (suite *TestSuiteStandard) TestImportFails() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})

	tests := []struct {
		name     string
		path     string
		filename string
		content  string
		status   int
		errMsg   string
	}{
		{
			"No account ID",
			"http://example.com/v1/import",
			"statement.csv",
			testStatement,
			http.StatusBadRequest,
			"accountId",
		},
		{
			"Non-existing account",
			"http://example.com/v1/import?accountId=d2b7c324-1dd3-44b5-bdd6-c32a32ce0522",
			"statement.csv",
			testStatement,
			http.StatusNotFound,
			"there is no account matching your query",
		},
		{
			"Wrong file suffix",
			fmt.Sprintf("http://example.com/v1/import?accountId=%s", account.Data.ID),
			"statement.pdf",
			testStatement,
			http.StatusBadRequest,
			"this endpoint only supports csv files",
		},
		{
			"Broken CSV",
			fmt.Sprintf("http://example.com/v1/import?accountId=%s", account.Data.ID),
			"statement.csv",
			"Date,Payee,Memo,Outflow,Inflow\n12/08/2026,Payee,Memo,10.00,20.00\n",
			http.StatusBadRequest,
			"error in line",
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body, headers := test.MultipartFile(t, tt.filename, []byte(tt.content))

			r := test.Request(t, http.MethodPost, tt.path, body, headers)
			test.AssertHTTPStatus(t, tt.status, &r)

			var response v1.ImportResponse
			test.DecodeResponse(t, &r, &response)

			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.errMsg)
		})
	}
}

func (suite *TestSuiteStandard) TestImportNoFile() {
	account := createTestAccount(suite.T(), v1.AccountEditable{})

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/import?accountId=%s", account.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "you must send a file to this endpoint", *response.Error)
}
