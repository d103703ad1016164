package v1_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/my-budget-mate/backend/internal/controllers/v1"
	"github.com/my-budget-mate/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func createTestAccount(t *testing.T, a v1.AccountEditable, expectedStatus ...int) v1.AccountResponse {
	if a.Name == "" {
		a.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.AccountEditable{a}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/accounts", body)
	test.AssertHTTPStatus(t, expectedStatus[0], &r)

	var account v1.AccountCreateResponse
	test.DecodeResponse(t, &r, &account)

	if r.Code == http.StatusCreated {
		return account.Data[0]
	}

	return v1.AccountResponse{}
}

func (suite *TestSuiteStandard) TestAccountsCreate() {
	account := createTestAccount(suite.T(), v1.AccountEditable{
		Name:      "Everyday",
		Balance:   decimal.RequireFromString("2735.17"),
		CCHolding: decimal.NewFromInt(450),
	})

	assert.Equal(suite.T(), "Everyday", account.Data.Name)
	assert.True(suite.T(), account.Data.Balance.Equal(decimal.RequireFromString("2735.17")))
	assert.True(suite.T(), account.Data.CCHolding.Equal(decimal.NewFromInt(450)))
	assert.Contains(suite.T(), account.Data.Links.Transactions, fmt.Sprintf("/v1/transactions?account=%s", account.Data.ID))
}

func (suite *TestSuiteStandard) TestAccountsCreateFails() {
	a := createTestAccount(suite.T(), v1.AccountEditable{Name: "Unique Account Name"})

	tests := []struct {
		name     string
		body     any
		status   int
		testFunc func(t *testing.T, a v1.AccountCreateResponse)
	}{
		{
			"Broken Body", `[{ "note": 2 }]`, http.StatusBadRequest,
			func(t *testing.T, a v1.AccountCreateResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field AccountEditable.note of type string", *a.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, a v1.AccountCreateResponse) {
				assert.Equal(t, "the request body must not be empty", *a.Error)
			},
		},
		{
			"Duplicate name",
			[]v1.AccountEditable{
				{
					Name: a.Data.Name,
				},
			},
			http.StatusBadRequest,
			func(t *testing.T, a v1.AccountCreateResponse) {
				assert.Equal(t, "the account name must be unique", *a.Data[0].Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/accounts", tt.body)
			test.AssertHTTPStatus(t, tt.status, &r)

			var a v1.AccountCreateResponse
			test.DecodeResponse(t, &r, &a)

			if tt.testFunc != nil {
				tt.testFunc(t, a)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsGetSingle() {
	a := createTestAccount(suite.T(), v1.AccountEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Account", a.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No Account with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/accounts/%s", tt.id), "")

			var account v1.AccountResponse
			test.DecodeResponse(t, &r, &account)
			test.AssertHTTPStatus(t, tt.status, &r)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsUpdate() {
	account := createTestAccount(suite.T(), v1.AccountEditable{Name: "Original name"})

	r := test.Request(suite.T(), http.MethodPatch, account.Data.Links.Self, map[string]any{
		"name":      "Updated",
		"ccHolding": "300",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var updated v1.AccountResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), "Updated", updated.Data.Name)
	assert.True(suite.T(), updated.Data.CCHolding.Equal(decimal.NewFromInt(300)))
}

func (suite *TestSuiteStandard) TestAccountsDelete() {
	tests := []struct {
		name   string
		id     string
		status int // expected response status
	}{
		{"Success", "", http.StatusNoContent},
		{"Non-existing Account", uuid.New().String(), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var recorder httptest.ResponseRecorder

			if tt.id == "" {
				a := createTestAccount(t, v1.AccountEditable{})
				tt.id = a.Data.ID.String()
			}

			recorder = test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/accounts/%s", tt.id), "")
			test.AssertHTTPStatus(t, tt.status, &recorder)
		})
	}
}

func (suite *TestSuiteStandard) TestAccountsGetFilter() {
	_ = createTestAccount(suite.T(), v1.AccountEditable{Name: "Everyday", Note: "Salaries are paid here"})
	_ = createTestAccount(suite.T(), v1.AccountEditable{Name: "Savings", Note: "Rainy day money"})
	_ = createTestAccount(suite.T(), v1.AccountEditable{Name: "Closed", Archived: true})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Fuzzy name", "name=a", 2},
		{"Fuzzy note", "note=money", 1},
		{"Search", "search=salaries", 1},
		{"Not archived", "archived=false", 2},
		{"Archived", "archived=true", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.AccountListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("/v1/accounts?%s", tt.query), "")
			test.AssertHTTPStatus(t, http.StatusOK, &r)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data))
		})
	}
}
