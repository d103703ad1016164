package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/my-budget-mate/backend/internal/models"
	"github.com/shopspring/decimal"
)

// AccountEditable represents all user configurable parameters
type AccountEditable struct {
	Name      string          `json:"name" example:"Everyday" default:""`                                     // Name of the account
	Note      string          `json:"note" example:"The account our salaries are paid into" default:""`       // A note
	Balance   decimal.Decimal `json:"balance" example:"2735.17" default:"0"`                                  // Bank balance of the account
	CCHolding decimal.Decimal `json:"ccHolding" example:"450" default:"0"`                                    // Money set aside to cover credit card spending
	Archived  bool            `json:"archived" example:"true" default:"false"`                                // Is the account archived?
}

func (editable AccountEditable) model() models.Account {
	return models.Account{
		Name:      editable.Name,
		Note:      editable.Note,
		Balance:   editable.Balance,
		CCHolding: editable.CCHolding,
		Archived:  editable.Archived,
	}
}

type AccountLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                     // The account itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?account=af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"` // Transactions for this account
}

type Account struct {
	models.DefaultModel
	AccountEditable
	Links AccountLinks `json:"links"`
}

// newAccount returns the API v1 representation of the resource
func newAccount(c *gin.Context, model models.Account) Account {
	url := c.GetString(string(models.DBContextURL))

	return Account{
		DefaultModel: model.DefaultModel,
		AccountEditable: AccountEditable{
			Name:      model.Name,
			Note:      model.Note,
			Balance:   model.Balance,
			CCHolding: model.CCHolding,
			Archived:  model.Archived,
		},
		Links: AccountLinks{
			Self:         fmt.Sprintf("%s/v1/accounts/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?account=%s", url, model.ID),
		},
	}
}

type AccountListResponse struct {
	Data       []Account   `json:"data"`                                                          // List of accounts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type AccountCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []AccountResponse `json:"data"`                                                          // List of created accounts
}

func (a *AccountCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	a.Data = append(a.Data, AccountResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type AccountResponse struct {
	Data  *Account `json:"data"`                                                          // Data for the account
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type AccountQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // Fuzzy filter for the account name
	Note     string `form:"note" filterField:"false"`   // Fuzzy filter for the note
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Archived bool   `form:"archived"`                   // Is the account archived?
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first Account returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Accounts to return. Defaults to 50.
}

func (f AccountQueryFilter) model() models.Account {
	return models.Account{
		Archived: f.Archived,
	}
}
