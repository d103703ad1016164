package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/my-budget-mate/backend/internal/models"
	ez_uuid "github.com/my-budget-mate/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	Date       time.Time       `json:"date" example:"2026-08-12T00:00:00Z"`                                           // Date of the transaction
	Amount     decimal.Decimal `json:"amount" example:"-14.37" default:"0"`                                           // The amount, negative for money leaving the account
	Payee      string          `json:"payee" example:"Superstore Newmarket" default:""`                               // The party money was paid to or received from
	Note       string          `json:"note" example:"Weekly groceries" default:""`                                    // A note
	AccountID  uuid.UUID       `json:"accountId" example:"af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`                      // ID of the account the transaction belongs to
	EnvelopeID *uuid.UUID      `json:"envelopeId" example:"2b1d8df5-e611-4e2b-9e83-1ecf59c82aaf" default:"null"`      // ID of the envelope the transaction is assigned to, if any
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:       editable.Date,
		Amount:     editable.Amount,
		Payee:      editable.Payee,
		Note:       editable.Note,
		AccountID:  editable.AccountID,
		EnvelopeID: editable.EnvelopeID,
	}
}

type TransactionLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`   // The transaction itself
	Account string `json:"account" example:"https://example.com/api/v1/accounts/af892e10-7e0a-4fb8-b1bc-4b6d88401ed2"`    // The account of the transaction
}

type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:       model.Date,
			Amount:     model.Amount,
			Payee:      model.Payee,
			Note:       model.Note,
			AccountID:  model.AccountID,
			EnvelopeID: model.EnvelopeID,
		},
		Links: TransactionLinks{
			Self:    fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Account: fmt.Sprintf("%s/v1/accounts/%s", url, model.AccountID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Transaction `json:"data"`                                                          // The transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	Payee      string       `form:"payee" filterField:"false"`     // Fuzzy filter for the payee
	Note       string       `form:"note" filterField:"false"`      // Fuzzy filter for the note
	Search     string       `form:"search" filterField:"false"`    // By string in payee or note
	AccountID  ez_uuid.UUID `form:"account"`                       // By the ID of the account
	EnvelopeID ez_uuid.UUID `form:"envelope"`                      // By the ID of the envelope
	FromDate   time.Time    `form:"fromDate" filterField:"false"`  // Transactions on this date and later
	UntilDate  time.Time    `form:"untilDate" filterField:"false"` // Transactions on this date and earlier
	Offset     uint         `form:"offset" filterField:"false"`    // The offset of the first Transaction returned. Defaults to 0.
	Limit      int          `form:"limit" filterField:"false"`     // Maximum number of Transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	var envelopeID *uuid.UUID
	if f.EnvelopeID != ez_uuid.Nil {
		envelopeID = &f.EnvelopeID.UUID
	}

	return models.Transaction{
		AccountID:  f.AccountID.UUID,
		EnvelopeID: envelopeID,
	}
}
