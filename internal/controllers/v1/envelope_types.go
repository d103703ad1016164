package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/my-budget-mate/backend/internal/calc"
	"github.com/my-budget-mate/backend/internal/models"
	"github.com/my-budget-mate/backend/internal/types"
	ez_uuid "github.com/my-budget-mate/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type EnvelopeEditable struct {
	Name           string          `json:"name" example:"Power" default:""`                                                    // Name of the envelope
	CategoryID     uuid.UUID       `json:"categoryId" example:"f81566d9-af4d-4f13-9830-c62c4b5e4c7e"`                          // ID of the category the envelope belongs to
	Note           string          `json:"note" example:"Quarterly bill, usually higher in winter" default:""`                 // Note about the envelope
	TargetAmount   decimal.Decimal `json:"targetAmount" example:"150" minimum:"0" maximum:"999999999999.99999999" default:"0"` // How much the envelope needs per frequency
	Frequency      types.Frequency `json:"frequency" example:"monthly" default:"none"`                                         // How often the target amount is due
	OpeningBalance decimal.Decimal `json:"openingBalance" example:"0" default:"0"`                                             // Balance at the start of the current pay cycle
	Balance        decimal.Decimal `json:"balance" example:"120" default:"0"`                                                  // Current balance
	DueDate        *time.Time      `json:"dueDate" example:"2026-09-01T00:00:00.000000Z"`                                      // When the next payment is due
	Priority       types.Priority  `json:"priority" example:"essential" default:"important"`                                   // How important the envelope is. Reduction scenarios never touch essential envelopes.
	Archived       bool            `json:"archived" example:"true" default:"false"`                                            // If the envelope is still in use or not
}

// model returns the database resource for the API representation of the editable fields
func (editable EnvelopeEditable) model() models.Envelope {
	return models.Envelope{
		Name:           editable.Name,
		CategoryID:     editable.CategoryID,
		Note:           editable.Note,
		TargetAmount:   editable.TargetAmount,
		Frequency:      editable.Frequency,
		OpeningBalance: editable.OpeningBalance,
		Balance:        editable.Balance,
		DueDate:        editable.DueDate,
		Priority:       editable.Priority,
		Archived:       editable.Archived,
	}
}

type EnvelopeLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/envelopes/438cc6c0-9baf-49fd-a75a-d76bd5cab19c"`      // The envelope itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/c1a96ae4-80e3-4827-8ed0-c7656f224fee"` // The category the envelope belongs to
}

type Envelope struct {
	models.DefaultModel
	EnvelopeEditable
	PerPayAmount decimal.Decimal `json:"perPayAmount" example:"69.23"` // Contribution needed per pay cycle, derived from the target
	AnnualAmount decimal.Decimal `json:"annualAmount" example:"1800"`  // Target amount per year, derived from the target
	Links        EnvelopeLinks   `json:"links"`
}

// newEnvelope returns the API v1 representation of the resource
func newEnvelope(c *gin.Context, model models.Envelope) Envelope {
	url := c.GetString(string(models.DBContextURL))

	// The envelope was validated on write, an unknown frequency cannot
	// be stored
	annual, _ := calc.Annualize(model.TargetAmount, model.Frequency)

	return Envelope{
		DefaultModel: model.DefaultModel,
		EnvelopeEditable: EnvelopeEditable{
			Name:           model.Name,
			CategoryID:     model.CategoryID,
			Note:           model.Note,
			TargetAmount:   model.TargetAmount,
			Frequency:      model.Frequency,
			OpeningBalance: model.OpeningBalance,
			Balance:        model.Balance,
			DueDate:        model.DueDate,
			Priority:       model.Priority,
			Archived:       model.Archived,
		},
		PerPayAmount: model.PerPayAmount,
		AnnualAmount: annual,
		Links: EnvelopeLinks{
			Self:     fmt.Sprintf("%s/v1/envelopes/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type EnvelopeListResponse struct {
	Data       []Envelope  `json:"data"`                                                          // List of resources
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type EnvelopeCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []EnvelopeResponse `json:"data"`                                                          // List of created resources
}

func (t *EnvelopeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, EnvelopeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type EnvelopeResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Envelope `json:"data"`                                                          // The resource
}

type EnvelopeQueryFilter struct {
	Name       string          `form:"name" filterField:"false"`   // By name
	Note       string          `form:"note" filterField:"false"`   // By the note
	Search     string          `form:"search" filterField:"false"` // By string in name or note
	CategoryID ez_uuid.UUID    `form:"category"`                   // By the ID of the category
	Frequency  types.Frequency `form:"frequency"`                  // By the funding frequency
	Priority   types.Priority  `form:"priority"`                   // By the priority
	Archived   bool            `form:"archived"`                   // Is the envelope archived?
	Offset     uint            `form:"offset" filterField:"false"` // The offset of the first envelope returned. Defaults to 0.
	Limit      int             `form:"limit" filterField:"false"`  // Maximum number of envelopes to return. Defaults to 50.
}

func (f EnvelopeQueryFilter) model() models.Envelope {
	return models.Envelope{
		CategoryID: f.CategoryID.UUID,
		Frequency:  f.Frequency,
		Priority:   f.Priority,
		Archived:   f.Archived,
	}
}
