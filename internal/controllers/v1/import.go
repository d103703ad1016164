package v1

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/my-budget-mate/backend/internal/httputil"
	"github.com/my-budget-mate/backend/internal/importer"
	"github.com/my-budget-mate/backend/internal/importer/parser/bankcsv"
	"github.com/my-budget-mate/backend/internal/models"
	ez_uuid "github.com/my-budget-mate/backend/internal/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

type ImportQuery struct {
	AccountID ez_uuid.UUID `form:"accountId" binding:"required"` // ID of the account to import the statement for
}

// ImportResult summarizes one statement import
type ImportResult struct {
	Transactions []Transaction `json:"transactions"`            // The transactions that were created
	Created      int           `json:"created" example:"17"`    // Number of statement lines imported
	Skipped      int           `json:"skipped" example:"3"`     // Number of lines skipped because they were imported before
	Matched      int           `json:"matched" example:"12"`    // Number of imported lines a match rule assigned an envelope to
}

type ImportResponse struct {
	Error *string       `json:"error" example:"the accountId parameter must be set"` // The error, if any occurred
	Data  *ImportResult `json:"data"`                                                // The import summary
}

// RegisterImportRoutes registers the routes for imports.
func RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", ImportStatement)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs.
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// getUploadedFile returns the form file and handles potential errors.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}

// match assigns an envelope to a statement line via the match rules.
// Rules are passed in priority order, the first matching glob wins.
func match(preview *importer.TransactionPreview, rules []models.MatchRule) {
	for _, rule := range rules {
		if glob.Glob(rule.Match, preview.Transaction.Payee) {
			envelopeID := rule.EnvelopeID
			preview.Transaction.EnvelopeID = &envelopeID
			preview.MatchRuleID = rule.ID
			return
		}
	}
}

// @Summary		Import bank statement
// @Description	Imports a bank statement CSV for an account. Lines already imported are skipped, match rules assign envelopes and the balances of assigned envelopes are adjusted.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201			{object}	ImportResponse
// @Failure		400			{object}	ImportResponse
// @Failure		404			{object}	ImportResponse
// @Failure		500			{object}	ImportResponse
// @Param			file		formData	file		true	"File to import"
// @Param			accountId	query		ImportQuery	false	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/import [post]
func ImportStatement(c *gin.Context) {
	var query ImportQuery
	err := c.BindQuery(&query)
	if err != nil {
		s := fmt.Errorf("accountId: %w", err).Error()
		c.JSON(http.StatusBadRequest, ImportResponse{
			Error: &s,
		})
		return
	}

	if query.AccountID == ez_uuid.Nil {
		s := errAccountIDParameter.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{
			Error: &s,
		})
		return
	}

	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &s,
		})
		return
	}

	// Verify that the account exists
	var account models.Account
	err = models.DB.First(&account, query.AccountID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &s,
		})
		return
	}

	previews, err := bankcsv.Parse(f, account)
	if err != nil {
		// bankcsv.Parse returns a usable error already, no mapping necessary
		s := err.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{
			Error: &s,
		})
		return
	}

	var matchRules []models.MatchRule
	err = models.DB.Order("priority ASC").Find(&matchRules).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &s,
		})
		return
	}

	for i := range previews {
		match(&previews[i], matchRules)
	}

	result := ImportResult{
		Transactions: make([]Transaction, 0, len(previews)),
	}

	// Create the transactions and adjust envelope balances atomically:
	// a failed import must not leave envelopes half-adjusted
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		for _, preview := range previews {
			transaction := preview.Transaction

			err := tx.Create(&transaction).Error
			if errors.Is(err, models.ErrTransactionAlreadySeen) {
				result.Skipped++
				continue
			}
			if err != nil {
				return err
			}

			result.Created++

			if transaction.EnvelopeID != nil {
				result.Matched++

				var envelope models.Envelope
				err = tx.First(&envelope, *transaction.EnvelopeID).Error
				if err != nil {
					return err
				}

				err = tx.Model(&envelope).Select("Balance").Updates(models.Envelope{Balance: envelope.Balance.Add(transaction.Amount)}).Error
				if err != nil {
					return err
				}
			}

			result.Transactions = append(result.Transactions, newTransaction(c, transaction))
		}

		return nil
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, ImportResponse{Data: &result})
}
