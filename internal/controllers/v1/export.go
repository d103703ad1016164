package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/my-budget-mate/backend/internal/export"
	"github.com/my-budget-mate/backend/internal/httputil"
	"github.com/my-budget-mate/backend/internal/models"
)

// RegisterExportRoutes registers the routes for exports with the
// RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/planning", OptionsExportPlanning)
	r.GET("/planning", GetExportPlanning)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export/planning [options]
func OptionsExportPlanning(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export planning CSV
// @Description	Exports the planning worksheet for all active envelopes as CSV
// @Tags			Export
// @Produce		text/csv
// @Success		200
// @Failure		500	{object}	httpError
// @Router			/v1/export/planning [get]
func GetExportPlanning(c *gin.Context) {
	settings, err := models.GetPaySettings()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	envelopes, err := models.ActiveEnvelopes()
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var categories []models.Category
	err = models.DB.Find(&categories).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	categoryNames := make(map[uuid.UUID]string, len(categories))
	for _, category := range categories {
		categoryNames[category.ID] = category.Name
	}

	rows := make([]export.PlanningRow, 0, len(envelopes))
	for _, envelope := range envelopes {
		rows = append(rows, export.PlanningRow{
			Envelope:       envelope.Name,
			Category:       categoryNames[envelope.CategoryID],
			TargetAmount:   envelope.TargetAmount,
			Frequency:      envelope.Frequency,
			PlanPerPay:     envelope.PerPayAmount,
			OpeningBalance: envelope.OpeningBalance,
			Balance:        envelope.Balance,
			DueDate:        envelope.DueDate,
			Note:           envelope.Note,
		})
	}

	today := time.Now()

	data, err := export.Planning(rows, settings.PayFrequency, today)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", export.Filename(today)))
	c.Data(http.StatusOK, "text/csv", data)
}
