package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/my-budget-mate/backend/internal/calc"
	"github.com/my-budget-mate/backend/internal/httputil"
	"github.com/my-budget-mate/backend/internal/models"
	"github.com/my-budget-mate/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RegisterSettingsRoutes registers the routes for the pay settings with
// the RouterGroup that is passed.
func RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSettings)
	r.GET("", GetSettings)
	r.PATCH("", UpdateSettings)
}

// PaySettingsEditable represents all user configurable parameters
type PaySettingsEditable struct {
	PayFrequency   types.Frequency `json:"payFrequency" example:"fortnightly" default:"fortnightly"` // How often income arrives
	PerPayIncome   decimal.Decimal `json:"perPayIncome" example:"2400" default:"0"`                  // Income per pay cycle
	CycleStartDate *time.Time      `json:"cycleStartDate" example:"2026-08-17T00:00:00.000000Z"`     // The date the current pay cycle started
}

// model returns the database resource for the API representation of the editable fields
func (editable PaySettingsEditable) model() models.PaySettings {
	return models.PaySettings{
		PayFrequency:   editable.PayFrequency,
		PerPayIncome:   editable.PerPayIncome,
		CycleStartDate: editable.CycleStartDate,
	}
}

type PaySettings struct {
	models.DefaultModel
	PaySettingsEditable
}

// newPaySettings returns the API v1 representation of the resource
func newPaySettings(model models.PaySettings) PaySettings {
	return PaySettings{
		DefaultModel: model.DefaultModel,
		PaySettingsEditable: PaySettingsEditable{
			PayFrequency:   model.PayFrequency,
			PerPayIncome:   model.PerPayIncome,
			CycleStartDate: model.CycleStartDate,
		},
	}
}

type PaySettingsResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *PaySettings `json:"data"`                                                          // The pay settings
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings [options]
func OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get pay settings
// @Description	Returns the pay settings. The settings are created with defaults on first access.
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	PaySettingsResponse
// @Failure		500	{object}	PaySettingsResponse
// @Router			/v1/settings [get]
func GetSettings(c *gin.Context) {
	settings, err := models.GetPaySettings()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PaySettingsResponse{
			Error: &s,
		})
		return
	}

	apiResource := newPaySettings(settings)
	c.JSON(http.StatusOK, PaySettingsResponse{Data: &apiResource})
}

// @Summary		Update pay settings
// @Description	Updates the pay settings. Only values to be updated need to be specified. Changing the pay frequency recalculates the per-pay contribution of every envelope.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	PaySettingsResponse
// @Failure		400			{object}	PaySettingsResponse
// @Failure		500			{object}	PaySettingsResponse
// @Param			settings	body		PaySettingsEditable	true	"Settings"
// @Router			/v1/settings [patch]
func UpdateSettings(c *gin.Context) {
	settings, err := models.GetPaySettings()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PaySettingsResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, PaySettingsEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PaySettingsResponse{
			Error: &s,
		})
		return
	}

	// Bind the data for the patch
	var data PaySettingsEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PaySettingsResponse{
			Error: &s,
		})
		return
	}

	previousFrequency := settings.PayFrequency

	err = models.DB.Model(&settings).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PaySettingsResponse{
			Error: &s,
		})
		return
	}

	// A new pay frequency changes every envelope's per-pay
	// contribution
	if settings.PayFrequency != previousFrequency {
		err = recalculatePerPayAmounts(settings.PayFrequency)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), PaySettingsResponse{
				Error: &s,
			})
			return
		}
	}

	apiResource := newPaySettings(settings)
	c.JSON(http.StatusOK, PaySettingsResponse{Data: &apiResource})
}

// recalculatePerPayAmounts rewrites the per-pay contribution of every
// envelope for the pay frequency that is passed.
func recalculatePerPayAmounts(payFrequency types.Frequency) error {
	var envelopes []models.Envelope
	err := models.DB.Find(&envelopes).Error
	if err != nil {
		return err
	}

	return models.DB.Transaction(func(tx *gorm.DB) error {
		for _, envelope := range envelopes {
			perPay, err := calc.PerPayAmount(envelope.TargetAmount, envelope.Frequency, payFrequency)
			if err != nil {
				return err
			}

			if perPay.Equal(envelope.PerPayAmount) {
				continue
			}

			err = tx.Model(&envelope).Select("PerPayAmount").Updates(models.Envelope{PerPayAmount: perPay}).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
