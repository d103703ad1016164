package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/my-budget-mate/backend/internal/calc"
	"github.com/my-budget-mate/backend/internal/httputil"
	"github.com/my-budget-mate/backend/internal/models"
	"github.com/shopspring/decimal"
)

// RegisterReconciliationRoutes registers the routes for reconciliation
// with the RouterGroup that is passed.
func RegisterReconciliationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsReconciliation)
	r.POST("", Reconcile)
}

// ReconciliationRequest is the data for one reconciliation check
type ReconciliationRequest struct {
	BankBalance      decimal.Decimal  `json:"bankBalance" example:"2735.17"`                 // The actual bank balance to check against
	CCHoldingBalance *decimal.Decimal `json:"ccHoldingBalance" example:"450" default:"null"` // Money held back for credit card spending. Defaults to the sum over all accounts when omitted.
}

type ReconciliationResponse struct {
	Error *string                    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *calc.ReconciliationResult `json:"data"`                                                          // The reconciliation result
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reconciliation
// @Success		204
// @Router			/v1/reconciliation [options]
func OptionsReconciliation(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Reconcile
// @Description	Checks the bank balance against the envelope balances and explains any discrepancy
// @Tags			Reconciliation
// @Accept			json
// @Produce		json
// @Success		200				{object}	ReconciliationResponse
// @Failure		400				{object}	ReconciliationResponse
// @Failure		500				{object}	ReconciliationResponse
// @Param			reconciliation	body		ReconciliationRequest	true	"Reconciliation"
// @Router			/v1/reconciliation [post]
func Reconcile(c *gin.Context) {
	var request ReconciliationRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReconciliationResponse{
			Error: &s,
		})
		return
	}

	envelopeTotal, err := models.EnvelopeBalanceSum()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReconciliationResponse{
			Error: &s,
		})
		return
	}

	ccHolding := decimal.Zero
	if request.CCHoldingBalance != nil {
		ccHolding = *request.CCHoldingBalance
	} else {
		ccHolding, err = models.CCHoldingSum()
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ReconciliationResponse{
				Error: &s,
			})
			return
		}
	}

	result := calc.ValidateReconciliation(request.BankBalance, envelopeTotal, ccHolding)
	c.JSON(http.StatusOK, ReconciliationResponse{Data: &result})
}
