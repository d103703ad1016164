// Package v1 implements the v1 API of the My Budget Mate backend.
package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/my-budget-mate/backend/internal/httputil"
	"github.com/my-budget-mate/backend/internal/models"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Accounts       string `json:"accounts" example:"https://example.com/api/v1/accounts"`             // URL of the account collection endpoint
	Categories     string `json:"categories" example:"https://example.com/api/v1/categories"`         // URL of the category collection endpoint
	Envelopes      string `json:"envelopes" example:"https://example.com/api/v1/envelopes"`           // URL of the envelope collection endpoint
	Export         string `json:"export" example:"https://example.com/api/v1/export/planning"`        // URL of the planning export endpoint
	Import         string `json:"import" example:"https://example.com/api/v1/import"`                 // URL of the statement import endpoint
	MatchRules     string `json:"matchRules" example:"https://example.com/api/v1/match-rules"`        // URL of the match rule collection endpoint
	Plan           string `json:"plan" example:"https://example.com/api/v1/plan"`                     // URL of the pay plan endpoint
	Reconciliation string `json:"reconciliation" example:"https://example.com/api/v1/reconciliation"` // URL of the reconciliation endpoint
	Scenarios      string `json:"scenarios" example:"https://example.com/api/v1/scenarios"`           // URL of the scenario endpoint
	Settings       string `json:"settings" example:"https://example.com/api/v1/settings"`             // URL of the pay settings endpoint
	Transactions   string `json:"transactions" example:"https://example.com/api/v1/transactions"`     // URL of the transaction collection endpoint
	Transfers      string `json:"transfers" example:"https://example.com/api/v1/transfers"`           // URL of the transfer collection endpoint
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Accounts:       url + "/v1/accounts",
			Categories:     url + "/v1/categories",
			Envelopes:      url + "/v1/envelopes",
			Export:         url + "/v1/export/planning",
			Import:         url + "/v1/import",
			MatchRules:     url + "/v1/match-rules",
			Plan:           url + "/v1/plan",
			Reconciliation: url + "/v1/reconciliation",
			Scenarios:      url + "/v1/scenarios",
			Settings:       url + "/v1/settings",
			Transactions:   url + "/v1/transactions",
			Transfers:      url + "/v1/transfers",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
