package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/my-budget-mate/backend/internal/httputil"
	"github.com/my-budget-mate/backend/internal/models"
	ez_uuid "github.com/my-budget-mate/backend/internal/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// RegisterTransferRoutes registers the routes for transfers with the
// RouterGroup that is passed.
func RegisterTransferRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransferList)
		r.GET("", GetTransfers)
		r.POST("", CreateTransfers)
	}

	// Transfer with ID
	{
		r.OPTIONS("/:id", OptionsTransferDetail)
		r.GET("/:id", GetTransfer)
	}
}

// TransferEditable represents all user configurable parameters
type TransferEditable struct {
	FromEnvelopeID uuid.UUID       `json:"fromEnvelopeId" example:"2b1d8df5-e611-4e2b-9e83-1ecf59c82aaf"` // The envelope money is taken out of
	ToEnvelopeID   uuid.UUID       `json:"toEnvelopeId" example:"f9e873c2-fb96-4367-bfb6-7ecd9bf4a6b5"`   // The envelope money is moved into
	Amount         decimal.Decimal `json:"amount" example:"50" minimum:"0.00000001" default:"0"`          // The amount to move, must be positive
	Note           string          `json:"note" example:"Covering the power bill" default:""`             // A note
}

// model returns the database resource for the API representation of the editable fields
func (editable TransferEditable) model() models.Transfer {
	return models.Transfer{
		FromEnvelopeID: editable.FromEnvelopeID,
		ToEnvelopeID:   editable.ToEnvelopeID,
		Amount:         editable.Amount,
		Note:           editable.Note,
	}
}

type TransferLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/transfers/a6e26ce2-4b15-4a74-a3a4-ae09c6917f71"`         // The transfer itself
	FromEnvelope string `json:"fromEnvelope" example:"https://example.com/api/v1/envelopes/2b1d8df5-e611-4e2b-9e83-1ecf59c82aaf"` // The envelope money was taken out of
	ToEnvelope   string `json:"toEnvelope" example:"https://example.com/api/v1/envelopes/f9e873c2-fb96-4367-bfb6-7ecd9bf4a6b5"`   // The envelope money was moved into
}

type Transfer struct {
	models.DefaultModel
	TransferEditable
	Links TransferLinks `json:"links"`
}

// newTransfer returns the API v1 representation of the resource
func newTransfer(c *gin.Context, model models.Transfer) Transfer {
	url := c.GetString(string(models.DBContextURL))

	return Transfer{
		DefaultModel: model.DefaultModel,
		TransferEditable: TransferEditable{
			FromEnvelopeID: model.FromEnvelopeID,
			ToEnvelopeID:   model.ToEnvelopeID,
			Amount:         model.Amount,
			Note:           model.Note,
		},
		Links: TransferLinks{
			Self:         fmt.Sprintf("%s/v1/transfers/%s", url, model.ID),
			FromEnvelope: fmt.Sprintf("%s/v1/envelopes/%s", url, model.FromEnvelopeID),
			ToEnvelope:   fmt.Sprintf("%s/v1/envelopes/%s", url, model.ToEnvelopeID),
		},
	}
}

type TransferListResponse struct {
	Data       []Transfer  `json:"data"`                                                          // List of transfers
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type TransferCreateResponse struct {
	Error *string            `json:"error" example:"the transfer amount must be positive"` // The error, if any occurred
	Data  []TransferResponse `json:"data"`                                                 // List of created transfers
}

func (t *TransferCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransferResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransferResponse struct {
	Error *string   `json:"error" example:"the transfer amount must be positive"` // The error, if any occurred
	Data  *Transfer `json:"data"`                                                 // The transfer
}

type TransferQueryFilter struct {
	FromEnvelopeID ez_uuid.UUID `form:"fromEnvelope"`               // By the envelope money was taken out of
	ToEnvelopeID   ez_uuid.UUID `form:"toEnvelope"`                 // By the envelope money was moved into
	Note           string       `form:"note" filterField:"false"`   // Fuzzy filter for the note
	Offset         uint         `form:"offset" filterField:"false"` // The offset of the first transfer returned. Defaults to 0.
	Limit          int          `form:"limit" filterField:"false"`  // Maximum number of transfers to return. Defaults to 50.
}

func (f TransferQueryFilter) model() models.Transfer {
	return models.Transfer{
		FromEnvelopeID: f.FromEnvelopeID.UUID,
		ToEnvelopeID:   f.ToEnvelopeID.UUID,
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transfers
// @Success		204
// @Router			/v1/transfers [options]
func OptionsTransferList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transfers
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transfers/{id} [options]
func OptionsTransferDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Transfer{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create transfers
// @Description	Moves money between envelopes. Each transfer adjusts both envelope balances atomically.
// @Tags			Transfers
// @Produce		json
// @Success		201			{object}	TransferCreateResponse
// @Failure		400			{object}	TransferCreateResponse
// @Failure		404			{object}	TransferCreateResponse
// @Failure		500			{object}	TransferCreateResponse
// @Param			transfers	body		[]TransferEditable	true	"Transfers"
// @Router			/v1/transfers [post]
func CreateTransfers(c *gin.Context) {
	var editables []TransferEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TransferCreateResponse{}

	for _, editable := range editables {
		transfer := editable.model()

		err := models.ApplyTransfer(&transfer)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		// Transform for the API and append
		apiResource := newTransfer(c, transfer)
		r.Data = append(r.Data, TransferResponse{Data: &apiResource})
	}

	c.JSON(status, r)
}

// @Summary		Get transfers
// @Description	Returns a list of transfers
// @Tags			Transfers
// @Produce		json
// @Success		200	{object}	TransferListResponse
// @Failure		400	{object}	TransferListResponse
// @Failure		500	{object}	TransferListResponse
// @Router			/v1/transfers [get]
// @Param			fromEnvelope	query	string	false	"Filter by the envelope money was taken out of"
// @Param			toEnvelope		query	string	false	"Filter by the envelope money was moved into"
// @Param			note			query	string	false	"Filter by note"
// @Param			offset			query	uint	false	"The offset of the first transfer returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of transfers to return. Defaults to 50."
func GetTransfers(c *gin.Context) {
	var filter TransferQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransferListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()

	q := models.DB.
		Order("created_at DESC").
		Where(&where, queryFields...)

	if filter.Note != "" {
		q = q.Where("note LIKE ?", fmt.Sprintf("%%%s%%", filter.Note))
	} else if slices.Contains(setFields, "Note") {
		q = q.Where("note = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Transfers and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var transfers []models.Transfer
	err := q.Find(&transfers).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransferListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransferListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]Transfer, 0, len(transfers))
	for _, transfer := range transfers {
		data = append(data, newTransfer(c, transfer))
	}

	c.JSON(http.StatusOK, TransferListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get transfer
// @Description	Returns a specific transfer
// @Tags			Transfers
// @Produce		json
// @Success		200	{object}	TransferResponse
// @Failure		400	{object}	TransferResponse
// @Failure		404	{object}	TransferResponse
// @Failure		500	{object}	TransferResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transfers/{id} [get]
func GetTransfer(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransferResponse{
			Error: &s,
		})
		return
	}

	var transfer models.Transfer
	err = models.DB.First(&transfer, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransferResponse{
			Error: &s,
		})
		return
	}

	apiResource := newTransfer(c, transfer)
	c.JSON(http.StatusOK, TransferResponse{Data: &apiResource})
}
