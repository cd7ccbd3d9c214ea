package v1

import (
	"net/http"
	"time"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterWatchRoutes registers the routes for spending watches with
// the RouterGroup that is passed.
func RegisterWatchRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsWatchList)
		r.GET("", GetWatches)
		r.POST("", CreateWatch)
	}

	{
		r.OPTIONS("/:id", OptionsWatchDetail)
		r.DELETE("/:id", DeleteWatch)
	}
}

// WatchEditable are the fields a client can set on a spending watch.
type WatchEditable struct {
	Category   string          `json:"category" example:"Food"`
	Threshold  decimal.Decimal `json:"threshold" example:"500"`
	Period     models.Period   `json:"period" example:"weekly"`
	Month      types.Month     `json:"month" example:"2025-06"`
	RangeStart *time.Time      `json:"rangeStart" example:"2025-06-16T00:00:00Z"`
	RangeEnd   *time.Time      `json:"rangeEnd" example:"2025-06-22T00:00:00Z"`
}

func (editable WatchEditable) model(ownerID uuid.UUID) models.Watch {
	return models.Watch{
		OwnerID:    ownerID,
		Category:   editable.Category,
		Threshold:  editable.Threshold,
		Period:     editable.Period,
		Month:      editable.Month,
		RangeStart: editable.RangeStart,
		RangeEnd:   editable.RangeEnd,
	}
}

// WatchResponse is the response for a single watch.
type WatchResponse struct {
	Data models.Watch `json:"data"`
}

// WatchListResponse is the response for a watch list.
type WatchListResponse struct {
	Data []models.Watch `json:"data"`
}

func OptionsWatchList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

func OptionsWatchDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// GetWatches lists the acting user's watches, optionally filtered by
// anchor month (YYYY-MM).
func GetWatches(c *gin.Context) {
	ownerID, err := httputil.UserID(c)
	if err != nil {
		return
	}

	var month types.Month
	if raw, ok := c.GetQuery("month"); ok {
		month, err = types.ParseMonth(raw)
		if err != nil {
			httputil.NewError(c, http.StatusBadRequest, err)
			return
		}
	}

	watches, err := models.NewStore().Watches(ownerID, month)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, WatchListResponse{Data: watches})
}

func CreateWatch(c *gin.Context) {
	ownerID, err := httputil.UserID(c)
	if err != nil {
		return
	}

	var editable WatchEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	watch := editable.model(ownerID)
	if err := models.NewStore().CreateWatch(&watch); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusCreated, WatchResponse{Data: watch})
}

func DeleteWatch(c *gin.Context) {
	ownerID, err := httputil.UserID(c)
	if err != nil {
		return
	}

	id, err := httputil.UUIDFromString(c, "id")
	if err != nil {
		return
	}

	if err := models.NewStore().DeleteWatch(id, ownerID); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
