package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterGoalRoutes registers the routes for goals with the
// RouterGroup that is passed.
func RegisterGoalRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsGoalList)
		r.GET("", GetGoals)
		r.POST("", CreateGoal)
	}

	{
		r.OPTIONS("/:id", OptionsGoalDetail)
		r.DELETE("/:id", DeleteGoal)
	}
}

// GoalEditable are the fields a client can set on a goal.
type GoalEditable struct {
	Label    string          `json:"label" example:"Stay under $300 monthly for food"`
	Category string          `json:"category" example:"Food"`
	Limit    decimal.Decimal `json:"limit" example:"300"`
	Month    types.Month     `json:"month" example:"2025-06"`
	Period   models.Period   `json:"period" example:"monthly"`
}

func (editable GoalEditable) model(ownerID uuid.UUID) models.Goal {
	return models.Goal{
		OwnerID:  ownerID,
		Label:    editable.Label,
		Category: editable.Category,
		Limit:    editable.Limit,
		Month:    editable.Month,
		Period:   editable.Period,
	}
}

// GoalResponse is the response for a single goal.
type GoalResponse struct {
	Data models.Goal `json:"data"`
}

// GoalListResponse is the response for a goal list.
type GoalListResponse struct {
	Data []models.Goal `json:"data"`
}

func OptionsGoalList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

func OptionsGoalDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// GetGoals lists the acting user's goals, optionally filtered by
// anchor month (YYYY-MM).
func GetGoals(c *gin.Context) {
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

	goals, err := models.NewStore().Goals(ownerID, month)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, GoalListResponse{Data: goals})
}

func CreateGoal(c *gin.Context) {
	ownerID, err := httputil.UserID(c)
	if err != nil {
		return
	}

	var editable GoalEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	goal := editable.model(ownerID)
	if err := models.NewStore().CreateGoal(&goal); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusCreated, GoalResponse{Data: goal})
}

func DeleteGoal(c *gin.Context) {
	ownerID, err := httputil.UserID(c)
	if err != nil {
		return
	}

	id, err := httputil.UUIDFromString(c, "id")
	if err != nil {
		return
	}

	if err := models.NewStore().DeleteGoal(id, ownerID); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
