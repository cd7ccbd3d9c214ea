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

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// TransactionEditable are the fields a client can set on a transaction.
type TransactionEditable struct {
	Date           time.Time       `json:"date" example:"2025-06-18T00:00:00Z"`
	Description    string          `json:"description" example:"Coffee with Ana"`
	Category       string          `json:"category" example:"Food"`
	Merchant       string          `json:"merchant" example:"Blue Bottle"`
	Amount         decimal.Decimal `json:"amount" example:"12.50"`
	IsSubscription bool            `json:"isSubscription" example:"false"`
	Notes          string          `json:"notes" example:""`
}

func (editable TransactionEditable) model(ownerID uuid.UUID) models.Transaction {
	return models.Transaction{
		OwnerID:        ownerID,
		Date:           editable.Date,
		Description:    editable.Description,
		Category:       editable.Category,
		Merchant:       editable.Merchant,
		Amount:         editable.Amount,
		IsSubscription: editable.IsSubscription,
		Notes:          editable.Notes,
	}
}

// TransactionResponse is the response for a single transaction.
type TransactionResponse struct {
	Data models.Transaction `json:"data"`
}

// TransactionListResponse is the response for a transaction list.
type TransactionListResponse struct {
	Data []models.Transaction `json:"data"`
}

func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

func OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// GetTransactions lists the acting user's transactions, optionally
// filtered by month (YYYY-MM) and category.
func GetTransactions(c *gin.Context) {
	ownerID, err := httputil.UserID(c)
	if err != nil {
		return
	}

	var filter models.TransactionFilter
	if raw, ok := c.GetQuery("month"); ok {
		month, err := types.ParseMonth(raw)
		if err != nil {
			httputil.NewError(c, http.StatusBadRequest, err)
			return
		}
		filter.Month = month
	}
	filter.Category = c.Query("category")

	transactions, err := models.NewStore().Transactions(ownerID, filter)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: transactions})
}

func CreateTransaction(c *gin.Context) {
	ownerID, err := httputil.UserID(c)
	if err != nil {
		return
	}

	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		return
	}

	transaction := editable.model(ownerID)
	if err := models.NewStore().CreateTransaction(&transaction); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: transaction})
}

func DeleteTransaction(c *gin.Context) {
	ownerID, err := httputil.UserID(c)
	if err != nil {
		return
	}

	id, err := httputil.UUIDFromString(c, "id")
	if err != nil {
		return
	}

	if err := models.NewStore().DeleteTransaction(id, ownerID); err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
