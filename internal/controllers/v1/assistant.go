package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/assistant"
	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterAssistantRoutes registers the routes for the assistant with
// the RouterGroup that is passed.
func RegisterAssistantRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAssistant)
	r.POST("", PostAssistant)
}

func OptionsAssistant(c *gin.Context) {
	httputil.OptionsPost(c)
}

// PostAssistant runs a free-text query for the acting user and returns
// the messages, effects and chart data the query produced.
func PostAssistant(c *gin.Context) {
	ownerID, err := httputil.UserID(c)
	if err != nil {
		return
	}

	var query assistant.Query
	if err := httputil.BindData(c, &query); err != nil {
		return
	}

	result, err := assistant.New(models.NewStore()).Interpret(ownerID, query)
	if err != nil {
		httputil.ErrorHandler(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
