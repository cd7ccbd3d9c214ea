package v1

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterRootRoutes registers the v1 root routes with the RouterGroup
// that is passed.
func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", GetV1)
	r.OPTIONS("", OptionsV1)
}

// Response is the response for the v1 root.
type Response struct {
	Links Links `json:"links"`
}

// Links lists the v1 API endpoints.
type Links struct {
	Assistant    string `json:"assistant" example:"https://example.com/v1/assistant"`       // URL of the assistant endpoint
	Transactions string `json:"transactions" example:"https://example.com/v1/transactions"` // URL of the transaction collection endpoint
	Goals        string `json:"goals" example:"https://example.com/v1/goals"`               // URL of the goal collection endpoint
	Watches      string `json:"watches" example:"https://example.com/v1/watches"`           // URL of the watch collection endpoint
}

// GetV1 returns general information about the v1 API.
func GetV1(c *gin.Context) {
	url := httputil.RequestHost(c) + "/v1"

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Assistant:    url + "/assistant",
			Transactions: url + "/transactions",
			Goals:        url + "/goals",
			Watches:      url + "/watches",
		},
	})
}

func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
