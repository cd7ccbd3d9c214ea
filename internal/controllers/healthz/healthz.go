package healthz

import (
	"net/http"

	"github.com/centsible/backend/internal/httputil"
	"github.com/centsible/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns the application health and, if not healthy, an error.
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		httputil.NewError(c, http.StatusInternalServerError, err)
		return
	}

	if err := sqlDB.Ping(); err != nil {
		httputil.NewError(c, http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusNoContent)
}
