package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OptionsGet(c *gin.Context) {
	c.Header("allow", "GET")
	c.Status(http.StatusNoContent)
}

func OptionsPost(c *gin.Context) {
	c.Header("allow", "POST")
	c.Status(http.StatusNoContent)
}

func OptionsGetPost(c *gin.Context) {
	c.Header("allow", "GET, POST")
	c.Status(http.StatusNoContent)
}

func OptionsDelete(c *gin.Context) {
	c.Header("allow", "DELETE")
	c.Status(http.StatusNoContent)
}
