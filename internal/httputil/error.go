package httputil

import (
	"errors"
	"net/http"

	"github.com/centsible/backend/internal/models"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// NewError writes an HTTPError response with the given status.
func NewError(c *gin.Context, status int, err error) {
	c.JSON(status, HTTPError{
		Error: err.Error(),
	})
}

// Status returns the appropriate HTTP status for a database error.
func Status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// ErrorHandler writes the response for a database error, logging
// server side errors with the request id so they can be correlated.
func ErrorHandler(c *gin.Context, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	}

	NewError(c, status, err)
}
