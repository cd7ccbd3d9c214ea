package httputil

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// HeaderUserID is the request header carrying the acting user.
const HeaderUserID = "X-User-ID"

// BindData binds the JSON request body to the struct passed in. On
// failure, the error response has already been written.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			NewError(c, http.StatusBadRequest, ErrRequestBodyEmpty)
			return ErrRequestBodyEmpty
		}

		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		NewError(c, http.StatusBadRequest, ErrInvalidBody)
		return ErrInvalidBody
	}

	return nil
}

// UserID reads the acting user from the X-User-ID header. On failure,
// the error response has already been written.
func UserID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.GetHeader(HeaderUserID))
	if err != nil || id == uuid.Nil {
		NewError(c, http.StatusUnauthorized, ErrUserNotSet)
		return uuid.Nil, ErrUserNotSet
	}

	return id, nil
}

// UUIDFromString parses a path parameter into a UUID. On failure, the
// error response has already been written.
func UUIDFromString(c *gin.Context, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		NewError(c, http.StatusBadRequest, ErrInvalidUUID)
		return uuid.Nil, ErrInvalidUUID
	}

	return id, nil
}

// RequestHost returns the scheme and host to use when constructing
// links. A reverse proxy is detected through the de-facto standard
// x-forwarded headers.
func RequestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	host := c.Request.Host
	var forwardedPrefix string

	xForwardedHost := c.Request.Header.Get("x-forwarded-host")
	if xForwardedHost != "" {
		host = xForwardedHost

		forwardedPrefix = c.Request.Header.Get("x-forwarded-prefix")
		if forwardedPrefix == "" {
			forwardedPrefix = "/api"
		}
	}

	return scheme + "://" + host + forwardedPrefix
}
