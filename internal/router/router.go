package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/centsible/backend/internal/controllers/healthz"
	v1 "github.com/centsible/backend/internal/controllers/v1"
	"github.com/centsible/backend/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Overridden at build time via -ldflags.
var version = "0.0.0"

// Router sets up the router and all middlewares.
func Router() (*gin.Engine, func(), error) {
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.NoMethod(func(c *gin.Context) {
		httputil.NewError(c, http.StatusMethodNotAllowed, errMethodNotAllowed)
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("CORS Allowed Origins", allowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", httputil.HeaderUserID},
			AllowCredentials: true,
		}))
	}

	if err := registerPrometheusMetrics(); err != nil {
		return nil, nil, err
	}
	r.Use(MetricsMiddleware())

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Info().Str("version", version).Msg("Router")

	teardown := func() {
		if ok := unregisterPrometheusMetrics(); !ok {
			log.Error().Msg("could not unregister Prometheus metrics")
		}
	}

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is
// passed in. Separating this from Router() allows tests to attach the
// routes to a fresh engine.
func AttachRoutes(group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	healthz.RegisterRoutes(group.Group("/healthz"))

	apiV1 := group.Group("/v1")
	v1.RegisterRootRoutes(apiV1)
	v1.RegisterAssistantRoutes(apiV1.Group("/assistant"))
	v1.RegisterTransactionRoutes(apiV1.Group("/transactions"))
	v1.RegisterGoalRoutes(apiV1.Group("/goals"))
	v1.RegisterWatchRoutes(apiV1.Group("/watches"))
}

// RootResponse is the response for the API root.
type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Healthz string `json:"healthz" example:"https://example.com/healthz"` // Health of the API
	Metrics string `json:"metrics" example:"https://example.com/metrics"` // Endpoint returning Prometheus metrics
	Version string `json:"version" example:"https://example.com/version"` // Endpoint returning the version of the backend
	V1      string `json:"v1" example:"https://example.com/v1"`           // List of v1 endpoints
}

// GetRoot is the entrypoint for the API, listing all endpoints.
func GetRoot(c *gin.Context) {
	url := httputil.RequestHost(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Healthz: url + "/healthz",
			Metrics: url + "/metrics",
			Version: url + "/version",
			V1:      url + "/v1",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// GetVersion returns the software version of the API.
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}
