package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/centsible/backend/internal/models"
	"github.com/centsible/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create the data directory
	dataDir := filepath.Join(".", "data")
	if err := os.MkdirAll(dataDir, os.ModePerm); err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := models.Connect(filepath.Join(dataDir, "gorm.db")); err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Router()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	router.AttachRoutes(r.Group("/"))

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
