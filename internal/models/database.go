package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DB is the database used by the backend.
var DB *gorm.DB

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = db.Callback().Query().After("*").Register("centsible:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("centsible:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("centsible:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Delete().After("*").Register("centsible:after_delete_general", generalCallback)
	if err != nil {
		return err
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	// Set the exported variable
	DB = db

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource
		// and replace "_" with "[space]"
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")

		// Replace pluralized "ies" with "y"
		match := regexp.MustCompile("ies$")
		name = match.ReplaceAllString(name, "y")

		// Remove plural "s"
		name = strings.TrimRight(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral

		return
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(Transaction{}, Goal{}, Watch{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
