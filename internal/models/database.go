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

var DB *gorm.DB

type TBContext string

const (
	DBContextURL TBContext = "tb-backend-url"
)

// uniqueErrors maps unique constraint violations to errors users can act on.
var uniqueErrors = map[string]error{
	"UNIQUE constraint failed: users.subject":                                     ErrUserSubjectNotUnique,
	"UNIQUE constraint failed: participants.trip_id, participants.user_id":        ErrParticipantExists,
	"UNIQUE constraint failed: custom_categories.trip_id, custom_categories.name": ErrCustomCategoryNameNotUnique,
	"UNIQUE constraint failed: friendships.user_id, friendships.friend_id":        ErrFriendshipExists,
}

// Connect opens the SQLite database, migrates the schema and configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		Logger: &logger{
			Logger: log.Logger,
		},
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	// Close the connection
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Reconnect with foreign keys enabled
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "tripbudget:after_query", queryCallback},
		{db.Callback().Query().After("*"), "tripbudget:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "tripbudget:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "tripbudget:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "tripbudget:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "tripbudget:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "tripbudget:after_delete_general", generalCallback},
	}

	for _, c := range callbacks {
		if err := c.processor.Register(c.name, c.fn); err != nil {
			return err
		}
	}

	DB = db
	return nil
}

// queryCallback replaces the generic "no record" error with one
// naming the resource.
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, resourceName(db.Statement.Table))
	}
}

// resourceName turns a table name into a singular, human readable name.
func resourceName(table string) string {
	name := strings.ReplaceAll(table, "_", " ")
	name = regexp.MustCompile("ies$").ReplaceAllString(name, "y")
	return strings.TrimSuffix(name, "s")
}

// createUpdateCallback replaces constraint violations with user friendly errors.
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	for constraint, err := range uniqueErrors {
		if strings.Contains(db.Error.Error(), constraint) {
			db.Error = err
			return
		}
	}

	if strings.Contains(db.Error.Error(), "FOREIGN KEY constraint failed") {
		db.Error = ErrReferenceNotFound
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// The error is logged and users get a general message.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the database/sql package
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(User{}, Trip{}, Participant{}, Expense{}, Contributor{}, CustomCategory{}, Activity{}, Friendship{}, CategoryRule{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
