package db

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"outlaw/internal/logging"
	"outlaw/internal/model"
)

// Models lists every table owned by the service, in drop order.
var Models = []interface{}{
	&model.Survey{},
	&model.TimeSlot{},
	&model.User{},
}

// zerologWriter routes gorm's logger through the process logger.
type zerologWriter struct{}

func (zerologWriter) Printf(format string, args ...interface{}) {
	logging.Warn().Str("component", "gorm").Msgf(format, args...)
}

// NewMySQL returns a connected GORM DB instance.
// Slow queries (over 500ms) and errors are logged; record-not-found is not.
func NewMySQL(dsn string) (*gorm.DB, error) {
	gormLogger := logger.New(zerologWriter{}, logger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("mysql pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema. With reset set, existing tables are dropped first.
func Migrate(db *gorm.DB, reset bool) error {
	if reset {
		logging.Warn().Msg("RESET_DB=true detected, dropping all tables")
		for _, table := range Models {
			if err := db.Migrator().DropTable(table); err != nil {
				logging.Warn().Err(err).Msg("drop table failed (may not exist)")
			}
		}
	}

	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
