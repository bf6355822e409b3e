package database

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Options struct {
	// DSN selects the driver: a postgres:// or postgresql:// URL opens
	// Postgres, anything else is treated as a SQLite path.
	DSN string
	// Echo logs every SQL statement.
	Echo bool
}

// Connect opens the database described by opts. The returned handle is meant
// to be created once at startup and passed to repositories.
func Connect(opts Options) (*gorm.DB, error) {
	level := gormlogger.Warn
	if opts.Echo {
		level = gormlogger.Info
	}

	cfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
	}

	if IsPostgres(opts.DSN) {
		db, err := gorm.Open(postgres.Open(opts.DSN), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect postgres: %w", err)
		}
		return db, nil
	}

	db, err := gorm.Open(sqlite.Open(sqliteDSN(opts.DSN)), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql handle: %w", err)
	}
	// SQLite serializes writers anyway, and every connection to :memory:
	// would otherwise see its own empty database.
	sqlDB.SetMaxOpenConns(1)
	// Recycling the only connection to an in-memory database drops its data.
	if !IsInMemory(opts.DSN) {
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// IsInMemory reports whether dsn names a SQLite in-memory database.
func IsInMemory(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory") || strings.HasPrefix(dsn, "file::memory:")
}

func sqliteDSN(dsn string) string {
	if dsn == "" {
		return "cms.db"
	}
	return dsn
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
