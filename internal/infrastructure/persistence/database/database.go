// Package database provides the core functionality for creating and managing
// database connections in a clean, isolated manner.
package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/prelandr/prelandr-go/internal/infrastructure/observability/logging"
)

// DB represents a wrapper around the standard SQL database connection.
type DB struct {
	*sql.DB
	DriverName string
}

// Config selects the backing store: a local SQLite file by default, or a
// hosted Turso database when the URL and auth token are both set.
type Config struct {
	SQLitePath       string
	TursoDatabaseURL string
	TursoAuthToken   string
	MaxOpenConns     int
	MaxIdleConns     int
	ConnMaxLifetime  time.Duration
}

// UsesTurso reports whether the hosted store is configured.
func (c Config) UsesTurso() bool {
	return c.TursoDatabaseURL != "" && c.TursoAuthToken != ""
}

// Connect establishes the database connection for the configured store.
func Connect(cfg Config, logger *logging.ChanneledLogger) (*DB, error) {
	driverName := "sqlite3"
	dataSourceName := cfg.SQLitePath
	if cfg.UsesTurso() {
		driverName = "libsql"
		dataSourceName = fmt.Sprintf("%s?authToken=%s", cfg.TursoDatabaseURL, cfg.TursoAuthToken)
	}

	start := time.Now()
	logger.Database().Debug("Creating new database connection", "driverName", driverName)

	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		logger.Database().Error("Failed to open database connection", "error", err.Error(), "driverName", driverName)
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err = db.Ping(); err != nil {
		logger.Database().Error("Database ping failed", "error", err.Error(), "driverName", driverName)
		return nil, err
	}

	logger.Database().Info("Database connection established", "driverName", driverName, "duration", time.Since(start))
	return &DB{DB: db, DriverName: driverName}, nil
}

// Status returns a snapshot of the connection pool for the status endpoint.
func (db *DB) Status() map[string]any {
	stats := db.Stats()
	return map[string]any{
		"driver":          db.DriverName,
		"openConnections": stats.OpenConnections,
		"inUse":           stats.InUse,
		"idle":            stats.Idle,
	}
}
