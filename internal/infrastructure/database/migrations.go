package database

import (
	"database/sql"
	"fmt"
	"strings"
)

// migration is one versioned, idempotent schema change. Versions run in
// order exactly once; schema_migrations records what has been applied.
type migration struct {
	version     int
	description string
	apply       func(tx *sql.Tx) error
}

var migrations = []migration{
	{
		version:     1,
		description: "widen sites.template_id check constraint to the full catalog",
		apply:       widenTemplateConstraint,
	},
}

// Migrate applies all pending migrations inside transactions.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	for _, m := range migrations {
		var exists bool
		err := db.QueryRow(`SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = ?)`, m.version).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check migration %d: %w", m.version, err)
		}
		if exists {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.version, err)
		}

		if err := m.apply(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.description, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, m.version); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.version, err)
		}
	}
	return nil
}

// widenTemplateConstraint rebuilds the sites table for databases created when
// the check constraint only admitted t1..t8. SQLite cannot alter a check
// constraint in place, so the table is recreated and the rows are copied.
// Databases created against the current schema are detected and skipped.
func widenTemplateConstraint(tx *sql.Tx) error {
	var createSQL string
	err := tx.QueryRow(`SELECT sql FROM sqlite_master WHERE type = 'table' AND name = 'sites'`).Scan(&createSQL)
	if err == sql.ErrNoRows {
		// Fresh database; CreateSchema already built the widened table.
		return nil
	}
	if err != nil {
		return err
	}
	if strings.Contains(createSQL, "'t15'") {
		return nil
	}

	stmts := []string{
		`ALTER TABLE sites RENAME TO sites_legacy`,
		tables[1], // current sites definition with the widened constraint
		`INSERT INTO sites SELECT * FROM sites_legacy`,
		`DROP TABLE sites_legacy`,
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
