// Package database provides schema creation and migration
package database

import (
	"database/sql"
	"fmt"
)

// TableCreator handles the creation of the database schema.
type TableCreator struct{}

// NewTableCreator creates a new TableCreator.
func NewTableCreator() *TableCreator {
	return &TableCreator{}
}

var tables = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id TEXT PRIMARY KEY,
		org_id TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS sites (
		id TEXT PRIMARY KEY,
		slug TEXT NOT NULL UNIQUE,
		template_id TEXT NOT NULL CHECK (template_id IN (
			't1','t2','t3','t4','t5','t6','t7','t8',
			't9','t10','t11','t12','t13','t14','t15'
		)),
		brand_name TEXT NOT NULL,
		logo_url TEXT NOT NULL DEFAULT '',
		industry TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		cta_url TEXT NOT NULL DEFAULT '',
		color_primary TEXT NOT NULL DEFAULT '',
		color_secondary TEXT NOT NULL DEFAULT '',
		color_accent TEXT NOT NULL DEFAULT '',
		headline TEXT NOT NULL DEFAULT '',
		subheadline TEXT NOT NULL DEFAULT '',
		cta TEXT NOT NULL DEFAULT '',
		popup_title TEXT NOT NULL DEFAULT '',
		popup_message TEXT NOT NULL DEFAULT '',
		popup_prize TEXT NOT NULL DEFAULT '',
		game_balance INTEGER NOT NULL DEFAULT 0,
		wheel_values TEXT NOT NULL DEFAULT '',
		generated_html TEXT NOT NULL DEFAULT '',
		generated_css TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'draft' CHECK (status IN ('draft','published')),
		account_id TEXT NOT NULL,
		org_id TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (account_id) REFERENCES accounts(id)
	)`,
	`CREATE TABLE IF NOT EXISTS download_tokens (
		token TEXT PRIMARY KEY,
		site_id TEXT NOT NULL,
		account_id TEXT NOT NULL,
		expires_at TIMESTAMP NOT NULL,
		used INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (site_id) REFERENCES sites(id)
	)`,
}

var indexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_sites_org ON sites(org_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tokens_site ON download_tokens(site_id)`,
	`CREATE INDEX IF NOT EXISTS idx_accounts_email ON accounts(email)`,
}

// CreateSchema executes all necessary queries to build the tables and indexes.
func (tc *TableCreator) CreateSchema(db *sql.DB) error {
	for _, tableSQL := range tables {
		if _, err := db.Exec(tableSQL); err != nil {
			return fmt.Errorf("failed to create table for query [%s]: %w", tableSQL, err)
		}
	}

	for _, indexSQL := range indexes {
		if _, err := db.Exec(indexSQL); err != nil {
			return fmt.Errorf("failed to create index for query [%s]: %w", indexSQL, err)
		}
	}
	return nil
}
