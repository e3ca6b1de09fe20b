// Package users provides the account repository
package users

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/prelandr/prelandr-go/internal/domain/entities/user"
)

// AccountRepository persists Account entities.
type AccountRepository struct {
	db *sql.DB
}

// NewAccountRepository creates an account repository over the shared connection.
func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account *user.Account) error {
	account.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (id, org_id, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`,
		account.ID, account.OrgID, account.Email, account.PasswordHash, account.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert account %s: %w", account.Email, err)
	}
	return nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*user.Account, error) {
	return r.findOne(ctx, `SELECT id, org_id, email, password_hash, created_at FROM accounts WHERE email = ?`, email)
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*user.Account, error) {
	return r.findOne(ctx, `SELECT id, org_id, email, password_hash, created_at FROM accounts WHERE id = ?`, id)
}

func (r *AccountRepository) findOne(ctx context.Context, query string, arg any) (*user.Account, error) {
	var a user.Account
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&a.ID, &a.OrgID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	return &a, nil
}
