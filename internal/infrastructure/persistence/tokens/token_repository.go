// Package tokens provides the download token repository
package tokens

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
)

// TokenRepository persists single-use download tokens.
type TokenRepository struct {
	db *sql.DB
}

// NewTokenRepository creates a token repository over the shared connection.
func NewTokenRepository(db *sql.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Create(ctx context.Context, token *content.DownloadToken) error {
	token.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO download_tokens (token, site_id, account_id, expires_at, used, created_at)
		 VALUES (?, ?, ?, ?, 0, ?)`,
		token.Token, token.SiteID, token.AccountID, token.ExpiresAt, token.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert download token: %w", err)
	}
	return nil
}

func (r *TokenRepository) Find(ctx context.Context, token string) (*content.DownloadToken, error) {
	var t content.DownloadToken
	err := r.db.QueryRowContext(ctx,
		`SELECT token, site_id, account_id, expires_at, used, created_at
		 FROM download_tokens WHERE token = ?`, token).
		Scan(&t.Token, &t.SiteID, &t.AccountID, &t.ExpiresAt, &t.Used, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, content.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load download token: %w", err)
	}
	return &t, nil
}

// Redeem flips `used` in a single conditional update so that concurrent
// redemptions of the same token succeed at most once. When the update
// matches no row a follow-up read distinguishes missing, expired, and
// already-consumed tokens for the caller's 404/410 responses.
func (r *TokenRepository) Redeem(ctx context.Context, token string, now time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE download_tokens SET used = 1 WHERE token = ? AND used = 0 AND expires_at > ?`,
		token, now)
	if err != nil {
		return fmt.Errorf("failed to redeem download token: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 1 {
		return nil
	}

	existing, err := r.Find(ctx, token)
	if err != nil {
		return err
	}
	if existing.Expired(now) {
		return content.ErrTokenExpired
	}
	return content.ErrTokenConsumed
}
