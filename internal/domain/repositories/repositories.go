// Package repositories defines the repository interfaces for persisted
// entities. These abstract the data persistence details, ensuring the core
// application is clean and decoupled from the database.
package repositories

import (
	"context"
	"time"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
	"github.com/prelandr/prelandr-go/internal/domain/entities/user"
)

// SiteRepository defines the operations for persisting Site entities.
// Finders that take an orgID filter by ownership and return
// content.ErrNotFound on any miss, existence and access denial alike.
type SiteRepository interface {
	Create(ctx context.Context, site *content.Site) error
	FindBySlug(ctx context.Context, slug string) (*content.Site, error)
	FindByID(ctx context.Context, id, orgID string) (*content.Site, error)
	// FindByIDAny skips the ownership filter. Only token redemption,
	// which carries its own proof of access, may use it.
	FindByIDAny(ctx context.Context, id string) (*content.Site, error)
	ListByOrg(ctx context.Context, orgID string) ([]*content.Site, error)
	UpdateGenerated(ctx context.Context, id, templateID, html, css string) error
	UpdateBrand(ctx context.Context, site *content.Site) error
	UpdateStatus(ctx context.Context, id, status string) error
	SlugExists(ctx context.Context, slug string) (bool, error)
}

// TokenRepository defines the operations for download token issuance and
// redemption. Redeem must be a single atomic conditional update so that
// concurrent redemptions of the same token succeed at most once.
type TokenRepository interface {
	Create(ctx context.Context, token *content.DownloadToken) error
	Find(ctx context.Context, token string) (*content.DownloadToken, error)
	Redeem(ctx context.Context, token string, now time.Time) error
}

// AccountRepository defines the operations for persisting Account entities.
type AccountRepository interface {
	Create(ctx context.Context, account *user.Account) error
	FindByEmail(ctx context.Context, email string) (*user.Account, error)
	FindByID(ctx context.Context, id string) (*user.Account, error)
}
