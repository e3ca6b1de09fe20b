package content

import (
	"errors"
	"time"
)

// Token-state errors, both surfaced as HTTP 410.
var (
	ErrTokenExpired  = errors.New("download token expired")
	ErrTokenConsumed = errors.New("download token already used")
)

// DownloadToken is a single-use, time-limited credential gating a protected
// export download. Lifecycle: issued -> (consumed | expired).
type DownloadToken struct {
	Token     string    `json:"token"`
	SiteID    string    `json:"siteId"`
	AccountID string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	Used      bool      `json:"-"`
	CreatedAt time.Time `json:"-"`
}

// Expired reports whether the token has passed its expiry horizon.
func (t *DownloadToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
