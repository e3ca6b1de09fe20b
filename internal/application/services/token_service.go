package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
	"github.com/prelandr/prelandr-go/internal/domain/entities/user"
	"github.com/prelandr/prelandr-go/internal/domain/repositories"
	"github.com/prelandr/prelandr-go/internal/infrastructure/email"
	"github.com/prelandr/prelandr-go/internal/infrastructure/observability/logging"
	"github.com/prelandr/prelandr-go/internal/infrastructure/security"
)

// TokenService issues and redeems single-use download tokens.
type TokenService struct {
	tokens  repositories.TokenRepository
	sites   repositories.SiteRepository
	email   email.Service
	ttl     time.Duration
	baseURL string
	logger  *logging.ChanneledLogger
}

// NewTokenService creates a new token service
func NewTokenService(
	tokens repositories.TokenRepository,
	sites repositories.SiteRepository,
	emailSvc email.Service,
	ttl time.Duration,
	baseURL string,
	logger *logging.ChanneledLogger,
) *TokenService {
	return &TokenService{
		tokens:  tokens,
		sites:   sites,
		email:   emailSvc,
		ttl:     ttl,
		baseURL: baseURL,
		logger:  logger,
	}
}

// Issue creates a token for a site the identity owns.
func (s *TokenService) Issue(ctx context.Context, identity *user.Identity, siteID string) (*content.DownloadToken, error) {
	site, err := s.sites.FindByID(ctx, siteID, identity.OrgID)
	if err != nil {
		return nil, err
	}

	value, err := security.GenerateDownloadToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate download token: %w", err)
	}

	now := time.Now().UTC()
	token := &content.DownloadToken{
		Token:     value,
		SiteID:    site.ID,
		AccountID: identity.AccountID,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}

	if err := s.tokens.Create(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to persist download token: %w", err)
	}

	downloadURL := fmt.Sprintf("%s/api/v1/sites/download-with-token?token=%s",
		strings.TrimRight(s.baseURL, "/"), token.Token)
	if err := s.email.SendDownloadLinkEmail(identity.Email, site.BrandName, downloadURL, s.ttl.String()); err != nil {
		s.logger.Email().Warn("Download link notification failed",
			"siteId", site.ID, "error", err.Error())
	}

	s.logger.Site().Info("Issued download token",
		"siteId", site.ID, "expiresAt", token.ExpiresAt)
	return token, nil
}

// Redeem consumes a token exactly once and returns the site it gates.
// Failed redemptions surface content.ErrTokenExpired or
// content.ErrTokenConsumed for the 410 taxonomy.
func (s *TokenService) Redeem(ctx context.Context, tokenValue string) (*content.Site, error) {
	if err := s.tokens.Redeem(ctx, tokenValue, time.Now().UTC()); err != nil {
		return nil, err
	}

	token, err := s.tokens.Find(ctx, tokenValue)
	if err != nil {
		return nil, err
	}

	site, err := s.sites.FindByIDAny(ctx, token.SiteID)
	if err != nil {
		return nil, err
	}

	s.logger.Site().Info("Redeemed download token", "siteId", site.ID)
	return site, nil
}
