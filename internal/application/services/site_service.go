package services

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
	"github.com/prelandr/prelandr-go/internal/domain/entities/user"
	"github.com/prelandr/prelandr-go/internal/domain/repositories"
	"github.com/prelandr/prelandr-go/internal/infrastructure/email"
	"github.com/prelandr/prelandr-go/internal/infrastructure/observability/logging"
	"github.com/prelandr/prelandr-go/internal/infrastructure/security"
	"github.com/prelandr/prelandr-go/internal/presentation/templates"
)

// GenerateSiteRequest is the input for first-time site generation.
type GenerateSiteRequest struct {
	BrandName       string               `json:"brandName"`
	Industry        string               `json:"industry"`
	Description     string               `json:"description"`
	LogoURL         string               `json:"logoUrl"`
	CTAURL          string               `json:"ctaUrl"`
	TemplateID      string               `json:"templateId"`
	PreferredColors content.ColorPalette `json:"preferredColors"`
}

// AIRegenerateRequest is the input for targeted regeneration of an
// existing site.
type AIRegenerateRequest struct {
	SiteID           string               `json:"siteId"`
	TemplateID       string               `json:"templateId"`
	BrandName        string               `json:"brandName"`
	Industry         string               `json:"industry"`
	Description      string               `json:"description"`
	LogoURL          string               `json:"logoUrl"`
	CurrentColors    content.ColorPalette `json:"currentColors"`
	CurrentContent   content.CopyBlock    `json:"currentContent"`
	RegenerationType string               `json:"regenerationType"`
}

// SiteService orchestrates copy, palette, rendering and persistence
// for the site lifecycle.
type SiteService struct {
	sites    repositories.SiteRepository
	registry *templates.Registry
	copy     *CopyService
	palette  *PaletteService
	email    email.Service
	baseURL  string
	logger   *logging.ChanneledLogger
}

// NewSiteService creates a new site service
func NewSiteService(
	sites repositories.SiteRepository,
	registry *templates.Registry,
	copySvc *CopyService,
	paletteSvc *PaletteService,
	emailSvc email.Service,
	baseURL string,
	logger *logging.ChanneledLogger,
) *SiteService {
	return &SiteService{
		sites:    sites,
		registry: registry,
		copy:     copySvc,
		palette:  paletteSvc,
		email:    emailSvc,
		baseURL:  baseURL,
		logger:   logger,
	}
}

// Generate builds a brand-new draft site: copy, palette, render, insert.
func (s *SiteService) Generate(ctx context.Context, identity *user.Identity, req GenerateSiteRequest) (*content.Site, error) {
	templateID := req.TemplateID
	if !s.registry.IsValid(templateID) {
		templateID = templates.DefaultTemplateID
	}

	copySet := s.copy.GenerateMarketingCopy(ctx, CopyRequest{
		BrandName:   req.BrandName,
		Industry:    req.Industry,
		Description: req.Description,
	})

	palette := s.palette.Resolve(ctx, req.PreferredColors, req.LogoURL, req.Industry)

	brand := &content.BrandConfig{
		BrandName:   req.BrandName,
		LogoURL:     req.LogoURL,
		Industry:    req.Industry,
		Description: req.Description,
		CTAURL:      req.CTAURL,
		Colors:      palette,
	}
	copySet.ApplyToBrand(brand)

	result, err := s.registry.RenderWithFallback(templateID, brand)
	if err != nil {
		return nil, err
	}

	slug, err := s.uniqueSlug(ctx, req.BrandName)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate slug: %w", err)
	}

	now := time.Now().UTC()
	site := &content.Site{
		ID:            security.GenerateULID(),
		Slug:          slug,
		TemplateID:    templateID,
		GeneratedHTML: result.HTML,
		GeneratedCSS:  result.CSS,
		Status:        content.StatusDraft,
		AccountID:     identity.AccountID,
		OrgID:         identity.OrgID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	site.ApplyBrand(brand)

	if err := s.sites.Create(ctx, site); err != nil {
		return nil, fmt.Errorf("failed to persist site: %w", err)
	}

	s.logger.Site().Info("Generated site",
		"siteId", site.ID, "slug", site.Slug, "templateId", templateID)
	return site, nil
}

// Regenerate re-renders an existing site from its stored brand
// columns. Legacy template ids are recovered from the stored HTML
// before rendering.
func (s *SiteService) Regenerate(ctx context.Context, slug string) (*content.Site, error) {
	site, err := s.sites.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	templateID := templates.RecoverAppTemplateID(site.TemplateID, site.GeneratedHTML)
	result, err := s.registry.RenderWithFallback(templateID, site.BrandConfig())
	if err != nil {
		return nil, err
	}

	if err := s.sites.UpdateGenerated(ctx, site.ID, templateID, result.HTML, result.CSS); err != nil {
		return nil, fmt.Errorf("failed to persist regenerated site: %w", err)
	}

	site.TemplateID = templateID
	site.GeneratedHTML = result.HTML
	site.GeneratedCSS = result.CSS
	site.UpdatedAt = time.Now().UTC()

	s.logger.Site().Info("Regenerated site", "siteId", site.ID, "templateId", templateID)
	return site, nil
}

// flourishes prefix headlines during layout regeneration so repeated
// runs visibly differ.
var flourishes = []string{"🎰 ", "🔥 ", "⭐ ", "💎 ", "🎁 ", "⚡ "}

// AIRegenerate reworks an existing site. The "copy" variant re-runs
// copy generation; the "layout" variant keeps the copy but perturbs
// the headline and re-renders.
func (s *SiteService) AIRegenerate(ctx context.Context, identity *user.Identity, req AIRegenerateRequest) (*content.Site, error) {
	site, err := s.sites.FindByID(ctx, req.SiteID, identity.OrgID)
	if err != nil {
		return nil, err
	}

	brand := site.BrandConfig()
	if req.BrandName != "" {
		brand.BrandName = req.BrandName
	}
	if req.Industry != "" {
		brand.Industry = req.Industry
	}
	if req.Description != "" {
		brand.Description = req.Description
	}
	if req.LogoURL != "" {
		brand.LogoURL = req.LogoURL
	}
	if req.CurrentColors.Primary != "" {
		brand.Colors = req.CurrentColors
	}
	if req.CurrentContent.Headline != "" {
		brand.Copy = req.CurrentContent
	}

	templateID := site.TemplateID
	if s.registry.IsValid(req.TemplateID) {
		templateID = req.TemplateID
	}

	switch req.RegenerationType {
	case "copy":
		copySet := s.copy.GenerateMarketingCopy(ctx, CopyRequest{
			BrandName:   brand.BrandName,
			Industry:    brand.Industry,
			Description: brand.Description,
		})
		copySet.ApplyToBrand(brand)
	default: // "layout"
		flourish := flourishes[rand.Intn(len(flourishes))]
		if !strings.HasPrefix(brand.Copy.Headline, flourish) {
			brand.Copy.Headline = flourish + strings.TrimSpace(brand.Copy.Headline)
		}
	}

	result, err := s.registry.RenderWithFallback(templateID, brand)
	if err != nil {
		return nil, err
	}

	site.ApplyBrand(brand)
	site.TemplateID = templateID
	site.GeneratedHTML = result.HTML
	site.GeneratedCSS = result.CSS
	site.UpdatedAt = time.Now().UTC()

	if err := s.sites.UpdateBrand(ctx, site); err != nil {
		return nil, fmt.Errorf("failed to persist regenerated site: %w", err)
	}

	s.logger.Site().Info("AI-regenerated site",
		"siteId", site.ID, "type", req.RegenerationType, "templateId", templateID)
	return site, nil
}

// Publish moves a draft to published and notifies the owner by email.
// Email failure is logged, never surfaced.
func (s *SiteService) Publish(ctx context.Context, identity *user.Identity, siteID string) (*content.Site, error) {
	site, err := s.sites.FindByID(ctx, siteID, identity.OrgID)
	if err != nil {
		return nil, err
	}

	if site.Status != content.StatusPublished {
		if err := s.sites.UpdateStatus(ctx, site.ID, content.StatusPublished); err != nil {
			return nil, fmt.Errorf("failed to publish site: %w", err)
		}
		site.Status = content.StatusPublished
		site.UpdatedAt = time.Now().UTC()
	}

	siteURL := fmt.Sprintf("%s/sites/%s", strings.TrimRight(s.baseURL, "/"), site.Slug)
	if err := s.email.SendSitePublishedEmail(identity.Email, site.BrandName, site.TemplateID, siteURL); err != nil {
		s.logger.Email().Warn("Publish notification failed",
			"siteId", site.ID, "error", err.Error())
	}

	s.logger.Site().Info("Published site", "siteId", site.ID, "slug", site.Slug)
	return site, nil
}

// FindOwned loads a site with the ownership filter applied.
func (s *SiteService) FindOwned(ctx context.Context, identity *user.Identity, siteID string) (*content.Site, error) {
	return s.sites.FindByID(ctx, siteID, identity.OrgID)
}

// ListOwned returns every site belonging to the identity's org.
func (s *SiteService) ListOwned(ctx context.Context, identity *user.Identity) ([]*content.Site, error) {
	return s.sites.ListByOrg(ctx, identity.OrgID)
}

var slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a brand name into a URL-safe slug.
func Slugify(name string) string {
	slug := slugInvalidChars.ReplaceAllString(strings.ToLower(name), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "site"
	}
	return slug
}

// uniqueSlug appends a random suffix until the slug is free. Five
// attempts is far more than 3 bytes of entropy ever needs.
func (s *SiteService) uniqueSlug(ctx context.Context, brandName string) (string, error) {
	base := Slugify(brandName)

	exists, err := s.sites.SlugExists(ctx, base)
	if err != nil {
		return "", err
	}
	if !exists {
		return base, nil
	}

	for attempt := 0; attempt < 5; attempt++ {
		suffix, err := security.GenerateSlugSuffix()
		if err != nil {
			return "", err
		}
		candidate := fmt.Sprintf("%s-%s", base, suffix)
		exists, err := s.sites.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("could not allocate unique slug for %q", base)
}
