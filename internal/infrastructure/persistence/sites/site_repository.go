// Package sites provides the site repository
package sites

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
)

const siteColumns = `id, slug, template_id, brand_name, logo_url, industry, description, cta_url,
	color_primary, color_secondary, color_accent, headline, subheadline, cta,
	popup_title, popup_message, popup_prize, game_balance, wheel_values,
	generated_html, generated_css, status, account_id, org_id, created_at, updated_at`

// SiteRepository persists Site entities.
type SiteRepository struct {
	db *sql.DB
}

// NewSiteRepository creates a site repository over the shared connection.
func NewSiteRepository(db *sql.DB) *SiteRepository {
	return &SiteRepository{db: db}
}

func (r *SiteRepository) Create(ctx context.Context, site *content.Site) error {
	now := time.Now().UTC()
	site.CreatedAt = now
	site.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `INSERT INTO sites (`+siteColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		site.ID, site.Slug, site.TemplateID, site.BrandName, site.LogoURL, site.Industry,
		site.Description, site.CTAURL,
		site.ColorPrimary, site.ColorSecondary, site.ColorAccent,
		site.Headline, site.Subheadline, site.CTA,
		site.PopupTitle, site.PopupMessage, site.PopupPrize, site.GameBalance, site.WheelValues,
		site.GeneratedHTML, site.GeneratedCSS, site.Status, site.AccountID, site.OrgID,
		site.CreatedAt, site.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert site %s: %w", site.Slug, err)
	}
	return nil
}

func (r *SiteRepository) FindBySlug(ctx context.Context, slug string) (*content.Site, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+siteColumns+` FROM sites WHERE slug = ?`, slug)
	return scanSite(row)
}

// FindByID loads a site scoped to the requesting organization. A row owned
// by another org reads the same as a missing row.
func (r *SiteRepository) FindByID(ctx context.Context, id, orgID string) (*content.Site, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+siteColumns+` FROM sites WHERE id = ? AND org_id = ?`, id, orgID)
	return scanSite(row)
}

// FindByIDAny loads a site without the ownership filter. Token
// redemption is the only caller; everything else goes through FindByID.
func (r *SiteRepository) FindByIDAny(ctx context.Context, id string) (*content.Site, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+siteColumns+` FROM sites WHERE id = ?`, id)
	return scanSite(row)
}

func (r *SiteRepository) ListByOrg(ctx context.Context, orgID string) ([]*content.Site, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+siteColumns+` FROM sites WHERE org_id = ? ORDER BY created_at DESC`, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites for org %s: %w", orgID, err)
	}
	defer rows.Close()

	var result []*content.Site
	for rows.Next() {
		site, err := scanSite(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, site)
	}
	return result, rows.Err()
}

func (r *SiteRepository) UpdateGenerated(ctx context.Context, id, templateID, html, css string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE sites SET template_id = ?, generated_html = ?, generated_css = ?, updated_at = ? WHERE id = ?`,
		templateID, html, css, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update generated output for site %s: %w", id, err)
	}
	return requireRow(res)
}

func (r *SiteRepository) UpdateBrand(ctx context.Context, site *content.Site) error {
	site.UpdatedAt = time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `UPDATE sites SET
		template_id = ?, brand_name = ?, logo_url = ?, industry = ?, description = ?, cta_url = ?,
		color_primary = ?, color_secondary = ?, color_accent = ?,
		headline = ?, subheadline = ?, cta = ?,
		popup_title = ?, popup_message = ?, popup_prize = ?, game_balance = ?, wheel_values = ?,
		generated_html = ?, generated_css = ?, updated_at = ?
		WHERE id = ?`,
		site.TemplateID, site.BrandName, site.LogoURL, site.Industry, site.Description, site.CTAURL,
		site.ColorPrimary, site.ColorSecondary, site.ColorAccent,
		site.Headline, site.Subheadline, site.CTA,
		site.PopupTitle, site.PopupMessage, site.PopupPrize, site.GameBalance, site.WheelValues,
		site.GeneratedHTML, site.GeneratedCSS, site.UpdatedAt, site.ID)
	if err != nil {
		return fmt.Errorf("failed to update site %s: %w", site.ID, err)
	}
	return requireRow(res)
}

func (r *SiteRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE sites SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update status for site %s: %w", id, err)
	}
	return requireRow(res)
}

func (r *SiteRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM sites WHERE slug = ?)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug %s: %w", slug, err)
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSite(row rowScanner) (*content.Site, error) {
	var s content.Site
	err := row.Scan(
		&s.ID, &s.Slug, &s.TemplateID, &s.BrandName, &s.LogoURL, &s.Industry, &s.Description, &s.CTAURL,
		&s.ColorPrimary, &s.ColorSecondary, &s.ColorAccent, &s.Headline, &s.Subheadline, &s.CTA,
		&s.PopupTitle, &s.PopupMessage, &s.PopupPrize, &s.GameBalance, &s.WheelValues,
		&s.GeneratedHTML, &s.GeneratedCSS, &s.Status, &s.AccountID, &s.OrgID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, content.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan site row: %w", err)
	}
	return &s, nil
}

func requireRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return content.ErrNotFound
	}
	return nil
}
