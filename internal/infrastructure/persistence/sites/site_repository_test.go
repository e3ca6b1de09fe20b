package sites

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
)

var siteRowColumns = []string{
	"id", "slug", "template_id", "brand_name", "logo_url", "industry", "description", "cta_url",
	"color_primary", "color_secondary", "color_accent", "headline", "subheadline", "cta",
	"popup_title", "popup_message", "popup_prize", "game_balance", "wheel_values",
	"generated_html", "generated_css", "status", "account_id", "org_id", "created_at", "updated_at",
}

func siteRow() *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows(siteRowColumns).AddRow(
		"site-1", "acme", "t7", "Acme", "", "Casino & Gaming", "", "https://example.com",
		"#112233", "#445566", "#ffd700", "Acme — Win Big Today!", "Spin and win.", "PLAY NOW",
		"", "", "", 1000, "",
		"<!DOCTYPE html><html><div class=\"pl-golden-jackpot\"></div></html>", "", "draft",
		"acct-1", "org-1", now, now,
	)
}

func TestFindByIDScopedToOrg(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM sites WHERE id = \? AND org_id = \?`).
		WithArgs("site-1", "org-1").
		WillReturnRows(siteRow())

	repo := NewSiteRepository(db)
	site, err := repo.FindByID(context.Background(), "site-1", "org-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if site.Slug != "acme" || site.TemplateID != "t7" {
		t.Errorf("unexpected site: %+v", site)
	}
}

func TestFindByIDWrongOrgReadsAsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM sites WHERE id = \? AND org_id = \?`).
		WithArgs("site-1", "other-org").
		WillReturnRows(sqlmock.NewRows(siteRowColumns))

	repo := NewSiteRepository(db)
	_, err = repo.FindByID(context.Background(), "site-1", "other-org")
	if !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindBySlugMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM sites WHERE slug = \?`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(siteRowColumns))

	repo := NewSiteRepository(db)
	_, err = repo.FindBySlug(context.Background(), "ghost")
	if !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateGeneratedRequiresRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE sites SET template_id = \?, generated_html = \?, generated_css = \?, updated_at = \? WHERE id = \?`).
		WithArgs("t9", "<html>", "css", sqlmock.AnyArg(), "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewSiteRepository(db)
	err = repo.UpdateGenerated(context.Background(), "ghost", "t9", "<html>", "css")
	if !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSlugExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("acme").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	repo := NewSiteRepository(db)
	exists, err := repo.SlugExists(context.Background(), "acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Error("expected slug to exist")
	}
}
