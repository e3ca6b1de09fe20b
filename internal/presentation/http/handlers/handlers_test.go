package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prelandr/prelandr-go/internal/application/services"
	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
	"github.com/prelandr/prelandr-go/internal/domain/entities/user"
	"github.com/prelandr/prelandr-go/internal/infrastructure/ai"
	"github.com/prelandr/prelandr-go/internal/infrastructure/email"
	"github.com/prelandr/prelandr-go/internal/infrastructure/media"
	"github.com/prelandr/prelandr-go/internal/infrastructure/observability/logging"
	"github.com/prelandr/prelandr-go/internal/infrastructure/security"
	"github.com/prelandr/prelandr-go/internal/presentation/http/middleware"
	"github.com/prelandr/prelandr-go/internal/presentation/templates"
	"github.com/prelandr/prelandr-go/pkg/config"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// fakeSiteRepo is an in-memory SiteRepository.
type fakeSiteRepo struct {
	mu    sync.Mutex
	sites map[string]*content.Site
}

func newFakeSiteRepo() *fakeSiteRepo {
	return &fakeSiteRepo{sites: make(map[string]*content.Site)}
}

func (r *fakeSiteRepo) Create(_ context.Context, site *content.Site) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sites[site.ID] = site
	return nil
}

func (r *fakeSiteRepo) FindBySlug(_ context.Context, slug string) (*content.Site, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sites {
		if s.Slug == slug {
			copied := *s
			return &copied, nil
		}
	}
	return nil, content.ErrNotFound
}

func (r *fakeSiteRepo) FindByID(_ context.Context, id, orgID string) (*content.Site, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sites[id]; ok && s.OrgID == orgID {
		copied := *s
		return &copied, nil
	}
	return nil, content.ErrNotFound
}

func (r *fakeSiteRepo) FindByIDAny(_ context.Context, id string) (*content.Site, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sites[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, content.ErrNotFound
}

func (r *fakeSiteRepo) ListByOrg(_ context.Context, orgID string) ([]*content.Site, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*content.Site
	for _, s := range r.sites {
		if s.OrgID == orgID {
			copied := *s
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeSiteRepo) UpdateGenerated(_ context.Context, id, templateID, html, css string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sites[id]
	if !ok {
		return content.ErrNotFound
	}
	s.TemplateID, s.GeneratedHTML, s.GeneratedCSS = templateID, html, css
	return nil
}

func (r *fakeSiteRepo) UpdateBrand(_ context.Context, site *content.Site) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sites[site.ID]; !ok {
		return content.ErrNotFound
	}
	copied := *site
	r.sites[site.ID] = &copied
	return nil
}

func (r *fakeSiteRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sites[id]
	if !ok {
		return content.ErrNotFound
	}
	s.Status = status
	return nil
}

func (r *fakeSiteRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sites {
		if s.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

// fakeTokenRepo is an in-memory TokenRepository with the same atomic
// redeem semantics as the SQL implementation.
type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*content.DownloadToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*content.DownloadToken)}
}

func (r *fakeTokenRepo) Create(_ context.Context, token *content.DownloadToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *token
	r.tokens[token.Token] = &copied
	return nil
}

func (r *fakeTokenRepo) Find(_ context.Context, token string) (*content.DownloadToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tokens[token]; ok {
		copied := *t
		return &copied, nil
	}
	return nil, content.ErrNotFound
}

func (r *fakeTokenRepo) Redeem(_ context.Context, token string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[token]
	if !ok {
		return content.ErrNotFound
	}
	if !t.Used && now.Before(t.ExpiresAt) {
		t.Used = true
		return nil
	}
	if t.Expired(now) {
		return content.ErrTokenExpired
	}
	return content.ErrTokenConsumed
}

type sentEmail struct {
	to, siteName, url, extra string
}

// recordingEmailService captures outbound notifications for assertions.
type recordingEmailService struct {
	mu        sync.Mutex
	published []sentEmail
	downloads []sentEmail
}

var _ email.Service = (*recordingEmailService)(nil)

func (s *recordingEmailService) SendSitePublishedEmail(toEmail, siteName, templateID, siteURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published = append(s.published, sentEmail{to: toEmail, siteName: siteName, url: siteURL, extra: templateID})
	return nil
}

func (s *recordingEmailService) SendDownloadLinkEmail(toEmail, siteName, downloadURL, expiresIn string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.downloads = append(s.downloads, sentEmail{to: toEmail, siteName: siteName, url: downloadURL, extra: expiresIn})
	return nil
}

type testEnv struct {
	router   *gin.Engine
	siteRepo *fakeSiteRepo
	emails   *recordingEmailService
	token    string
	identity *user.Identity
}

func testLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	cfg := logging.DefaultLoggerConfig()
	cfg.OutputToConsole = false
	cfg.OutputToFile = true
	cfg.LogDirectory = t.TempDir()
	logger, err := logging.NewChanneledLogger(cfg)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	return logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := testLogger(t)

	siteRepo := newFakeSiteRepo()
	tokenRepo := newFakeTokenRepo()

	registry := templates.NewRegistry(logger)
	logos := media.NewLogoProcessor(1 << 20)
	emailSvc := &recordingEmailService{}

	copySvc := services.NewCopyService(ai.NewLemurClient(""), time.Second, logger)
	paletteSvc := services.NewPaletteService(logos, logger)
	siteSvc := services.NewSiteService(siteRepo, registry, copySvc, paletteSvc, emailSvc, "https://prelandr.test", logger)
	exportSvc := services.NewExportService(logos, logger)
	tokenSvc := services.NewTokenService(tokenRepo, siteRepo, emailSvc, 5*time.Minute, "https://prelandr.test", logger)

	siteHandlers := NewSiteHandlers(siteSvc, logger)
	exportHandlers := NewExportHandlers(siteSvc, exportSvc, tokenSvc, logger)

	r := gin.New()
	api := r.Group("/api/v1")
	api.GET("/sites/download-with-token", exportHandlers.GetDownloadWithToken)
	authed := api.Group("/sites")
	authed.Use(middleware.AuthRequired())
	{
		authed.GET("", siteHandlers.GetSites)
		authed.POST("/generate", siteHandlers.PostGenerate)
		authed.POST("/regenerate", siteHandlers.PostRegenerate)
		authed.POST("/ai-regenerate", siteHandlers.PostAIRegenerate)
		authed.POST("/publish", siteHandlers.PostPublish)
		authed.GET("/export", exportHandlers.GetExport)
		authed.POST("/download-token", exportHandlers.PostDownloadToken)
	}

	account := &user.Account{
		ID:    security.GenerateULID(),
		OrgID: security.GenerateULID(),
		Email: "owner@example.com",
	}
	jwt, err := security.GenerateAccountToken(account, config.JWTSecret, time.Hour)
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}

	return &testEnv{
		router:   r,
		siteRepo: siteRepo,
		emails:   emailSvc,
		token:    jwt,
		identity: &user.Identity{AccountID: account.ID, OrgID: account.OrgID, Email: account.Email},
	}
}

func (e *testEnv) do(method, path string, body any, authed bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) generateSite(t *testing.T) (string, string) {
	t.Helper()
	w := e.do(http.MethodPost, "/api/v1/sites/generate", gin.H{
		"brandName":  "Acme",
		"industry":   "Casino & Gaming",
		"templateId": "t7",
		"ctaUrl":     "https://example.com/play",
	}, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("generate returned %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Slug string       `json:"slug"`
		Site content.Site `json:"site"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	return resp.Site.ID, resp.Slug
}

func TestGenerateEndToEnd(t *testing.T) {
	env := newTestEnv(t)
	id, slug := env.generateSite(t)

	if slug != "acme" {
		t.Errorf("expected slug acme, got %q", slug)
	}

	stored, err := env.siteRepo.FindByIDAny(context.Background(), id)
	if err != nil {
		t.Fatalf("site not persisted: %v", err)
	}
	if stored.Status != content.StatusDraft {
		t.Errorf("new site should be draft, got %s", stored.Status)
	}
	if !strings.Contains(stored.Headline, "Win Big") {
		t.Errorf("gaming fallback copy not applied: %q", stored.Headline)
	}
	if !strings.Contains(stored.GeneratedHTML, "pl-golden-jackpot") {
		t.Error("t7 markup missing from generated output")
	}
}

func TestGenerateRequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodPost, "/api/v1/sites/generate", gin.H{"brandName": "Acme"}, false)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestGenerateRejectsMissingBrandName(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodPost, "/api/v1/sites/generate", gin.H{"industry": "Casino"}, true)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestRegenerateUnknownSlug(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodPost, "/api/v1/sites/regenerate", gin.H{"slug": "ghost"}, true)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestRegenerateRecoversLegacyRow(t *testing.T) {
	env := newTestEnv(t)
	id, slug := env.generateSite(t)

	// Age the row back to the constrained schema: t14 markup stored
	// under its placeholder id t7.
	env.siteRepo.mu.Lock()
	site := env.siteRepo.sites[id]
	site.GeneratedHTML = `<!DOCTYPE html><html><body><div class="pl-live-casino"></div></body></html>`
	site.TemplateID = "t7"
	env.siteRepo.mu.Unlock()

	w := env.do(http.MethodPost, "/api/v1/sites/regenerate", gin.H{"slug": slug}, true)
	if w.Code != http.StatusOK {
		t.Fatalf("regenerate returned %d: %s", w.Code, w.Body.String())
	}

	stored, _ := env.siteRepo.FindByIDAny(context.Background(), id)
	if stored.TemplateID != "t14" {
		t.Errorf("legacy id not recovered, stored as %s", stored.TemplateID)
	}
	if !strings.Contains(stored.GeneratedHTML, "pl-live-casino") {
		t.Error("recovered template not re-rendered")
	}
}

func TestPublishOtherOrgReadsAsNotFound(t *testing.T) {
	env := newTestEnv(t)
	id, _ := env.generateSite(t)

	w := env.do(http.MethodPost, "/api/v1/sites/publish", gin.H{"siteId": id}, true)
	if w.Code != http.StatusOK {
		t.Fatalf("owner publish returned %d", w.Code)
	}

	// A token for a different org hitting the same router.
	stranger := &user.Account{ID: security.GenerateULID(), OrgID: security.GenerateULID(), Email: "other@example.com"}
	strangerJWT, err := security.GenerateAccountToken(stranger, config.JWTSecret, time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sites/publish",
		bytes.NewReader([]byte(fmt.Sprintf(`{"siteId":%q}`, id))))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+strangerJWT)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("cross-org publish should read as 404, got %d", rec.Code)
	}
}

func TestDownloadTokenLifecycle(t *testing.T) {
	env := newTestEnv(t)
	id, _ := env.generateSite(t)

	w := env.do(http.MethodPost, "/api/v1/sites/download-token", gin.H{"siteId": id}, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("token issue returned %d: %s", w.Code, w.Body.String())
	}
	var issued struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &issued); err != nil {
		t.Fatal(err)
	}
	if len(issued.Token) != 32 {
		t.Errorf("expected 32-char token, got %d chars", len(issued.Token))
	}

	// First redemption succeeds without any session.
	first := env.do(http.MethodGet, "/api/v1/sites/download-with-token?token="+issued.Token, nil, false)
	if first.Code != http.StatusOK {
		t.Fatalf("first redemption returned %d: %s", first.Code, first.Body.String())
	}
	if ct := first.Header().Get("Content-Type"); ct != "application/zip" {
		t.Errorf("unexpected content type %q", ct)
	}

	// Second redemption of the same token is gone.
	second := env.do(http.MethodGet, "/api/v1/sites/download-with-token?token="+issued.Token, nil, false)
	if second.Code != http.StatusGone {
		t.Fatalf("replayed token should return 410, got %d", second.Code)
	}
}

func TestDownloadTokenEmailsLinkToOwner(t *testing.T) {
	env := newTestEnv(t)
	id, _ := env.generateSite(t)

	w := env.do(http.MethodPost, "/api/v1/sites/download-token", gin.H{"siteId": id}, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("token issue returned %d: %s", w.Code, w.Body.String())
	}
	var issued struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &issued); err != nil {
		t.Fatal(err)
	}

	if len(env.emails.downloads) != 1 {
		t.Fatalf("expected one download link email, got %d", len(env.emails.downloads))
	}
	sent := env.emails.downloads[0]
	if sent.to != env.identity.Email {
		t.Errorf("email went to %q, expected %q", sent.to, env.identity.Email)
	}
	if !strings.Contains(sent.url, "/api/v1/sites/download-with-token?token="+issued.Token) {
		t.Errorf("download URL %q does not carry the issued token", sent.url)
	}
	if sent.extra == "" {
		t.Error("expected an expiry hint in the email")
	}
}

func TestDownloadWithUnknownToken(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodGet, "/api/v1/sites/download-with-token?token=deadbeef", nil, false)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestExportRequiresOwnership(t *testing.T) {
	env := newTestEnv(t)
	id, _ := env.generateSite(t)

	w := env.do(http.MethodGet, "/api/v1/sites/export?siteId="+id, nil, true)
	if w.Code != http.StatusOK {
		t.Fatalf("owner export returned %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/zip" {
		t.Errorf("unexpected content type %q", ct)
	}
}
