package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prelandr/prelandr-go/internal/application/services"
	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
	"github.com/prelandr/prelandr-go/internal/infrastructure/observability/logging"
	"github.com/prelandr/prelandr-go/internal/presentation/http/middleware"
)

// ExportHandlers contains the export and download-token HTTP handlers
type ExportHandlers struct {
	siteService   *services.SiteService
	exportService *services.ExportService
	tokenService  *services.TokenService
	logger        *logging.ChanneledLogger
}

// NewExportHandlers creates export handlers with injected dependencies
func NewExportHandlers(
	siteService *services.SiteService,
	exportService *services.ExportService,
	tokenService *services.TokenService,
	logger *logging.ChanneledLogger,
) *ExportHandlers {
	return &ExportHandlers{
		siteService:   siteService,
		exportService: exportService,
		tokenService:  tokenService,
		logger:        logger,
	}
}

func serveArchive(c *gin.Context, slug string, archive []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.zip"`, slug))
	c.Data(http.StatusOK, "application/zip", archive)
}

// GetExport handles GET /api/v1/sites/export?siteId=
func (h *ExportHandlers) GetExport(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	siteID := c.Query("siteId")
	if siteID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "siteId is required"})
		return
	}

	site, err := h.siteService.FindOwned(c.Request.Context(), identity, siteID)
	if err != nil {
		respondSiteError(c, err)
		return
	}

	archive, err := h.exportService.BuildArchive(c.Request.Context(), site)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed", "details": err.Error()})
		return
	}

	serveArchive(c, site.Slug, archive)
}

// PostDownloadToken handles POST /api/v1/sites/download-token
func (h *ExportHandlers) PostDownloadToken(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req struct {
		SiteID string `json:"siteId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "siteId is required"})
		return
	}

	token, err := h.tokenService.Issue(c.Request.Context(), identity, req.SiteID)
	if err != nil {
		respondSiteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":     token.Token,
		"expiresAt": token.ExpiresAt,
	})
}

// GetDownloadWithToken handles GET /api/v1/sites/download-with-token?token=
// The token is the credential; no session is required.
func (h *ExportHandlers) GetDownloadWithToken(c *gin.Context) {
	tokenValue := c.Query("token")
	if tokenValue == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	site, err := h.tokenService.Redeem(c.Request.Context(), tokenValue)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrTokenExpired):
			c.JSON(http.StatusGone, gin.H{"error": "download token has expired"})
		case errors.Is(err, content.ErrTokenConsumed):
			c.JSON(http.StatusGone, gin.H{"error": "download token has already been used"})
		case errors.Is(err, content.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "download token not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "download failed", "details": err.Error()})
		}
		return
	}

	archive, err := h.exportService.BuildProtectedArchive(c.Request.Context(), site)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed", "details": err.Error()})
		return
	}

	serveArchive(c, site.Slug, archive)
}
