package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prelandr/prelandr-go/internal/application/services"
	"github.com/prelandr/prelandr-go/internal/domain/entities/content"
	"github.com/prelandr/prelandr-go/internal/infrastructure/observability/logging"
	"github.com/prelandr/prelandr-go/internal/presentation/http/middleware"
)

// SiteHandlers contains the site lifecycle HTTP handlers
type SiteHandlers struct {
	siteService *services.SiteService
	logger      *logging.ChanneledLogger
}

// NewSiteHandlers creates site handlers with injected dependencies
func NewSiteHandlers(siteService *services.SiteService, logger *logging.ChanneledLogger) *SiteHandlers {
	return &SiteHandlers{siteService: siteService, logger: logger}
}

// respondSiteError maps domain errors onto the response taxonomy.
// Missing rows and ownership misses both read as 404.
func respondSiteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, content.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "site not found"})
	case errors.Is(err, content.ErrTemplateRender):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "template render failed", "details": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error", "details": err.Error()})
	}
}

// PostGenerate handles POST /api/v1/sites/generate
func (h *SiteHandlers) PostGenerate(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req services.GenerateSiteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.BrandName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "brandName is required"})
		return
	}

	site, err := h.siteService.Generate(c.Request.Context(), identity, req)
	if err != nil {
		respondSiteError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"site": site, "slug": site.Slug})
}

// PostRegenerate handles POST /api/v1/sites/regenerate
func (h *SiteHandlers) PostRegenerate(c *gin.Context) {
	var req struct {
		Slug string `json:"slug" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug is required"})
		return
	}

	site, err := h.siteService.Regenerate(c.Request.Context(), req.Slug)
	if err != nil {
		respondSiteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"site": site})
}

// PostAIRegenerate handles POST /api/v1/sites/ai-regenerate
func (h *SiteHandlers) PostAIRegenerate(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req services.AIRegenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.SiteID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "siteId is required"})
		return
	}

	site, err := h.siteService.AIRegenerate(c.Request.Context(), identity, req)
	if err != nil {
		respondSiteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"site": site})
}

// PostPublish handles POST /api/v1/sites/publish
func (h *SiteHandlers) PostPublish(c *gin.Context) {
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

	site, err := h.siteService.Publish(c.Request.Context(), identity, req.SiteID)
	if err != nil {
		respondSiteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"site": site})
}

// GetSites handles GET /api/v1/sites
func (h *SiteHandlers) GetSites(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	sites, err := h.siteService.ListOwned(c.Request.Context(), identity)
	if err != nil {
		respondSiteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sites": sites})
}
