// Package routes provides HTTP route configuration for the presentation layer.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/prelandr/prelandr-go/internal/application/container"
	"github.com/prelandr/prelandr-go/internal/presentation/http/handlers"
	"github.com/prelandr/prelandr-go/internal/presentation/http/middleware"
)

// SetupRoutes configures all HTTP routes and middleware with dependency injection.
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	// Initialize handlers
	authHandlers := handlers.NewAuthHandlers(container.AuthService, container.Logger)
	siteHandlers := handlers.NewSiteHandlers(container.SiteService, container.Logger)
	exportHandlers := handlers.NewExportHandlers(container.SiteService, container.ExportService, container.TokenService, container.Logger)
	previewHandlers := handlers.NewPreviewHandlers(container.TemplateRegistry, container.Logger)
	dbHandlers := handlers.NewDBHandlers(container.DB, container.Logger)

	api := r.Group("/api/v1")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})
		api.GET("/db/status", dbHandlers.GetStatus)

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandlers.PostRegister)
			auth.POST("/login", authHandlers.PostLogin)
		}

		// Token redemption carries its own credential; the preview
		// socket is gated by CORS on the editor page.
		api.GET("/sites/download-with-token", exportHandlers.GetDownloadWithToken)
		api.GET("/preview/ws", previewHandlers.GetPreviewWS)

		sites := api.Group("/sites")
		sites.Use(middleware.AuthRequired())
		{
			sites.GET("", siteHandlers.GetSites)
			sites.POST("/generate", siteHandlers.PostGenerate)
			sites.POST("/regenerate", siteHandlers.PostRegenerate)
			sites.POST("/ai-regenerate", siteHandlers.PostAIRegenerate)
			sites.POST("/publish", siteHandlers.PostPublish)
			sites.GET("/export", exportHandlers.GetExport)
			sites.POST("/download-token", exportHandlers.PostDownloadToken)
		}
	}

	return r
}
