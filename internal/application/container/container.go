// Package container provides dependency injection for all singleton services
package container

import (
	"github.com/prelandr/prelandr-go/internal/application/services"
	"github.com/prelandr/prelandr-go/internal/domain/repositories"
	"github.com/prelandr/prelandr-go/internal/infrastructure/ai"
	"github.com/prelandr/prelandr-go/internal/infrastructure/email"
	"github.com/prelandr/prelandr-go/internal/infrastructure/media"
	"github.com/prelandr/prelandr-go/internal/infrastructure/observability/logging"
	"github.com/prelandr/prelandr-go/internal/infrastructure/persistence/database"
	"github.com/prelandr/prelandr-go/internal/infrastructure/persistence/sites"
	"github.com/prelandr/prelandr-go/internal/infrastructure/persistence/tokens"
	"github.com/prelandr/prelandr-go/internal/infrastructure/persistence/users"
	"github.com/prelandr/prelandr-go/internal/presentation/templates"
	"github.com/prelandr/prelandr-go/pkg/config"
)

// Container holds all singleton services and infrastructure dependencies
type Container struct {
	Logger *logging.ChanneledLogger
	DB     *database.DB

	// Repositories
	SiteRepo    repositories.SiteRepository
	TokenRepo   repositories.TokenRepository
	AccountRepo repositories.AccountRepository

	// Rendering
	TemplateRegistry *templates.Registry

	// Application services
	AuthService    *services.AuthService
	CopyService    *services.CopyService
	PaletteService *services.PaletteService
	SiteService    *services.SiteService
	ExportService  *services.ExportService
	TokenService   *services.TokenService

	// Infrastructure
	EmailService email.Service
}

// NewContainer creates and wires all singleton services
func NewContainer(db *database.DB, logger *logging.ChanneledLogger) *Container {
	siteRepo := sites.NewSiteRepository(db.DB)
	tokenRepo := tokens.NewTokenRepository(db.DB)
	accountRepo := users.NewAccountRepository(db.DB)

	registry := templates.NewRegistry(logger)
	logoProcessor := media.NewLogoProcessor(config.LogoFetchLimit)
	emailService := email.NewService(config.ResendAPIKey, config.EmailFrom, config.EmailFromName, logger)

	copyService := services.NewCopyService(ai.NewLemurClient(config.AAIAPIKey), config.CopyTimeout, logger)
	paletteService := services.NewPaletteService(logoProcessor, logger)
	siteService := services.NewSiteService(siteRepo, registry, copyService, paletteService, emailService, config.PublicBaseURL, logger)
	exportService := services.NewExportService(logoProcessor, logger)
	tokenService := services.NewTokenService(tokenRepo, siteRepo, emailService, config.DownloadTokens.TTL, config.PublicBaseURL, logger)
	authService := services.NewAuthService(accountRepo, config.JWTSecret, config.JWTExpiry, config.BcryptCost, logger)

	return &Container{
		Logger: logger,
		DB:     db,

		SiteRepo:    siteRepo,
		TokenRepo:   tokenRepo,
		AccountRepo: accountRepo,

		TemplateRegistry: registry,

		AuthService:    authService,
		CopyService:    copyService,
		PaletteService: paletteService,
		SiteService:    siteService,
		ExportService:  exportService,
		TokenService:   tokenService,

		EmailService: emailService,
	}
}
