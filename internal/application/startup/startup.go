// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prelandr/prelandr-go/internal/application/container"
	infradb "github.com/prelandr/prelandr-go/internal/infrastructure/database"
	"github.com/prelandr/prelandr-go/internal/infrastructure/observability/logging"
	"github.com/prelandr/prelandr-go/internal/infrastructure/persistence/database"
	"github.com/prelandr/prelandr-go/internal/infrastructure/security"
	"github.com/prelandr/prelandr-go/internal/presentation/http/server"
	"github.com/prelandr/prelandr-go/pkg/config"
)

// Initialize performs the complete startup sequence
func Initialize() error {
	setupLogging()

	start := time.Now().UTC()

	log.Println("\033[32m" + `

  ▄▄▄▄  ▄▄▄ ▄▄▄▄▄ ▄▄   ▄▄▄ ▄▄ ▄▄  ▄▄▄▄ ▄▄▄▄
  ██ ██ ██▄ ██▄   ██   ██▄██ ██▀██ ██ ██ ██▄█▄
  ██▀▀  ██▄ ██▄▄▄ ██▄▄ ██▀██ ██ ██ ██▄██ ██ ██
` + "\033[97m" + `
  prelandr — landing page generator
` + "\033[0m")

	// Step 1: Channeled logging
	logger, err := logging.NewChanneledLogger(logging.DefaultLoggerConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logger.Startup().Info("Logging initialized")

	generated, err := ensureJWTSecret()
	if err != nil {
		return err
	}
	if generated {
		logger.System().Warn("JWT_SECRET is not set; generated an ephemeral signing key. Sessions will not survive a restart.")
	}

	// Step 2: Database connection
	logger.Startup().Info("Connecting to database...")
	db, err := database.Connect(databaseConfig(), logger)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}

	// Step 3: Schema + migrations
	logger.Startup().Info("Ensuring schema...")
	if err := infradb.NewTableCreator().CreateSchema(db.DB); err != nil {
		return fmt.Errorf("schema creation failed: %w", err)
	}
	if err := infradb.Migrate(db.DB); err != nil {
		return fmt.Errorf("migrations failed: %w", err)
	}
	logger.Startup().Info("Schema ready")

	// Step 4: Dependency injection container
	logger.Startup().Info("Initializing dependency injection container...")
	appContainer := container.NewContainer(db, logger)
	logger.Startup().Info("Container initialization complete",
		"templates", len(appContainer.TemplateRegistry.TemplateIDs()))

	// Step 5: HTTP server
	httpServer := server.New(config.Port, appContainer)

	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.System().Info("Starting HTTP server", "address", ":"+config.Port)
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"port", config.Port)

	// Wait for shutdown signal
	<-gracefulShutdown
	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")

	shutdownStart := time.Now()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	if err := db.Close(); err != nil {
		logger.Shutdown().Error("Error closing database", "error", err.Error())
	} else {
		logger.Shutdown().Info("Database closed")
	}

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return nil
}

// ensureJWTSecret generates a signing key when none is configured. The
// generated key is ephemeral, so tokens issued against it die with the
// process; production deployments set JWT_SECRET explicitly.
func ensureJWTSecret() (bool, error) {
	if config.JWTSecret != "" {
		return false, nil
	}
	secret, err := security.GenerateSecureKey(64)
	if err != nil {
		return false, fmt.Errorf("failed to generate signing key: %w", err)
	}
	config.JWTSecret = secret
	return true, nil
}

// databaseConfig translates the flat environment settings into the store
// configuration. Lifetime is configured in minutes.
func databaseConfig() database.Config {
	return database.Config{
		SQLitePath:       config.DBPath,
		TursoDatabaseURL: config.TursoDatabaseURL,
		TursoAuthToken:   config.TursoAuthToken,
		MaxOpenConns:     config.DBMaxOpenConns,
		MaxIdleConns:     config.DBMaxIdleConns,
		ConnMaxLifetime:  time.Duration(config.DBConnMaxLifetimeMinutes) * time.Minute,
	}
}

// setupLogging configures application logging
func setupLogging() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
