// Package config provides centralized default values for Prelandr
package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var envLoaded sync.Once

func loadEnvFile() {
	envLoaded.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found -- config defaults will be used")
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// Database Configuration
	DBPath                   string
	TursoDatabaseURL         string
	TursoAuthToken           string
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeMinutes int

	// Auth Configuration
	JWTSecret      string
	JWTExpiry      time.Duration
	BcryptCost     int
	DownloadTokens struct {
		TTL time.Duration
	}

	// External Services
	AAIAPIKey      string
	ResendAPIKey   string
	EmailFrom      string
	EmailFromName  string
	PublicBaseURL  string
	CopyTimeout    time.Duration
	LogoFetchLimit int64
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 30*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	// Database Configuration
	DBPath = getEnvString("DB_PATH", "prelandr.db")
	TursoDatabaseURL = getEnvString("TURSO_DATABASE_URL", "")
	TursoAuthToken = getEnvString("TURSO_AUTH_TOKEN", "")
	DBMaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 10)
	DBMaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 3)
	DBConnMaxLifetimeMinutes = getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 30)

	// Auth Configuration
	JWTSecret = getEnvString("JWT_SECRET", "")
	JWTExpiry = getEnvDuration("JWT_EXPIRY", 24*time.Hour)
	BcryptCost = getEnvInt("BCRYPT_COST", 10)
	DownloadTokens.TTL = getEnvDuration("DOWNLOAD_TOKEN_TTL", 5*time.Minute)

	// External Services
	AAIAPIKey = getEnvString("AAI_API_KEY", "")
	ResendAPIKey = getEnvString("RESEND_API_KEY", "")
	EmailFrom = getEnvString("EMAIL_FROM", "noreply@prelandr.app")
	EmailFromName = getEnvString("EMAIL_FROM_NAME", "Prelandr")
	PublicBaseURL = getEnvString("PUBLIC_BASE_URL", "http://localhost:8080")
	CopyTimeout = getEnvDuration("COPY_TIMEOUT", 30*time.Second)
	LogoFetchLimit = int64(getEnvInt("LOGO_FETCH_LIMIT_BYTES", 5*1024*1024))
}
