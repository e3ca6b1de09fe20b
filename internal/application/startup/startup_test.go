package startup

import (
	"testing"
	"time"

	"github.com/prelandr/prelandr-go/pkg/config"
)

func TestEnsureJWTSecretGeneratesWhenUnset(t *testing.T) {
	orig := config.JWTSecret
	t.Cleanup(func() { config.JWTSecret = orig })

	config.JWTSecret = ""
	generated, err := ensureJWTSecret()
	if err != nil {
		t.Fatal(err)
	}
	if !generated {
		t.Fatal("expected a generated signing key")
	}
	if len(config.JWTSecret) != 64 {
		t.Errorf("expected a 64-char hex key, got %d chars", len(config.JWTSecret))
	}

	config.JWTSecret = "configured-secret"
	generated, err = ensureJWTSecret()
	if err != nil {
		t.Fatal(err)
	}
	if generated {
		t.Error("configured secret must not be replaced")
	}
	if config.JWTSecret != "configured-secret" {
		t.Errorf("secret was overwritten: %q", config.JWTSecret)
	}
}

func TestDatabaseConfigCarriesEnvironmentSettings(t *testing.T) {
	cfg := databaseConfig()

	if cfg.SQLitePath != config.DBPath {
		t.Errorf("expected SQLite path %q, got %q", config.DBPath, cfg.SQLitePath)
	}
	if cfg.MaxOpenConns != config.DBMaxOpenConns {
		t.Errorf("expected %d max open conns, got %d", config.DBMaxOpenConns, cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns != config.DBMaxIdleConns {
		t.Errorf("expected %d max idle conns, got %d", config.DBMaxIdleConns, cfg.MaxIdleConns)
	}

	want := time.Duration(config.DBConnMaxLifetimeMinutes) * time.Minute
	if cfg.ConnMaxLifetime != want {
		t.Errorf("expected connection lifetime %v, got %v", want, cfg.ConnMaxLifetime)
	}
}
