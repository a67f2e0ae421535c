package config

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"APP_ENV", "PORT", "JWT_TTL", "FRONTEND_URL", "LOG_FILE"} {
			t.Setenv(k, "")
		}
		cfg := FromEnv()
		if cfg.Port != "5000" {
			t.Errorf("Port = %q, want 5000", cfg.Port)
		}
		if cfg.JWTTTL != 72*time.Hour {
			t.Errorf("JWTTTL = %v", cfg.JWTTTL)
		}
		if cfg.IsProduction() {
			t.Error("default env must not be production")
		}
		if cfg.FrontendURLs != nil {
			t.Errorf("FrontendURLs = %v, want nil", cfg.FrontendURLs)
		}
		if cfg.LogFile != "./logs/app.log" {
			t.Errorf("LogFile = %q", cfg.LogFile)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("APP_ENV", "Production")
		t.Setenv("PORT", "8080")
		t.Setenv("JWT_TTL", "15m")
		t.Setenv("FRONTEND_URL", "https://a.example.com, https://b.example.com,")
		cfg := FromEnv()
		if !cfg.IsProduction() {
			t.Error("expected production")
		}
		if cfg.Port != "8080" || cfg.JWTTTL != 15*time.Minute {
			t.Errorf("cfg = %+v", cfg)
		}
		want := []string{"https://a.example.com", "https://b.example.com"}
		if !reflect.DeepEqual(cfg.FrontendURLs, want) {
			t.Errorf("FrontendURLs = %v, want %v", cfg.FrontendURLs, want)
		}
	})

	t.Run("bad ttl falls back", func(t *testing.T) {
		t.Setenv("JWT_TTL", "forever")
		if got := FromEnv().JWTTTL; got != 72*time.Hour {
			t.Errorf("JWTTTL = %v", got)
		}
	})
}

func TestJWTSecret(t *testing.T) {
	t.Run("development falls back", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		t.Setenv("JWT_SECRET", "")
		cfg := FromEnv()
		if cfg.JWTSecret == "" {
			t.Fatal("expected the development secret")
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() = %v", err)
		}
	})

	t.Run("production requires a secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("JWT_SECRET", "")
		cfg := FromEnv()
		if cfg.JWTSecret == devJWTSecret {
			t.Fatal("production must not use the built-in secret")
		}
		if err := cfg.Validate(); !errors.Is(err, ErrMissingJWTSecret) {
			t.Errorf("Validate() = %v, want ErrMissingJWTSecret", err)
		}
	})

	t.Run("production with a secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("JWT_SECRET", "s3cr3t")
		cfg := FromEnv()
		if cfg.JWTSecret != "s3cr3t" {
			t.Errorf("JWTSecret = %q", cfg.JWTSecret)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() = %v", err)
		}
	})
}
