package config_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/iho/ledgerexport/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL == "" {
		t.Fatalf("expected default database URL to be set")
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.ExportBatchSize != 30000 {
		t.Fatalf("expected default batch size 30000, got %d", cfg.ExportBatchSize)
	}

	if cfg.ExportDefaultWindow != 30*24*time.Hour {
		t.Fatalf("expected default window of 30 days, got %s", cfg.ExportDefaultWindow)
	}

	if cfg.ExportFallbackLookback != 186*24*time.Hour {
		t.Fatalf("expected fallback lookback of 186 days, got %s", cfg.ExportFallbackLookback)
	}

	if cfg.HTTPWriteTimeout != 0 {
		t.Fatalf("expected no write timeout for streamed exports, got %s", cfg.HTTPWriteTimeout)
	}

	if got := cfg.ReadURLs(); len(got) != 1 || got[0] != cfg.DatabaseURL {
		t.Fatalf("expected primary as the only read URL, got %v", got)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("DATABASE_REPLICA_URLS", "postgres://r1,postgres://r2")
	t.Setenv("DATABASE_REPLICA_SELECTION", "round_robin")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_TIMEOUT", "45s")
	t.Setenv("JWT_SECRET", "top-secret")
	t.Setenv("EXPORT_BATCH_SIZE", "500")
	t.Setenv("PROFILE_CACHE_TTL", "1m")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL != "postgres://example" {
		t.Fatalf("expected custom database URL, got %s", cfg.DatabaseURL)
	}

	if got := cfg.ReadURLs(); len(got) != 2 || got[1] != "postgres://r2" {
		t.Fatalf("expected two replica URLs, got %v", got)
	}

	if cfg.DatabaseReplicaSelection != config.ReplicaSelectionRoundRobin {
		t.Fatalf("expected round robin selection, got %s", cfg.DatabaseReplicaSelection)
	}

	if cfg.RedisURL != "redis://example" {
		t.Fatalf("expected custom redis URL, got %s", cfg.RedisURL)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}

	if cfg.DatabaseTimeout != 45*time.Second {
		t.Fatalf("expected database timeout override, got %s", cfg.DatabaseTimeout)
	}

	if cfg.ExportBatchSize != 500 || cfg.ProfileCacheTTL != time.Minute {
		t.Fatalf("expected export overrides, got batch=%d ttl=%s", cfg.ExportBatchSize, cfg.ProfileCacheTTL)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	original := os.Getenv("HTTP_READ_TIMEOUT")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")
	t.Cleanup(func() {
		t.Setenv("HTTP_READ_TIMEOUT", original)
	})

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "missing secret", env: map[string]string{"JWT_SECRET": ""}, wantErr: "JWT_SECRET"},
		{name: "zero batch", env: map[string]string{"EXPORT_BATCH_SIZE": "0"}, wantErr: "EXPORT_BATCH_SIZE"},
		{name: "unknown selection", env: map[string]string{"DATABASE_REPLICA_SELECTION": "sticky"}, wantErr: "DATABASE_REPLICA_SELECTION"},
		{name: "min above max", env: map[string]string{"DATABASE_MIN_CONNS": "10", "DATABASE_MAX_CONNS": "2"}, wantErr: "DATABASE_MIN_CONNS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "secret")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load()
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
