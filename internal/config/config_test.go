package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != 8080 || cfg.StorageDriver != "memory" || cfg.CatalogIDPolicy != "deterministic" {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
		if cfg.GeolocationTimeout != 10*time.Second || cfg.SyncOrderDelay != time.Second {
			t.Fatalf("unexpected durations: %+v", cfg)
		}
		if cfg.Log.Level != "info" || cfg.PhoneCountryPrefix != "549" {
			t.Fatalf("unexpected nested defaults: %+v", cfg)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "mongodb")
		t.Setenv("SYNC_ORDER_DELAY", "250ms")
		t.Setenv("LOG_LEVEL", "debug")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.StorageDriver != "mongodb" || cfg.SyncOrderDelay != 250*time.Millisecond || cfg.Log.Level != "debug" {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "sqlite")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown driver")
		}
	})
}
