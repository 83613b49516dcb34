package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("default Port = %s, want 8080", cfg.Port)
	}
	if cfg.SpawnLatency != 2*time.Second {
		t.Errorf("default SpawnLatency = %s, want 2s", cfg.SpawnLatency)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SD_PORT", "9090")
	t.Setenv("SD_SPAWN_LATENCY", "150ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %s, want 9090", cfg.Port)
	}
	if cfg.SpawnLatency != 150*time.Millisecond {
		t.Errorf("SpawnLatency = %s, want 150ms", cfg.SpawnLatency)
	}
}
