package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.yaml.in/yaml/v4"
)

func TestLoad_MissingConfig(t *testing.T) {
	t.Setenv("VITALS_CONFIG", "nonexistent.yaml")
	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing config file, got nil")
	}
}

func TestLoad_Defaults(t *testing.T) {
	writeConfig(t, Config{})

	cfg, err := Load()
	if err != nil {
		t.Fatal("error opening config:", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want :8080", cfg.ListenAddr)
	}
	if cfg.DBPath != "vitals.db" {
		t.Errorf("DBPath = %q, want vitals.db", cfg.DBPath)
	}
	if cfg.WaterReminderInterval.Std() != 30*time.Second {
		t.Errorf("WaterReminderInterval = %v, want 30s", cfg.WaterReminderInterval.Std())
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	writeConfig(t, Config{ListenAddr: ":9999"})
	t.Setenv("VITALS_LISTEN_ADDR", ":7070")

	cfg, err := Load()
	if err != nil {
		t.Fatal("error opening config:", err)
	}
	if cfg.ListenAddr != ":7070" {
		t.Errorf("ListenAddr = %q, want env override :7070", cfg.ListenAddr)
	}
}

func writeConfig(t *testing.T, c Config) {
	t.Helper()
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	t.Setenv("VITALS_CONFIG", configFile)

	d, err := yaml.Marshal(&c)
	if err != nil {
		t.Fatalf("failed to marshal config: %v", err)
	}
	if err := os.WriteFile(configFile, d, 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
}
