package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Picking.Tolerance != 0.25 {
		t.Errorf("expected tolerance 0.25, got %f", cfg.Picking.Tolerance)
	}
	if cfg.SoftSelect.Radius != 1.0 {
		t.Errorf("expected radius 1.0, got %f", cfg.SoftSelect.Radius)
	}
	if cfg.SoftSelect.Mode != "volume" {
		t.Errorf("expected mode 'volume', got %s", cfg.SoftSelect.Mode)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "meshtool.yaml")

	yamlContent := `
picking:
  tolerance: 0.5

soft_select:
  radius: 2.5
  mode: surface
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Picking.Tolerance != 0.5 {
		t.Errorf("expected tolerance 0.5, got %f", cfg.Picking.Tolerance)
	}
	if cfg.SoftSelect.Radius != 2.5 {
		t.Errorf("expected radius 2.5, got %f", cfg.SoftSelect.Radius)
	}
	if cfg.SoftSelect.Mode != "surface" {
		t.Errorf("expected mode 'surface', got %s", cfg.SoftSelect.Mode)
	}
	// Unset sections keep defaults.
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.SoftSelect.Mode != "volume" {
		t.Errorf("expected default mode, got %s", cfg.SoftSelect.Mode)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "meshtool.yaml")

	cfg := Default()
	cfg.SoftSelect.Radius = 3.5
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if loaded.SoftSelect.Radius != 3.5 {
		t.Errorf("expected radius 3.5 after round trip, got %f", loaded.SoftSelect.Radius)
	}
}
