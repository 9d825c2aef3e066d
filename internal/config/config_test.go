package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DataDir != DefaultDataDir {
		t.Errorf("expected data dir %q, got %q", DefaultDataDir, cfg.DataDir)
	}
	if len(cfg.Categories) != 14 {
		t.Fatalf("expected 14 categories, got %d", len(cfg.Categories))
	}
	if cfg.Categories[2].Name != "Image Composition" || cfg.Categories[2].File != "image-composition.json" {
		t.Errorf("unexpected third category %+v", cfg.Categories[2])
	}
}

func TestLoadFrom_NonExistent(t *testing.T) {
	t.Setenv("PB_DATA_DIR", "")
	cfg, err := LoadFrom("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.ListenAddr != DefaultListenAddr {
		t.Errorf("expected default listen addr, got %q", cfg.ListenAddr)
	}
}

func TestLoadFrom_ValidConfig(t *testing.T) {
	t.Setenv("PB_DATA_DIR", "")
	t.Setenv("PB_GENERATE_CMD", "")
	t.Setenv("PB_SYNC_URL", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
data_dir: ~/prompts
categories:
  - name: Jobs
    file: jobs.json
  - name: Colors
    file: colors.json
generate_command: curl -X POST localhost:7801/generate
sync_url: ws://localhost:7801/ws
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	home, _ := os.UserHomeDir()
	if cfg.DataDir != filepath.Join(home, "prompts") {
		t.Errorf("expected expanded data dir, got %q", cfg.DataDir)
	}
	if len(cfg.Categories) != 2 || cfg.Categories[0].Name != "Jobs" {
		t.Errorf("expected configured categories in order, got %+v", cfg.Categories)
	}
	if cfg.SyncURL != "ws://localhost:7801/ws" {
		t.Errorf("unexpected sync url %q", cfg.SyncURL)
	}
	if cfg.ListenAddr != DefaultListenAddr {
		t.Errorf("expected default listen addr to survive, got %q", cfg.ListenAddr)
	}
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("categories: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("PB_DATA_DIR", "/srv/data")
	t.Setenv("PB_DATA_URL", "http://host/api/data")
	t.Setenv("PB_GENERATE_CMD", "true")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DataDir != "/srv/data" {
		t.Errorf("expected env data dir, got %q", cfg.DataDir)
	}
	if cfg.DataURL != "http://host/api/data" {
		t.Errorf("expected env data url, got %q", cfg.DataURL)
	}
	if cfg.GenerateCommand != "true" {
		t.Errorf("expected env generate command, got %q", cfg.GenerateCommand)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("PB_DATA_DIR", "")
	t.Setenv("PB_DATA_URL", "")
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.DataURL = "http://example.test/api/data"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.DataURL != cfg.DataURL {
		t.Errorf("expected %q, got %q", cfg.DataURL, loaded.DataURL)
	}
}
