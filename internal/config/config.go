// Package config loads the prompt builder configuration.
//
// The file lives at $PB_CONFIG or $XDG_CONFIG_HOME/promptbuilder/config.yaml.
// Environment variables override file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const appName = "promptbuilder"

// DefaultDataDir is where category files are looked up when nothing is configured
const DefaultDataDir = "./data"

// DefaultListenAddr is the address of the data API and sync hub
const DefaultListenAddr = "127.0.0.1:7801"

// Category maps a top-level category name to its data file
type Category struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

// DefaultCategories lists the bundled data files in display order
func DefaultCategories() []Category {
	return []Category{
		{Name: "Background", File: "background.json"},
		{Name: "Colors", File: "colors.json"},
		{Name: "Image Composition", File: "image-composition.json"},
		{Name: "Character", File: "character.json"},
		{Name: "Locations", File: "locations.json"},
		{Name: "Sex", File: "sex.json"},
		{Name: "Creatures", File: "creatures.json"},
		{Name: "Design Elements", File: "design-elements.json"},
		{Name: "Games", File: "games.json"},
		{Name: "Groups", File: "groups.json"},
		{Name: "Jobs", File: "jobs.json"},
		{Name: "Objects", File: "objects.json"},
		{Name: "Plants", File: "plants.json"},
		{Name: "Series", File: "series.json"},
	}
}

// Config is the top-level configuration
type Config struct {
	DataDir         string     `yaml:"data_dir,omitempty"`
	DataURL         string     `yaml:"data_url,omitempty"` // when set, categories are fetched over HTTP
	Categories      []Category `yaml:"categories,omitempty"`
	FieldPath       string     `yaml:"field_path,omitempty"`
	GenerateCommand string     `yaml:"generate_command,omitempty"`
	SyncURL         string     `yaml:"sync_url,omitempty"`
	DatabasePath    string     `yaml:"database_path,omitempty"`
	ListenAddr      string     `yaml:"listen_addr,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() Config {
	state := StateDir()
	return Config{
		DataDir:      DefaultDataDir,
		Categories:   DefaultCategories(),
		FieldPath:    filepath.Join(state, "prompt.txt"),
		DatabasePath: filepath.Join(state, "promptbuilder.db"),
		ListenAddr:   DefaultListenAddr,
	}
}

// ConfigDir returns the XDG config directory
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// StateDir returns the XDG state directory
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "state", appName)
}

// ConfigPath returns $PB_CONFIG, falling back to config.yaml in ConfigDir
func ConfigPath() string {
	if env := os.Getenv("PB_CONFIG"); env != "" {
		return env
	}
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file and applies environment overrides
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		cfg := DefaultConfig()
		applyEnv(&cfg)
		return cfg, nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path. A missing file yields the
// defaults.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyEnv(&cfg)
	cfg.DataDir = expandHome(cfg.DataDir)
	cfg.FieldPath = expandHome(cfg.FieldPath)
	cfg.DatabasePath = expandHome(cfg.DatabasePath)
	if len(cfg.Categories) == 0 {
		cfg.Categories = DefaultCategories()
	}

	return cfg, nil
}

// Save writes cfg to path, creating parent directories
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if env := os.Getenv("PB_DATA_DIR"); env != "" {
		cfg.DataDir = env
	}
	if env := os.Getenv("PB_DATA_URL"); env != "" {
		cfg.DataURL = env
	}
	if env := os.Getenv("PB_SYNC_URL"); env != "" {
		cfg.SyncURL = env
	}
	if env := os.Getenv("PB_GENERATE_CMD"); env != "" {
		cfg.GenerateCommand = env
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
