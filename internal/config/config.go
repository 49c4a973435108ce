// Package config handles loading and saving user configuration for wishcard.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration for wishcard.
type Config struct {
	Render   RenderConfig   `yaml:"render"`
	Fonts    FontsConfig    `yaml:"fonts"`
	Assets   AssetsConfig   `yaml:"assets"`
	Output   OutputConfig   `yaml:"output"`
	Gallery  GalleryConfig  `yaml:"gallery"`
	Logging  LoggingConfig  `yaml:"logging"`
	Server   ServerConfig   `yaml:"server"`
	Branding BrandingConfig `yaml:"branding"`
}

// RenderConfig holds settings for card rasterization.
type RenderConfig struct {
	Width       int    `yaml:"width"`        // Card width in pixels; height follows the aspect
	Aspect      string `yaml:"aspect"`       // "square" or "story"
	Enhance     bool   `yaml:"enhance"`      // Contrast, sharpen and vignette pass
	Format      string `yaml:"format"`       // "png" or "jpeg"
	JPEGQuality int    `yaml:"jpeg_quality"` // 1-100
}

// FontsConfig maps extra font family names to font files.
type FontsConfig struct {
	Families map[string]string `yaml:"families,omitempty"`
}

// AssetsConfig locates background textures.
type AssetsConfig struct {
	Dir     string `yaml:"dir"`                // Directory holding <texture>.<ext> files
	BaseURL string `yaml:"base_url,omitempty"` // Optional remote fallback
}

// OutputConfig controls where exports land.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// GalleryConfig controls render history.
type GalleryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // SQLite database file
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level     string `yaml:"level"`  // debug, info, warn, error
	Format    string `yaml:"format"` // text or json
	AddSource bool   `yaml:"add_source"`
}

// ServerConfig holds HTTP settings for `wishcard serve`.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// BrandingConfig is the small mark drawn on every card.
type BrandingConfig struct {
	Text string `yaml:"text"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	dir, err := GetConfigDir()
	if err != nil {
		dir = "."
	}
	return &Config{
		Render: RenderConfig{
			Width:       1080,
			Aspect:      "square",
			Enhance:     true,
			Format:      "png",
			JPEGQuality: 92,
		},
		Assets:  AssetsConfig{Dir: filepath.Join(dir, "assets")},
		Output:  OutputConfig{Dir: "."},
		Gallery: GalleryConfig{Enabled: true, Path: filepath.Join(dir, "gallery.db")},
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Server:  ServerConfig{Addr: "127.0.0.1:8080"},
	}
}

// Load reads the config file at path over the defaults. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes cfg to path as YAML, creating the directory if needed.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DefaultPath returns the config file inside the default config directory.
func DefaultPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wishcard"), nil
}
