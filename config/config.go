package config

import (
	"errors"
	"fmt"
	"image/png"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is looked up in the project root when no --config is given.
const FileName = "mobileassets.yaml"

// Config represents the project configuration
type Config struct {
	Source        string       `yaml:"source"`
	Background    string       `yaml:"background"`
	LogoFraction  float64      `yaml:"logo_fraction"`
	Upscale       bool         `yaml:"upscale"`
	Compression   string       `yaml:"compression"`
	PaletteMethod string       `yaml:"palette_method"`
	Splash        SplashConfig `yaml:"splash"`
}

type SplashConfig struct {
	// Logo centered by the splash command. generate keeps using Source.
	Source    string `yaml:"source"`
	Mode      string `yaml:"mode"`
	Text      string `yaml:"text"`
	TextColor string `yaml:"text_color"`
	Font      string `yaml:"font"`
}

// Default matches the stock brand assets.
func Default() *Config {
	return &Config{
		Source:        "assets/icon-final.png",
		Background:    "#00A690",
		LogoFraction:  0.4,
		Compression:   "default",
		PaletteMethod: "dominantcolor",
		Splash: SplashConfig{
			Source:    "assets/icon-only.png",
			Mode:      "logo",
			Text:      "KAPKURTAR",
			TextColor: "#FFFFFF",
		},
	}
}

// Load reads and parses the configuration file. Keys missing from the file
// keep their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadOptional is Load, except that a missing file yields Default.
func LoadOptional(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.Source == "" {
		return fmt.Errorf("source is required")
	}
	if c.Background == "" {
		return fmt.Errorf("background is required (hex color or \"auto\")")
	}
	if c.LogoFraction <= 0 || c.LogoFraction > 1 {
		return fmt.Errorf("logo_fraction must be in (0, 1], got %v", c.LogoFraction)
	}
	if _, err := c.CompressionLevel(); err != nil {
		return err
	}
	switch c.PaletteMethod {
	case "", "dominantcolor", "kmeans":
	default:
		return fmt.Errorf("palette_method must be dominantcolor or kmeans, got %q", c.PaletteMethod)
	}
	switch c.Splash.Mode {
	case "", "logo", "text":
	default:
		return fmt.Errorf("splash.mode must be logo or text, got %q", c.Splash.Mode)
	}
	return nil
}

// AutoBackground reports whether the background is taken from the logo.
func (c *Config) AutoBackground() bool {
	return strings.EqualFold(c.Background, "auto")
}

func (c *Config) CompressionLevel() (png.CompressionLevel, error) {
	switch strings.ToLower(c.Compression) {
	case "", "default":
		return png.DefaultCompression, nil
	case "none":
		return png.NoCompression, nil
	case "speed":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	default:
		return 0, fmt.Errorf("compression must be default, none, speed or best, got %q", c.Compression)
	}
}
