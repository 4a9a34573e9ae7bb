package server

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gardar/docredact/pkg/pdfredact"
)

// Config holds the daemon settings
type Config struct {
	Addr          string          `yaml:"addr"`
	OutputDir     string          `yaml:"output_dir"`
	FetchTimeout  time.Duration   `yaml:"fetch_timeout"`
	MaxFetchBytes int64           `yaml:"max_fetch_bytes"`
	Redaction     RedactionConfig `yaml:"redaction"`
}

// RedactionConfig holds the defaults applied to every redaction request
type RedactionConfig struct {
	Color          string `yaml:"color"`
	Label          string `yaml:"label"`
	LayerName      string `yaml:"layer_name"`
	Force          bool   `yaml:"force"`
	StrictGeometry bool   `yaml:"strict_geometry"`
}

// DefaultConfig returns the settings used for any key missing from the YAML file
func DefaultConfig() Config {
	return Config{
		Addr:          ":8080",
		OutputDir:     ".",
		FetchTimeout:  30 * time.Second,
		MaxFetchBytes: 50 << 20,
		Redaction: RedactionConfig{
			Color:     "#000000",
			LayerName: "Redactions",
		},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig and validates the result
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot be used
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive")
	}
	if c.MaxFetchBytes <= 0 {
		return fmt.Errorf("max_fetch_bytes must be positive")
	}
	if c.Redaction.LayerName == "" {
		return fmt.Errorf("redaction.layer_name is required")
	}
	if _, err := pdfredact.ParseColor(c.Redaction.Color); err != nil {
		return fmt.Errorf("redaction.color: %w", err)
	}
	return nil
}

// redactConfig builds the per-request pdfredact settings
func (c Config) redactConfig(color pdfredact.Color) pdfredact.RedactConfig {
	rc := pdfredact.DefaultConfig()
	rc.Color = color
	rc.Label = c.Redaction.Label
	rc.LayerName = c.Redaction.LayerName
	rc.Force = c.Redaction.Force
	rc.StrictGeometry = c.Redaction.StrictGeometry
	return rc
}
