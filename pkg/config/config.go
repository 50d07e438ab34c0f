package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/scanvalue"
)

// Config is the scanner-side setting consumed by width classification and
// value formatting.
type Config struct {
	ScanDataType   string `yaml:"scan_data_type"`
	FormatCapacity int    `yaml:"format_capacity"`
	Wildcard       string `yaml:"wildcard"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		ScanDataType:   scanvalue.AnyNumber.String(),
		FormatCapacity: 128,
		Wildcard:       scanvalue.DefaultWildcard,
	}
}

// DefaultPath returns ~/.scanvalue/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".scanvalue", "config.yaml")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := scanvalue.ParseScanDataType(c.ScanDataType); err != nil {
		return err
	}
	if c.FormatCapacity <= 0 {
		return fmt.Errorf("format_capacity must be positive, got %d", c.FormatCapacity)
	}
	if len(c.Wildcard) != 2 {
		return fmt.Errorf("wildcard %q: %w", c.Wildcard, scanvalue.ErrBadWildcard)
	}
	return nil
}

// DataType returns the parsed scan data type. Call Validate first.
func (c *Config) DataType() scanvalue.ScanDataType {
	t, _ := scanvalue.ParseScanDataType(c.ScanDataType)
	return t
}

// Save writes c to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
