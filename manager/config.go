package manager

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/harishravi121/speeddial/dialer"
	"github.com/harishravi121/speeddial/directory"
)

// Config holds initialization parameters for the manager and its
// collaborators. Each section delegates to that package's config-driven
// constructor.
type Config struct {
	Directory directory.Config `json:"directory" yaml:"directory"`
	Dialer    dialer.Config    `json:"dialer" yaml:"dialer"`
	Observer  string           `json:"observer,omitempty" yaml:"observer,omitempty"` // Registered observer name; empty means slog.
}

// DefaultConfig returns a Config with sensible defaults for all sections.
func DefaultConfig() Config {
	return Config{
		Directory: directory.DefaultConfig(),
		Dialer:    dialer.DefaultConfig(),
	}
}

// Merge applies non-zero values from source into c, delegating to each
// section's Merge method.
func (c *Config) Merge(source *Config) {
	c.Directory.Merge(&source.Directory)
	c.Dialer.Merge(&source.Dialer)

	if source.Observer != "" {
		c.Observer = source.Observer
	}
}

// LoadConfig reads a config file, merges it with defaults, and returns the
// resulting Config. Files ending in .yaml or .yml are parsed as YAML;
// everything else as JSON.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	switch filepath.Ext(filename) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &loaded); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
