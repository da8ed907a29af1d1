package dialer

import (
	"fmt"
	"os"
)

// Dialer kinds selectable from configuration.
const (
	KindNoop = "noop"
	KindAT   = "at"
)

// Config holds dialer initialization parameters.
type Config struct {
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"` // "noop" or "at"; empty means noop.
}

// DefaultConfig returns the default dialer configuration (noop).
func DefaultConfig() Config {
	return Config{Kind: KindNoop}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Kind != "" {
		c.Kind = source.Kind
	}
}

// New creates a Dialer from configuration. The "at" kind writes dial
// commands to stdout.
func New(cfg *Config) (Dialer, error) {
	switch cfg.Kind {
	case "", KindNoop:
		return NoopDialer{}, nil
	case KindAT:
		return NewATDialer(os.Stdout), nil
	default:
		return nil, fmt.Errorf("unknown dialer kind: %q", cfg.Kind)
	}
}
