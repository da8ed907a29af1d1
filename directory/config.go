package directory

import "fmt"

// Defaults mirror the classic handset layout: 1000 numbers split evenly
// across 5 directories.
const (
	defaultDirectoryCount  = 5
	defaultCapacity        = 200
	defaultMaxCodeLength   = 50
	defaultMaxNumberLength = 20
)

// Config holds store initialization parameters. Names and Capacity are fixed
// for the lifetime of the store once Initialize succeeds.
type Config struct {
	Names           []string `json:"names,omitempty" yaml:"names,omitempty"`
	Capacity        int      `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	MaxCodeLength   int      `json:"max_code_length,omitempty" yaml:"max_code_length,omitempty"`
	MaxNumberLength int      `json:"max_number_length,omitempty" yaml:"max_number_length,omitempty"`
}

// DefaultConfig returns the default store configuration: five directories
// named "Directory 1" through "Directory 5", 200 entries each.
func DefaultConfig() Config {
	names := make([]string, defaultDirectoryCount)
	for i := range names {
		names[i] = fmt.Sprintf("Directory %d", i+1)
	}
	return Config{
		Names:           names,
		Capacity:        defaultCapacity,
		MaxCodeLength:   defaultMaxCodeLength,
		MaxNumberLength: defaultMaxNumberLength,
	}
}

// Merge applies non-zero values from source into c. Negative values are
// copied as-is so validation sees them instead of the defaults they would
// otherwise mask.
func (c *Config) Merge(source *Config) {
	if len(source.Names) > 0 {
		c.Names = source.Names
	}
	if source.Capacity != 0 {
		c.Capacity = source.Capacity
	}
	if source.MaxCodeLength != 0 {
		c.MaxCodeLength = source.MaxCodeLength
	}
	if source.MaxNumberLength != 0 {
		c.MaxNumberLength = source.MaxNumberLength
	}
}

// validate checks the configuration invariants: at least one directory,
// pairwise-distinct non-empty names, and positive capacity and length limits.
func (c *Config) validate() error {
	if len(c.Names) == 0 {
		return fmt.Errorf("config: no directory names")
	}
	seen := make(map[string]bool, len(c.Names))
	for _, name := range c.Names {
		if name == "" {
			return fmt.Errorf("config: %w", ErrEmptyName)
		}
		if seen[name] {
			return fmt.Errorf("config: duplicate directory name %q", name)
		}
		seen[name] = true
	}
	if c.Capacity <= 0 {
		return fmt.Errorf("config: capacity must be positive, got %d", c.Capacity)
	}
	if c.MaxCodeLength <= 0 {
		return fmt.Errorf("config: max code length must be positive, got %d", c.MaxCodeLength)
	}
	if c.MaxNumberLength <= 0 {
		return fmt.Errorf("config: max number length must be positive, got %d", c.MaxNumberLength)
	}
	return nil
}
