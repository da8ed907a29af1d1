// Package directory implements the in-memory speed-dial store: a fixed set
// of named directories, each holding a bounded number of code→number entries.
//
// The store has an explicit lifecycle. New returns an uninitialized store;
// Initialize allocates the configured directories and opens the store for
// use; Teardown releases them and returns the store to the uninitialized
// state. Every other operation is rejected with ErrNotInitialized outside
// that window.
//
// The package provides no internal synchronization — callers that need
// concurrent access must serialize externally (see the manager package).
package directory

import (
	"fmt"

	"github.com/google/uuid"
)

// Store owns an ordered, fixed collection of directories resolved by name.
// All entry operations enter here and delegate to the resolved Directory.
type Store struct {
	id    string
	cfg   Config
	dirs  []*Directory
	ready bool
}

// New creates an uninitialized Store. The store carries a unique UUIDv7
// identifier so multiple independent stores are distinguishable in logs.
func New() *Store {
	return &Store{
		id: uuid.Must(uuid.NewV7()).String(),
	}
}

// ID returns the store's unique identifier.
func (s *Store) ID() string {
	return s.id
}

// Initialize merges cfg over defaults, validates it, and allocates one empty
// directory per configured name. A second Initialize without an intervening
// Teardown is rejected with ErrAlreadyInitialized, never merged.
func (s *Store) Initialize(cfg *Config) error {
	if s.ready {
		return ErrAlreadyInitialized
	}

	merged := DefaultConfig()
	if cfg != nil {
		merged.Merge(cfg)
	}
	if err := merged.validate(); err != nil {
		return err
	}

	s.cfg = merged
	s.dirs = make([]*Directory, len(merged.Names))
	for i, name := range merged.Names {
		s.dirs[i] = newDirectory(name, merged.Capacity)
	}
	s.ready = true
	return nil
}

// Teardown releases all directory storage and returns the store to the
// uninitialized state. A second Teardown fails with ErrNotInitialized
// rather than double-releasing.
func (s *Store) Teardown() error {
	if !s.ready {
		return ErrNotInitialized
	}
	s.dirs = nil
	s.ready = false
	return nil
}

// Find resolves a directory by exact, case-sensitive name match.
// O(n) over the configured directory count, which is small and fixed.
func (s *Store) Find(name string) (*Directory, error) {
	if !s.ready {
		return nil, ErrNotInitialized
	}
	for _, d := range s.dirs {
		if d.name == name {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrDirectoryNotFound, name)
}

// Add assigns number to code in the named directory. Code and number are
// validated against the configured length limits before any lookup; inputs
// over the limit are rejected outright, never truncated.
func (s *Store) Add(dirName, code, number string) error {
	if !s.ready {
		return ErrNotInitialized
	}
	if code == "" {
		return ErrEmptyCode
	}
	if len(code) > s.cfg.MaxCodeLength {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrCodeTooLong, len(code), s.cfg.MaxCodeLength)
	}
	if len(number) > s.cfg.MaxNumberLength {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrNumberTooLong, len(number), s.cfg.MaxNumberLength)
	}

	dir, err := s.Find(dirName)
	if err != nil {
		return err
	}
	return dir.Add(code, number)
}

// Get returns the number assigned to code in the named directory.
func (s *Store) Get(dirName, code string) (string, error) {
	dir, err := s.Find(dirName)
	if err != nil {
		return "", err
	}
	number, ok := dir.Get(code)
	if !ok {
		return "", fmt.Errorf("%w: %q in %q", ErrCodeNotFound, code, dirName)
	}
	return number, nil
}

// Remove deletes the entry for code from the named directory.
func (s *Store) Remove(dirName, code string) error {
	dir, err := s.Find(dirName)
	if err != nil {
		return err
	}
	return dir.Remove(code)
}

// Names returns the directory names in configuration order.
func (s *Store) Names() ([]string, error) {
	if !s.ready {
		return nil, ErrNotInitialized
	}
	names := make([]string, len(s.dirs))
	for i, d := range s.dirs {
		names[i] = d.name
	}
	return names, nil
}

// Entries returns a snapshot of the named directory's entries in insertion
// order.
func (s *Store) Entries(dirName string) ([]Entry, error) {
	dir, err := s.Find(dirName)
	if err != nil {
		return nil, err
	}
	return dir.List(), nil
}
