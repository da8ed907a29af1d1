// Package manager composes the speed-dial store, a dialer, and an observer
// into the runtime callers interact with.
//
// The manager replaces the process-wide singleton of classic handset
// firmware with an injectable value: construct as many independent managers
// as needed via New. It also supplies the mutual-exclusion layer the core
// deliberately omits — a single store-wide RWMutex serializing all store
// access — so a Manager is safe for concurrent use even though the
// directory package is not.
//
//	m, err := manager.New(&cfg)
//	err = m.AddNumber(ctx, "Directory 1", "home", "123-456-7890")
//	err = m.Dial(ctx, "Directory 1", "home")
package manager

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/harishravi121/speeddial/dialer"
	"github.com/harishravi121/speeddial/directory"
	"github.com/harishravi121/speeddial/observability"
)

// DirectoryStatus reports a directory's fill level for status rendering.
type DirectoryStatus struct {
	Name     string
	Count    int
	Capacity int
}

// Option configures a Manager after config-driven initialization.
// Applied by New after cold start — overrides replace config-created defaults.
type Option func(*Manager)

// WithStore overrides the config-created store.
func WithStore(s *directory.Store) Option {
	return func(m *Manager) { m.store = s }
}

// WithDialer overrides the config-created dialer.
func WithDialer(d dialer.Dialer) Option {
	return func(m *Manager) { m.dialer = d }
}

// WithObserver overrides the config-selected observer.
func WithObserver(o observability.Observer) Option {
	return func(m *Manager) { m.observer = o }
}

// Manager is the speed-dial runtime. All store access is serialized by mu.
type Manager struct {
	store    *directory.Store
	dialer   dialer.Dialer
	observer observability.Observer
	mu       sync.RWMutex
}

// New creates a Manager from configuration: the store is allocated and
// initialized from cfg.Directory, the dialer from cfg.Dialer, and the
// observer resolved by name from cfg.Observer. Functional options applied
// after initialization can override any collaborator for testing.
func New(cfg *Config, opts ...Option) (*Manager, error) {
	store := directory.New()
	if err := store.Initialize(&cfg.Directory); err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	d, err := dialer.New(&cfg.Dialer)
	if err != nil {
		return nil, fmt.Errorf("failed to create dialer: %w", err)
	}

	observer := observability.Observer(observability.NewSlogObserver(slog.Default()))
	if cfg.Observer != "" {
		observer, err = observability.GetObserver(cfg.Observer)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve observer: %w", err)
		}
	}

	m := &Manager{
		store:    store,
		dialer:   d,
		observer: observer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.emit(context.Background(), EventInit, observability.LevelInfo, "manager.New", map[string]any{
		"store_id":    m.store.ID(),
		"directories": len(cfg.Directory.Names),
	})

	return m, nil
}

// StoreID returns the underlying store's unique identifier.
func (m *Manager) StoreID() string {
	return m.store.ID()
}

// AddNumber assigns number to code in the named directory.
func (m *Manager) AddNumber(ctx context.Context, dirName, code, number string) error {
	m.mu.Lock()
	err := m.store.Add(dirName, code, number)
	m.mu.Unlock()

	if err != nil {
		m.emitError(ctx, "manager.AddNumber", dirName, code, err)
		return err
	}

	m.emit(ctx, EventAdd, observability.LevelInfo, "manager.AddNumber", map[string]any{
		"directory": dirName,
		"code":      code,
	})
	return nil
}

// GetNumber returns the number assigned to code in the named directory.
func (m *Manager) GetNumber(ctx context.Context, dirName, code string) (string, error) {
	m.mu.RLock()
	number, err := m.store.Get(dirName, code)
	m.mu.RUnlock()

	if err != nil {
		m.emitError(ctx, "manager.GetNumber", dirName, code, err)
		return "", err
	}

	m.emit(ctx, EventGet, observability.LevelVerbose, "manager.GetNumber", map[string]any{
		"directory": dirName,
		"code":      code,
	})
	return number, nil
}

// RemoveNumber deletes the entry for code from the named directory.
func (m *Manager) RemoveNumber(ctx context.Context, dirName, code string) error {
	m.mu.Lock()
	err := m.store.Remove(dirName, code)
	m.mu.Unlock()

	if err != nil {
		m.emitError(ctx, "manager.RemoveNumber", dirName, code, err)
		return err
	}

	m.emit(ctx, EventRemove, observability.LevelInfo, "manager.RemoveNumber", map[string]any{
		"directory": dirName,
		"code":      code,
	})
	return nil
}

// Dial resolves the number for code in the named directory and hands it to
// the dialer. Retrieval failures surface unchanged; the dial action itself
// is whatever the configured Dialer does with the number.
func (m *Manager) Dial(ctx context.Context, dirName, code string) error {
	m.mu.RLock()
	number, err := m.store.Get(dirName, code)
	m.mu.RUnlock()

	if err != nil {
		m.emitError(ctx, "manager.Dial", dirName, code, err)
		return err
	}

	m.emit(ctx, EventDialStart, observability.LevelInfo, "manager.Dial", map[string]any{
		"directory": dirName,
		"code":      code,
	})

	if err := m.dialer.Dial(ctx, number); err != nil {
		m.emitError(ctx, "manager.Dial", dirName, code, err)
		return fmt.Errorf("dial %q: %w", code, err)
	}

	m.emit(ctx, EventDialComplete, observability.LevelInfo, "manager.Dial", map[string]any{
		"directory": dirName,
		"code":      code,
	})
	return nil
}

// ListDirectories returns the directory names in configuration order.
func (m *Manager) ListDirectories(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.Names()
}

// ListEntries returns a snapshot of the named directory's entries in
// insertion order.
func (m *Manager) ListEntries(ctx context.Context, dirName string) ([]directory.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.store.Entries(dirName)
}

// Status reports the fill level of every directory in configuration order.
func (m *Manager) Status(ctx context.Context) ([]DirectoryStatus, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names, err := m.store.Names()
	if err != nil {
		return nil, err
	}

	statuses := make([]DirectoryStatus, 0, len(names))
	for _, name := range names {
		dir, err := m.store.Find(name)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, DirectoryStatus{
			Name:     name,
			Count:    dir.Len(),
			Capacity: dir.Cap(),
		})
	}
	return statuses, nil
}

// Teardown releases the store. The manager is unusable afterwards until the
// store is re-initialized directly.
func (m *Manager) Teardown(ctx context.Context) error {
	m.mu.Lock()
	err := m.store.Teardown()
	m.mu.Unlock()

	if err != nil {
		m.emitError(ctx, "manager.Teardown", "", "", err)
		return err
	}

	m.emit(ctx, EventTeardown, observability.LevelInfo, "manager.Teardown", map[string]any{
		"store_id": m.store.ID(),
	})
	return nil
}

func (m *Manager) emit(ctx context.Context, t observability.EventType, level observability.Level, source string, data map[string]any) {
	m.observer.OnEvent(ctx, observability.Event{
		Type:      t,
		Level:     level,
		Timestamp: time.Now(),
		Source:    source,
		Data:      data,
	})
}

func (m *Manager) emitError(ctx context.Context, source, dirName, code string, err error) {
	data := map[string]any{"error": err.Error()}
	if dirName != "" {
		data["directory"] = dirName
	}
	if code != "" {
		data["code"] = code
	}
	m.emit(ctx, EventError, observability.LevelWarning, source, data)
}
