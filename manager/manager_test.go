package manager_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/harishravi121/speeddial/directory"
	"github.com/harishravi121/speeddial/manager"
	"github.com/harishravi121/speeddial/observability"
)

type captureObserver struct {
	mu     sync.Mutex
	events []observability.Event
}

func (c *captureObserver) OnEvent(ctx context.Context, event observability.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
}

func (c *captureObserver) types() []observability.EventType {
	c.mu.Lock()
	defer c.mu.Unlock()

	types := make([]observability.EventType, len(c.events))
	for i, e := range c.events {
		types[i] = e.Type
	}
	return types
}

type captureDialer struct {
	numbers []string
	err     error
}

func (d *captureDialer) Dial(ctx context.Context, number string) error {
	if d.err != nil {
		return d.err
	}
	d.numbers = append(d.numbers, number)
	return nil
}

func testConfig() *manager.Config {
	cfg := manager.DefaultConfig()
	cfg.Directory.Names = []string{"Family", "Work"}
	cfg.Directory.Capacity = 3
	return &cfg
}

func newTestManager(t *testing.T, opts ...manager.Option) (*manager.Manager, *captureObserver, *captureDialer) {
	t.Helper()

	obs := &captureObserver{}
	d := &captureDialer{}

	opts = append([]manager.Option{manager.WithObserver(obs), manager.WithDialer(d)}, opts...)
	m, err := manager.New(testConfig(), opts...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return m, obs, d
}

func TestNew(t *testing.T) {
	m, obs, _ := newTestManager(t)

	if m.StoreID() == "" {
		t.Error("StoreID() is empty")
	}

	types := obs.types()
	if len(types) != 1 || types[0] != manager.EventInit {
		t.Errorf("got events %v, want [%s]", types, manager.EventInit)
	}
}

func TestNew_InvalidDirectoryConfig(t *testing.T) {
	cfg := manager.DefaultConfig()
	cfg.Directory.Names = []string{"A", "A"}

	if _, err := manager.New(&cfg); err == nil {
		t.Fatal("New() succeeded with duplicate directory names, want error")
	}
}

func TestNew_UnknownObserver(t *testing.T) {
	cfg := manager.DefaultConfig()
	cfg.Observer = "nonexistent"

	if _, err := manager.New(&cfg); err == nil {
		t.Fatal("New() succeeded with unknown observer, want error")
	}
}

func TestNew_UnknownDialer(t *testing.T) {
	cfg := manager.DefaultConfig()
	cfg.Dialer.Kind = "carrier-pigeon"

	if _, err := manager.New(&cfg); err == nil {
		t.Fatal("New() succeeded with unknown dialer kind, want error")
	}
}

func TestManager_AddGetRemove(t *testing.T) {
	m, obs, _ := newTestManager(t)
	ctx := context.Background()

	if err := m.AddNumber(ctx, "Family", "mom", "555-111-2222"); err != nil {
		t.Fatalf("AddNumber() failed: %v", err)
	}

	number, err := m.GetNumber(ctx, "Family", "mom")
	if err != nil {
		t.Fatalf("GetNumber() failed: %v", err)
	}
	if number != "555-111-2222" {
		t.Errorf("GetNumber() = %q, want %q", number, "555-111-2222")
	}

	if err := m.RemoveNumber(ctx, "Family", "mom"); err != nil {
		t.Fatalf("RemoveNumber() failed: %v", err)
	}
	if _, err := m.GetNumber(ctx, "Family", "mom"); !errors.Is(err, directory.ErrCodeNotFound) {
		t.Errorf("GetNumber() after remove error = %v, want %v", err, directory.ErrCodeNotFound)
	}

	want := []observability.EventType{
		manager.EventInit,
		manager.EventAdd,
		manager.EventGet,
		manager.EventRemove,
		manager.EventError,
	}
	got := obs.types()
	if len(got) != len(want) {
		t.Fatalf("got events %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestManager_AddNumber_ErrorsPassThrough(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	if err := m.AddNumber(ctx, "Garage", "home", "111"); !errors.Is(err, directory.ErrDirectoryNotFound) {
		t.Errorf("AddNumber() error = %v, want %v", err, directory.ErrDirectoryNotFound)
	}

	if err := m.AddNumber(ctx, "Work", "boss", "111"); err != nil {
		t.Fatalf("AddNumber() failed: %v", err)
	}
	if err := m.AddNumber(ctx, "Work", "boss", "222"); !errors.Is(err, directory.ErrDuplicateCode) {
		t.Errorf("AddNumber() error = %v, want %v", err, directory.ErrDuplicateCode)
	}
}

func TestManager_Dial(t *testing.T) {
	m, obs, d := newTestManager(t)
	ctx := context.Background()

	if err := m.AddNumber(ctx, "Family", "home", "123-456-7890"); err != nil {
		t.Fatalf("AddNumber() failed: %v", err)
	}
	if err := m.Dial(ctx, "Family", "home"); err != nil {
		t.Fatalf("Dial() failed: %v", err)
	}

	if len(d.numbers) != 1 || d.numbers[0] != "123-456-7890" {
		t.Errorf("dialer received %v, want [123-456-7890]", d.numbers)
	}

	types := obs.types()
	last := types[len(types)-1]
	if last != manager.EventDialComplete {
		t.Errorf("last event = %s, want %s", last, manager.EventDialComplete)
	}
}

func TestManager_Dial_UnassignedCode(t *testing.T) {
	m, _, d := newTestManager(t)

	err := m.Dial(context.Background(), "Family", "nobody")
	if !errors.Is(err, directory.ErrCodeNotFound) {
		t.Errorf("Dial() error = %v, want %v", err, directory.ErrCodeNotFound)
	}
	if len(d.numbers) != 0 {
		t.Errorf("dialer received %v, want no numbers", d.numbers)
	}
}

func TestManager_Dial_DialerFailure(t *testing.T) {
	dialErr := errors.New("no carrier")
	m, _, _ := newTestManager(t, manager.WithDialer(&captureDialer{err: dialErr}))
	ctx := context.Background()

	if err := m.AddNumber(ctx, "Family", "home", "111"); err != nil {
		t.Fatalf("AddNumber() failed: %v", err)
	}

	if err := m.Dial(ctx, "Family", "home"); !errors.Is(err, dialErr) {
		t.Errorf("Dial() error = %v, want %v", err, dialErr)
	}
}

func TestManager_ListDirectories(t *testing.T) {
	m, _, _ := newTestManager(t)

	names, err := m.ListDirectories(context.Background())
	if err != nil {
		t.Fatalf("ListDirectories() failed: %v", err)
	}
	if len(names) != 2 || names[0] != "Family" || names[1] != "Work" {
		t.Errorf("ListDirectories() = %v, want [Family Work]", names)
	}
}

func TestManager_Status(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	if err := m.AddNumber(ctx, "Work", "boss", "111"); err != nil {
		t.Fatalf("AddNumber() failed: %v", err)
	}

	statuses, err := m.Status(ctx)
	if err != nil {
		t.Fatalf("Status() failed: %v", err)
	}
	want := []manager.DirectoryStatus{
		{Name: "Family", Count: 0, Capacity: 3},
		{Name: "Work", Count: 1, Capacity: 3},
	}
	if len(statuses) != len(want) {
		t.Fatalf("got %d statuses, want %d", len(statuses), len(want))
	}
	for i := range want {
		if statuses[i] != want[i] {
			t.Errorf("Status()[%d] = %+v, want %+v", i, statuses[i], want[i])
		}
	}
}

func TestManager_Teardown(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	if err := m.Teardown(ctx); err != nil {
		t.Fatalf("Teardown() failed: %v", err)
	}
	if err := m.Teardown(ctx); !errors.Is(err, directory.ErrNotInitialized) {
		t.Errorf("second Teardown() error = %v, want %v", err, directory.ErrNotInitialized)
	}
	if err := m.AddNumber(ctx, "Family", "home", "111"); !errors.Is(err, directory.ErrNotInitialized) {
		t.Errorf("AddNumber() after Teardown error = %v, want %v", err, directory.ErrNotInitialized)
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			code := string(rune('a' + i))
			_ = m.AddNumber(ctx, "Family", code, "111")
			_, _ = m.GetNumber(ctx, "Family", code)
			_, _ = m.ListEntries(ctx, "Family")
		}(i)
	}
	wg.Wait()

	entries, err := m.ListEntries(ctx, "Family")
	if err != nil {
		t.Fatalf("ListEntries() failed: %v", err)
	}
	// Capacity is 3, so exactly 3 of the 10 racing adds can have landed.
	if len(entries) != 3 {
		t.Errorf("got %d entries, want 3", len(entries))
	}
}
