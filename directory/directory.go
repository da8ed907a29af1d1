package directory

import (
	"fmt"
	"slices"
)

// A Directory is a named, capacity-bounded, insertion-ordered collection of
// speed-dial entries. Codes are unique within a directory. Storage is
// allocated once by the owning Store and never resized.
//
// Directories are obtained through Store.Find and share the store's
// single-threaded model: no internal synchronization.
type Directory struct {
	name     string
	entries  []Entry
	capacity int
}

func newDirectory(name string, capacity int) *Directory {
	return &Directory{
		name:     name,
		entries:  make([]Entry, 0, capacity),
		capacity: capacity,
	}
}

// Name returns the directory's configured name.
func (d *Directory) Name() string {
	return d.name
}

// Len returns the current number of entries.
func (d *Directory) Len() int {
	return len(d.entries)
}

// Cap returns the fixed entry capacity.
func (d *Directory) Cap() int {
	return d.capacity
}

// Add appends a new entry. The capacity guard runs before the duplicate
// scan, so a full directory reports ErrDirectoryFull even for codes it
// already holds. Existing entries never move.
func (d *Directory) Add(code, number string) error {
	if len(d.entries) >= d.capacity {
		return fmt.Errorf("%w: %q holds %d entries", ErrDirectoryFull, d.name, d.capacity)
	}
	for _, e := range d.entries {
		if e.Code == code {
			return fmt.Errorf("%w: %q in %q", ErrDuplicateCode, code, d.name)
		}
	}
	d.entries = append(d.entries, Entry{Code: code, Number: number})
	return nil
}

// Get returns the number assigned to code and true, or "" and false when the
// code is unassigned. Linear scan; the uniqueness invariant guarantees the
// first match is the only one.
func (d *Directory) Get(code string) (string, bool) {
	for _, e := range d.entries {
		if e.Code == code {
			return e.Number, true
		}
	}
	return "", false
}

// Remove deletes the entry for code, shifting later entries one position
// left so the surviving order is preserved. Returns ErrCodeNotFound and
// leaves the directory unchanged when the code is unassigned.
func (d *Directory) Remove(code string) error {
	for i, e := range d.entries {
		if e.Code == code {
			d.entries = append(d.entries[:i], d.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %q in %q", ErrCodeNotFound, code, d.name)
}

// List returns a defensive copy of the entries in insertion order.
func (d *Directory) List() []Entry {
	return slices.Clone(d.entries)
}
