// Package atom implements the shared, reference-counted atom table:
// a process-local interning table mapping names to symbols, so that
// two atoms with equal names share one underlying entry.
package atom

import "sync"

// Atom is an interned name handle. Two Intern calls for the same name
// on the same Table return handles comparable by pointer identity.
type Atom struct {
	name  string
	table *Table
}

// Name returns the interned text of the atom.
func (a *Atom) Name() string {
	return a.name
}

// String implements fmt.Stringer.
func (a *Atom) String() string {
	return a.name
}

// Table is an interning table. Its zero value is not usable; create
// one with NewTable. Tables are safe for concurrent use even though a
// single compilation is single-threaded: guarding the table with a
// mutex costs nothing for a single-threaded caller and lets a future
// concurrent compiler share one table without changing this package.
type Table struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	atom *Atom
	refs int
}

// NewTable creates an empty interning table.
func NewTable() *Table {
	return &Table{entries: make(map[string]*entry)}
}

// Intern returns the shared Atom for name, creating and inserting it
// on first use. Each call increments the atom's reference count; the
// caller must eventually call Release for every successful Intern it
// no longer needs, once no other handle still refers to the atom.
func (t *Table) Intern(name string) *Atom {
	t.mu.Lock()
	defer t.mu.Unlock()

	if e, ok := t.entries[name]; ok {
		e.refs++
		return e.atom
	}

	a := &Atom{name: name, table: t}
	t.entries[name] = &entry{atom: a, refs: 1}
	return a
}

// Release drops one reference to a. When the last reference is
// dropped, the slot is reclaimed and a later Intern of the same name
// allocates a fresh Atom.
func (t *Table) Release(a *Atom) {
	if a == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[a.name]
	if !ok || e.atom != a {
		return
	}
	e.refs--
	if e.refs <= 0 {
		delete(t.entries, a.name)
	}
}

// Len reports the number of distinct interned names currently live.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// RefCount reports the current reference count for name, or 0 if the
// name is not currently interned. Intended for tests and diagnostics.
func (t *Table) RefCount(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.entries[name]; ok {
		return e.refs
	}
	return 0
}

var defaultTable = NewTable()

// Default returns the process-wide atom table: initialized once and
// grown on demand for the remainder of the process lifetime, shared by
// every caller that does not need an isolated table of its own.
func Default() *Table {
	return defaultTable
}
