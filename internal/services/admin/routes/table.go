package routes

import (
	"fmt"
	"strings"

	"github.com/louisbranch/fleetdesk/internal/services/admin/routepath"
	"github.com/louisbranch/fleetdesk/internal/services/shared/route"
)

// Entry binds a literal path to a named page.
type Entry struct {
	Path string
	Name string
	Page *PageRef
}

// Table is an immutable, ordered set of entries plus a not-found entry.
type Table struct {
	entries  []Entry
	byPath   map[string]int
	byName   map[string]int
	notFound Entry
}

// NewTable validates entries and builds a table. notFound is served for
// every unmatched path.
func NewTable(entries []Entry, notFound *PageRef) (*Table, error) {
	if notFound == nil {
		return nil, fmt.Errorf("not-found page is required")
	}
	table := &Table{
		entries:  make([]Entry, 0, len(entries)),
		byPath:   make(map[string]int, len(entries)),
		byName:   make(map[string]int, len(entries)),
		notFound: Entry{Name: routepath.NotFoundName, Page: notFound},
	}
	for i, entry := range entries {
		if err := validateEntry(entry); err != nil {
			return nil, fmt.Errorf("route %d: %w", i, err)
		}
		if _, exists := table.byPath[entry.Path]; exists {
			return nil, fmt.Errorf("route %d: duplicate path %q", i, entry.Path)
		}
		if _, exists := table.byName[entry.Name]; exists {
			return nil, fmt.Errorf("route %d: duplicate name %q", i, entry.Name)
		}
		table.byPath[entry.Path] = len(table.entries)
		table.byName[entry.Name] = len(table.entries)
		table.entries = append(table.entries, entry)
	}
	return table, nil
}

func validateEntry(entry Entry) error {
	if strings.TrimSpace(entry.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if entry.Name == routepath.NotFoundName {
		return fmt.Errorf("name %q is reserved", entry.Name)
	}
	if !strings.HasPrefix(entry.Path, "/") {
		return fmt.Errorf("path %q must start with '/'", entry.Path)
	}
	if route.CanonicalPath(entry.Path) != entry.Path {
		return fmt.Errorf("path %q must not end with '/'", entry.Path)
	}
	if entry.Page == nil {
		return fmt.Errorf("page for %q is required", entry.Name)
	}
	return nil
}

// Match returns the entry for path. Trailing slashes are ignored. When no
// entry matches it returns the not-found entry and false.
func (t *Table) Match(path string) (Entry, bool) {
	if idx, ok := t.byPath[route.CanonicalPath(path)]; ok {
		return t.entries[idx], true
	}
	return t.notFound, false
}

// Lookup finds an entry by name.
func (t *Table) Lookup(name string) (Entry, bool) {
	if name == routepath.NotFoundName {
		return t.notFound, true
	}
	idx, ok := t.byName[name]
	if !ok {
		return Entry{}, false
	}
	return t.entries[idx], true
}

// Entries returns the entries in declaration order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// NotFound returns the entry served for unmatched paths.
func (t *Table) NotFound() Entry {
	return t.notFound
}
