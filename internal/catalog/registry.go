package catalog

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Registry is an ordered, name-addressable set of entries. Order is
// document order: builtins first, then user catalog entries in the
// order their files were loaded.
type Registry struct {
	entries []Entry
	byName  map[string]int
}

// NewRegistry builds a registry from the given entries. Duplicate
// names are rejected; full invariant checking is done by Validate.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{byName: make(map[string]int, len(entries))}
	for _, e := range entries {
		if err := r.Add(e); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add appends an entry. Names are NFC-normalized so catalogs authored
// with different Unicode compositions address the same entry.
func (r *Registry) Add(e Entry) error {
	e.Name = norm.NFC.String(strings.TrimSpace(e.Name))
	if e.Name == "" {
		return errors.New("entry has empty name")
	}
	if _, exists := r.byName[e.Name]; exists {
		return fmt.Errorf("duplicate entry name: %s", e.Name)
	}
	r.byName[e.Name] = len(r.entries)
	r.entries = append(r.entries, e)
	return nil
}

// Upsert appends the entry, or replaces an existing entry with the
// same name in place (keeping its document-order position). User
// catalogs override builtins this way.
func (r *Registry) Upsert(e Entry) error {
	name := norm.NFC.String(strings.TrimSpace(e.Name))
	if idx, exists := r.byName[name]; exists {
		e.Name = name
		r.entries[idx] = e
		return nil
	}
	return r.Add(e)
}

// Lookup returns the entry with the given name.
func (r *Registry) Lookup(name string) (Entry, bool) {
	idx, ok := r.byName[norm.NFC.String(name)]
	if !ok {
		return Entry{}, false
	}
	return r.entries[idx], true
}

// Entries returns the entries in document order. The slice is a copy.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Chain returns the inheritance chain for the named entry, root first
// and the entry itself last. An unknown name or a broken link in the
// chain is an error.
func (r *Registry) Chain(name string) ([]Entry, error) {
	e, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown entry: %s", name)
	}

	chain := []Entry{e}
	seen := map[string]bool{e.Name: true}
	for e.HasParent() {
		parent, ok := r.Lookup(e.InheritsFrom)
		if !ok {
			return nil, fmt.Errorf("entry %s inherits from unknown entry %s", e.Name, e.InheritsFrom)
		}
		if seen[parent.Name] {
			return nil, fmt.Errorf("inheritance cycle through entry %s", parent.Name)
		}
		seen[parent.Name] = true
		chain = append([]Entry{parent}, chain...)
		e = parent
	}
	return chain, nil
}

// Validate checks the registry invariants: every entry has a name, an
// FO element, at least one docutils source and a description, and the
// parent references resolve without cycles. All violations are
// reported, joined into a single error.
func (r *Registry) Validate() error {
	var errs []error
	for _, e := range r.entries {
		if e.FOElement == "" {
			errs = append(errs, fmt.Errorf("entry %s: missing fo element", e.Name))
		}
		if len(e.DocutilsSources) == 0 {
			errs = append(errs, fmt.Errorf("entry %s: missing docutils source", e.Name))
		}
		if len(e.Description) == 0 {
			errs = append(errs, fmt.Errorf("entry %s: missing description", e.Name))
		}
		if e.HasParent() {
			if _, err := r.Chain(e.Name); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
