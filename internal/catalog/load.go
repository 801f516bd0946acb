package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// ResolveGlobs expands doublestar patterns into a sorted, de-duplicated
// list of catalog file paths. A pattern that matches nothing is not an
// error; authors may configure patterns for catalogs that appear later.
func ResolveGlobs(globs []string) ([]string, error) {
	seen := make(map[string]bool)
	var paths []string
	for _, g := range globs {
		matches, err := doublestar.FilepathGlob(g)
		if err != nil {
			return nil, fmt.Errorf("bad catalog pattern %q: %w", g, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadEntries returns the built-in entries followed by all entries from
// catalog files matched by the given globs, in file order. No registry
// invariants are enforced; use Load for a validated registry.
func LoadEntries(globs ...string) ([]Entry, error) {
	entries, err := BuiltinEntries()
	if err != nil {
		return nil, err
	}

	paths, err := ResolveGlobs(globs)
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		fileEntries, err := readCatalogFile(path)
		if err != nil {
			return nil, err
		}
		slog.Debug("Loaded catalog file", "path", path, "entries", len(fileEntries))
		entries = append(entries, fileEntries...)
	}
	return entries, nil
}

// Load builds a validated registry from the built-in catalog plus any
// catalog files matched by the globs. A later entry with the same name
// replaces the earlier one in place, so user catalogs can override
// builtins. Duplicates inside one file are surfaced by lint.
func Load(globs ...string) (*Registry, error) {
	reg, err := Builtin()
	if err != nil {
		return nil, err
	}

	paths, err := ResolveGlobs(globs)
	if err != nil {
		return nil, err
	}
	for _, path := range paths {
		fileEntries, err := readCatalogFile(path)
		if err != nil {
			return nil, err
		}
		for _, e := range fileEntries {
			if err := reg.Upsert(e); err != nil {
				return nil, fmt.Errorf("catalog %s: %w", path, err)
			}
		}
		slog.Info("Loaded catalog file", "path", path, "entries", len(fileEntries))
	}

	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("catalog validation: %w", err)
	}
	return reg, nil
}

func readCatalogFile(path string) ([]Entry, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- operator-supplied catalog path
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return f.AttributeSets, nil
}
