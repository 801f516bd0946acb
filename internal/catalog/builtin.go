package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed builtin.yaml
var builtinYAML []byte

// file is the on-disk (and embedded) catalog document shape.
type file struct {
	AttributeSets []Entry `yaml:"attribute_sets"`
}

// BuiltinEntries returns the built-in bibliographic-fields entries in
// document order, without building a registry. The lint command works
// on this raw form so it can report problems a registry would reject.
func BuiltinEntries() ([]Entry, error) {
	var f file
	if err := yaml.Unmarshal(builtinYAML, &f); err != nil {
		return nil, fmt.Errorf("parse builtin catalog: %w", err)
	}
	return f.AttributeSets, nil
}

// Builtin returns a validated registry of the built-in catalog.
func Builtin() (*Registry, error) {
	entries, err := BuiltinEntries()
	if err != nil {
		return nil, err
	}
	reg, err := NewRegistry(entries...)
	if err != nil {
		return nil, fmt.Errorf("builtin catalog: %w", err)
	}
	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("builtin catalog: %w", err)
	}
	return reg, nil
}
