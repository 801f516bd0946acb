// Package catalog holds the documentation entries for the XSL-FO
// attribute sets used to render docutils document-info fields.
//
// Entries are static: they are authored once (built in or loaded from
// YAML catalog files), validated, and then only read. Inheritance
// between entries is documentation cross-referencing, not attribute
// merging; the registry validates that parent references form a forest
// but never combines attribute values.
package catalog

import "strings"

// Entry documents a single attribute set: which formatting-object
// element it applies to, which document-info source paths it renders,
// an optional parent attribute set it inherits from, and the prose
// explaining it.
type Entry struct {
	// Name is the attribute-set identifier, unique within a registry.
	Name string `yaml:"name"`

	// FOElement is the formatting-object element the attribute set
	// applies to, e.g. "fo:list-block".
	FOElement string `yaml:"fo"`

	// DocutilsSources lists the document-info paths this attribute set
	// renders, e.g. "document/docinfo/author".
	DocutilsSources []string `yaml:"docutils"`

	// InheritsFrom names the parent attribute set, if any.
	InheritsFrom string `yaml:"inherits,omitempty"`

	// Description holds the explanatory prose, one string per paragraph.
	Description []string `yaml:"description"`
}

// HasParent reports whether the entry declares a parent attribute set.
func (e Entry) HasParent() bool {
	return e.InheritsFrom != ""
}

// DocutilsSource returns the source paths joined for display.
func (e Entry) DocutilsSource() string {
	return strings.Join(e.DocutilsSources, ", ")
}
