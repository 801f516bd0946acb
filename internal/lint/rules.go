package lint

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/attrdoc/internal/catalog"
)

// Rule checks one entry against the full entry list (cross-entry rules
// need the whole set to resolve references).
type Rule interface {
	// Name returns the unique identifier for this rule.
	Name() string

	// Check validates the entry at idx and returns any issues found.
	Check(idx int, entries []catalog.Entry) []Issue
}

// FieldsRule validates the required entry fields.
type FieldsRule struct{}

// Name returns the rule identifier.
func (r *FieldsRule) Name() string { return "entry-fields" }

// Check validates that name, fo element, docutils sources and
// description are present and non-empty.
func (r *FieldsRule) Check(idx int, entries []catalog.Entry) []Issue {
	e := entries[idx]
	var issues []Issue

	if strings.TrimSpace(e.Name) == "" {
		issues = append(issues, Issue{
			Severity: SeverityError,
			Rule:     r.Name(),
			Message:  fmt.Sprintf("entry #%d has no name", idx+1),
			Fix:      "Add a unique attribute-set name",
		})
		return issues
	}
	if strings.TrimSpace(e.FOElement) == "" {
		issues = append(issues, Issue{
			Entry:    e.Name,
			Severity: SeverityError,
			Rule:     r.Name(),
			Message:  "missing fo element",
			Fix:      "Add the formatting-object element this attribute set applies to, e.g. fo:block",
		})
	}
	if len(e.DocutilsSources) == 0 {
		issues = append(issues, Issue{
			Entry:    e.Name,
			Severity: SeverityError,
			Rule:     r.Name(),
			Message:  "missing docutils source",
			Fix:      "Add at least one document-info path, e.g. document/docinfo/author",
		})
	}
	if len(e.Description) == 0 {
		issues = append(issues, Issue{
			Entry:    e.Name,
			Severity: SeverityError,
			Rule:     r.Name(),
			Message:  "missing description",
		})
	}
	return issues
}

// InheritsRule validates parent references: they must name an existing
// entry and must not form a cycle.
type InheritsRule struct{}

// Name returns the rule identifier.
func (r *InheritsRule) Name() string { return "inherits-resolves" }

// Check follows the parent chain of the entry.
func (r *InheritsRule) Check(idx int, entries []catalog.Entry) []Issue {
	e := entries[idx]
	if !e.HasParent() {
		return nil
	}

	byName := make(map[string]catalog.Entry, len(entries))
	for _, other := range entries {
		byName[other.Name] = other
	}

	if e.InheritsFrom == e.Name {
		return []Issue{{
			Entry:    e.Name,
			Severity: SeverityError,
			Rule:     r.Name(),
			Message:  "entry inherits from itself",
			Fix:      "Remove the inherits field or point it at another entry",
		}}
	}

	seen := map[string]bool{e.Name: true}
	cur := e
	for cur.HasParent() {
		parent, ok := byName[cur.InheritsFrom]
		if !ok {
			return []Issue{{
				Entry:    e.Name,
				Severity: SeverityError,
				Rule:     r.Name(),
				Message:  fmt.Sprintf("inherits from unknown entry %q", cur.InheritsFrom),
				Fix:      "Reference an entry that exists in the catalog",
			}}
		}
		if seen[parent.Name] {
			return []Issue{{
				Entry:    e.Name,
				Severity: SeverityError,
				Rule:     r.Name(),
				Message:  fmt.Sprintf("inheritance cycle through entry %q", parent.Name),
				Fix:      "Break the cycle; attribute-set inheritance must form a forest",
			}}
		}
		seen[parent.Name] = true
		cur = parent
	}
	return nil
}

// DuplicateNameRule reports entries whose name already appeared earlier
// in the list.
type DuplicateNameRule struct{}

// Name returns the rule identifier.
func (r *DuplicateNameRule) Name() string { return "duplicate-names" }

// Check reports the later occurrence of a duplicated name.
func (r *DuplicateNameRule) Check(idx int, entries []catalog.Entry) []Issue {
	e := entries[idx]
	if e.Name == "" {
		return nil
	}
	for _, earlier := range entries[:idx] {
		if earlier.Name == e.Name {
			return []Issue{{
				Entry:    e.Name,
				Severity: SeverityWarning,
				Rule:     r.Name(),
				Message:  "entry name already defined earlier; the later definition replaces it",
				Fix:      "Rename one of the entries, or drop the override if unintended",
			}}
		}
	}
	return nil
}

// DescriptionStyleRule flags sloppy prose that renders badly.
type DescriptionStyleRule struct{}

// Name returns the rule identifier.
func (r *DescriptionStyleRule) Name() string { return "description-style" }

// Check flags empty paragraphs and trailing whitespace.
func (r *DescriptionStyleRule) Check(idx int, entries []catalog.Entry) []Issue {
	e := entries[idx]
	var issues []Issue
	for i, p := range e.Description {
		if strings.TrimSpace(p) == "" {
			issues = append(issues, Issue{
				Entry:    e.Name,
				Severity: SeverityWarning,
				Rule:     r.Name(),
				Message:  fmt.Sprintf("description paragraph %d is empty", i+1),
				Fix:      "Remove the empty paragraph",
			})
			continue
		}
		if p != strings.TrimRight(p, " \t") {
			issues = append(issues, Issue{
				Entry:    e.Name,
				Severity: SeverityWarning,
				Rule:     r.Name(),
				Message:  fmt.Sprintf("description paragraph %d has trailing whitespace", i+1),
				Fix:      "Trim trailing spaces and tabs",
			})
		}
	}
	return issues
}
