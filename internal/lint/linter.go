package lint

import (
	"git.home.luguber.info/inful/attrdoc/internal/catalog"
)

// Linter runs all rules over a catalog entry list.
type Linter struct {
	cfg   *Config
	rules []Rule
}

// NewLinter creates a linter with the given configuration.
func NewLinter(cfg *Config) *Linter {
	if cfg == nil {
		cfg = &Config{Format: "text"}
	}
	return &Linter{
		cfg: cfg,
		rules: []Rule{
			&FieldsRule{},
			&InheritsRule{},
			&DuplicateNameRule{},
			&DescriptionStyleRule{},
		},
	}
}

// LintEntries applies every rule to every entry in document order.
func (l *Linter) LintEntries(entries []catalog.Entry) *Result {
	result := &Result{
		Issues:       []Issue{},
		EntriesTotal: len(entries),
	}
	for idx := range entries {
		for _, rule := range l.rules {
			for _, issue := range rule.Check(idx, entries) {
				if l.cfg.Quiet && issue.Severity != SeverityError {
					continue
				}
				result.Issues = append(result.Issues, issue)
			}
		}
	}
	return result
}
