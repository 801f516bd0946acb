package lint

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Formatter formats lint results for output.
type Formatter interface {
	Format(w io.Writer, result *Result) error
}

// NewFormatter returns the formatter for the given format name.
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "", "text":
		return &TextFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown lint output format: %s", format)
	}
}

// TextFormatter formats results as human-readable text.
type TextFormatter struct{}

// Format outputs results in human-readable text format.
func (f *TextFormatter) Format(w io.Writer, result *Result) error {
	for _, issue := range result.Issues {
		name := issue.Entry
		if name == "" {
			name = "(unnamed entry)"
		}
		if _, err := fmt.Fprintf(w, "%s  %s  [%s]\n  %s\n", issue.Severity, name, issue.Rule, issue.Message); err != nil {
			return err
		}
		if issue.Fix != "" {
			if _, err := fmt.Fprintf(w, "  fix: %s\n", issue.Fix); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, strings.Repeat("━", 60)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Results:\n  %d entries checked\n", result.EntriesTotal); err != nil {
		return err
	}

	errorCount := result.Count(SeverityError)
	warningCount := result.Count(SeverityWarning)
	if errorCount > 0 {
		if _, err := fmt.Fprintf(w, "  %d error%s (blocks generation)\n", errorCount, pluralize(errorCount)); err != nil {
			return err
		}
	}
	if warningCount > 0 {
		if _, err := fmt.Fprintf(w, "  %d warning%s (should fix)\n", warningCount, pluralize(warningCount)); err != nil {
			return err
		}
	}
	if errorCount == 0 && warningCount == 0 {
		if _, err := fmt.Fprintln(w, "  no issues found"); err != nil {
			return err
		}
	}
	return nil
}

// JSONFormatter formats results as JSON for machine consumption.
type JSONFormatter struct{}

// Format outputs results as indented JSON.
func (f *JSONFormatter) Format(w io.Writer, result *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func pluralize(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
