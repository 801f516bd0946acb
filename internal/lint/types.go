// Package lint checks catalog entries for authoring mistakes: missing
// fields, dangling or cyclic parent references, duplicate names, and
// sloppy prose. The rules run over the raw entry list (builtins plus
// user catalogs) so problems a registry would refuse to load are still
// reported one by one.
package lint

// Severity indicates the importance level of a lint issue.
type Severity int

const (
	// SeverityInfo indicates informational messages.
	SeverityInfo Severity = iota
	// SeverityWarning indicates issues worth fixing that do not break generation.
	SeverityWarning
	// SeverityError indicates issues that will make generation fail or lie.
	SeverityError
)

// String returns the human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// MarshalText lets issues serialize with severity names in JSON output.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Issue represents a single problem found in a catalog entry.
type Issue struct {
	Entry    string   `json:"entry"`         // Name of the entry (may be empty for a nameless entry)
	Severity Severity `json:"severity"`      // Issue severity level
	Rule     string   `json:"rule"`          // Rule identifier (e.g. "entry-fields")
	Message  string   `json:"message"`       // Brief description of the issue
	Fix      string   `json:"fix,omitempty"` // Suggested fix
}

// Result contains all issues found during linting.
type Result struct {
	Issues       []Issue `json:"issues"`
	EntriesTotal int     `json:"entries_total"`
}

// HasErrors returns true if any error-level issues exist.
func (r *Result) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Count returns the number of issues at the given severity.
func (r *Result) Count(s Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == s {
			n++
		}
	}
	return n
}

// Config contains configuration for the linter.
type Config struct {
	// Quiet suppresses warnings and info, only showing errors.
	Quiet bool

	// Format specifies output format (text, json).
	Format string
}
