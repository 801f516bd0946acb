package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyFormat     = "format"
	KeyEntries    = "entries"
	KeyEntry      = "entry"
	KeyRule       = "rule"
	KeySeverity   = "severity"
	KeyPath       = "path"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Entries(n int) slog.Attr         { return slog.Int(KeyEntries, n) }
func Entry(name string) slog.Attr     { return slog.String(KeyEntry, name) }
func Rule(name string) slog.Attr      { return slog.String(KeyRule, name) }
func Severity(s string) slog.Attr     { return slog.String(KeySeverity, s) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
