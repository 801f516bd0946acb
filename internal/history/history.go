// Package history records generation runs so operators can see what
// was generated, when, and whether the output changed.
package history

import (
	"time"

	"github.com/google/uuid"
)

// Run statuses.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Run describes one generation run.
type Run struct {
	ID           string
	StartedAt    time.Time
	Duration     time.Duration
	Format       string
	EntryCount   int
	OutputDigest string // SHA-256 of the rendered output, hex-encoded
	Status       string
}

// NewRun creates a run with a fresh id and start time.
func NewRun(format string) Run {
	return Run{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Format:    format,
	}
}
