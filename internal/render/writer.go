package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteOutput writes rendered content under outDir at relativePath.
// The path must stay inside outDir; parent directories are created as
// needed and an existing file is replaced (generation output is
// derived, never authored by hand).
func WriteOutput(outDir, relativePath string, content []byte) (string, error) {
	if outDir == "" {
		return "", errors.New("output directory is required")
	}
	if relativePath == "" {
		return "", errors.New("output path is required")
	}

	cleanRel := filepath.Clean(relativePath)
	if filepath.IsAbs(cleanRel) || strings.HasPrefix(cleanRel, "..") {
		return "", errors.New("output path must be relative to the output directory")
	}

	fullPath := filepath.Join(outDir, cleanRel)
	rel, err := filepath.Rel(outDir, fullPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", errors.New("output path escapes the output directory")
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	// #nosec G304 -- fullPath is validated to stay under outDir.
	if err := os.WriteFile(fullPath, content, 0o600); err != nil {
		return "", fmt.Errorf("write output file: %w", err)
	}
	return fullPath, nil
}
