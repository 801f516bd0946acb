package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "attrdoc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "output:\n  directory: ./out\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./out", cfg.Output.Directory)
	assert.Equal(t, "rst", cfg.Output.Format)
	assert.Equal(t, "attribute-sets", cfg.Output.Filename)
	assert.Equal(t, "Bibliographic Fields Attribute Sets", cfg.Title)
	assert.Equal(t, ":8080", cfg.Preview.Listen)
	assert.Equal(t, "5m", cfg.Preview.RefreshInterval)
	assert.Equal(t, "./attrdoc-history.db", cfg.History.Path)
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("ATTRDOC_TEST_DIR", "/tmp/rendered")
	path := writeConfig(t, "output:\n  directory: ${ATTRDOC_TEST_DIR}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/rendered", cfg.Output.Directory)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "output: [broken")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
catalogs:
  - catalogs/**/*.yaml
title: Custom Title
output:
  directory: ./docs
  format: markdown
  filename: fields
preview:
  listen: 127.0.0.1:9999
  refresh_interval: 30s
  metrics: true
history:
  path: /var/lib/attrdoc/history.db
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"catalogs/**/*.yaml"}, cfg.Catalogs)
	assert.Equal(t, "Custom Title", cfg.Title)
	assert.Equal(t, "markdown", cfg.Output.Format)
	assert.Equal(t, "fields", cfg.Output.Filename)
	assert.True(t, cfg.Preview.Metrics)

	d, err := cfg.Preview.RefreshIntervalDuration()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, d)
}

func TestRefreshIntervalDuration_Invalid(t *testing.T) {
	p := PreviewConfig{RefreshInterval: "soon"}
	_, err := p.RefreshIntervalDuration()
	require.Error(t, err)

	p.RefreshInterval = "-1m"
	_, err = p.RefreshIntervalDuration()
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "./docs", cfg.Output.Directory)
	d, err := cfg.Preview.RefreshIntervalDuration()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, d)
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attrdoc.yaml")
	require.NoError(t, Init(path, false))

	// The generated example must itself load.
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Catalogs)

	// Refuses to clobber without force.
	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))
}
