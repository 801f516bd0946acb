package preview

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/attrdoc/internal/config"
	"git.home.luguber.info/inful/attrdoc/internal/metrics"
)

func TestServer_ServesRenderedCatalog(t *testing.T) {
	cfg := config.Default()
	s := New(cfg, metrics.NoopRecorder{}, nil)
	require.NoError(t, s.Rebuild())

	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "bibliographic-fields-first-list-item")
}

func TestServer_HealthzBeforeAndAfterBuild(t *testing.T) {
	cfg := config.Default()
	s := New(cfg, nil, nil)

	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	require.NoError(t, s.Rebuild())

	rec = httptest.NewRecorder()
	s.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_BrokenCatalogShowsError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("attribute_sets: [broken"), 0o600))

	cfg := config.Default()
	cfg.Catalogs = []string{filepath.Join(dir, "*.yaml")}

	s := New(cfg, nil, nil)
	require.Error(t, s.Rebuild())

	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Catalog error")
}

func TestServer_RecoversAfterCatalogFix(t *testing.T) {
	dir := t.TempDir()
	badPath := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badPath, []byte("attribute_sets: [broken"), 0o600))

	cfg := config.Default()
	cfg.Catalogs = []string{filepath.Join(dir, "*.yaml")}
	s := New(cfg, nil, nil)
	require.Error(t, s.Rebuild())

	require.NoError(t, os.WriteFile(badPath, []byte("attribute_sets: []"), 0o600))
	require.NoError(t, s.Rebuild())

	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_MetricsEndpoint(t *testing.T) {
	pr := metrics.NewPrometheusRecorder(nil)
	cfg := config.Default()
	s := New(cfg, pr, pr.Handler())
	require.NoError(t, s.Rebuild())

	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "attrdoc_render_outcomes_total")
}

func TestServer_MetricsDisabled(t *testing.T) {
	cfg := config.Default()
	s := New(cfg, nil, nil)

	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_UnknownPath(t *testing.T) {
	cfg := config.Default()
	s := New(cfg, nil, nil)
	require.NoError(t, s.Rebuild())

	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
