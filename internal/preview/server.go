// Package preview serves the HTML rendering of the catalog and keeps
// it fresh: a filesystem watcher rebuilds on catalog edits, and a
// scheduled refresh catches anything the watcher misses.
package preview

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"git.home.luguber.info/inful/attrdoc/internal/catalog"
	"git.home.luguber.info/inful/attrdoc/internal/config"
	"git.home.luguber.info/inful/attrdoc/internal/logfields"
	"git.home.luguber.info/inful/attrdoc/internal/metrics"
	"git.home.luguber.info/inful/attrdoc/internal/render"
)

// Server renders the catalog to HTML and serves it.
type Server struct {
	cfg            *config.Config
	rec            metrics.Recorder
	metricsHandler http.Handler // nil when metrics are disabled

	mu       sync.RWMutex
	page     []byte
	lastErr  error
	lastGood bool
}

// New creates a preview server. The metrics handler may be nil.
func New(cfg *config.Config, rec metrics.Recorder, metricsHandler http.Handler) *Server {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &Server{cfg: cfg, rec: rec, metricsHandler: metricsHandler}
}

// Rebuild reloads the catalog and re-renders the HTML page. A failed
// rebuild keeps the last good page (if any) and records the error for
// the error banner.
func (s *Server) Rebuild() error {
	started := time.Now()
	err := s.rebuild()
	s.rec.ObserveRenderDuration("html", time.Since(started))
	if err != nil {
		s.rec.IncRenderOutcome("html", metrics.OutcomeFailed)
		s.rec.IncPreviewRebuild(false)
		return err
	}
	s.rec.IncRenderOutcome("html", metrics.OutcomeSuccess)
	s.rec.IncPreviewRebuild(true)
	return nil
}

func (s *Server) rebuild() error {
	reg, err := catalog.Load(s.cfg.Catalogs...)
	if err != nil {
		s.setError(err)
		return err
	}
	page, err := render.HTML(s.cfg.Title, reg)
	if err != nil {
		s.setError(err)
		return err
	}

	s.mu.Lock()
	s.page = page
	s.lastErr = nil
	s.lastGood = true
	s.mu.Unlock()

	slog.Info("Preview rebuilt", logfields.Entries(reg.Len()))
	return nil
}

func (s *Server) setError(err error) {
	s.mu.Lock()
	s.lastErr = err
	s.mu.Unlock()
}

// Run performs an initial build, starts the watcher and the scheduled
// refresh, and serves HTTP until the context is canceled.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Rebuild(); err != nil {
		// Keep serving; the error page tells the author what to fix.
		slog.Error("Initial preview build failed", logfields.Error(err))
	}

	watcher, err := newCatalogWatcher(s.cfg.Catalogs, s.onChange)
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()
	watcher.Start(ctx)

	refresh, err := startRefreshScheduler(s.cfg.Preview, s.onChange)
	if err != nil {
		return err
	}
	defer func() {
		if err := refresh.Stop(); err != nil {
			slog.Warn("Failed to stop refresh scheduler", logfields.Error(err))
		}
	}()

	httpServer := &http.Server{
		Addr:              s.cfg.Preview.Listen,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("Preview server listening", "addr", s.cfg.Preview.Listen)
		errChan <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("preview server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown preview server: %w", err)
	}
	return nil
}

func (s *Server) onChange() {
	if err := s.Rebuild(); err != nil {
		slog.Error("Preview rebuild failed", logfields.Error(err))
	}
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/healthz", s.handleHealthz)
	if s.metricsHandler != nil {
		mux.Handle("/metrics", s.metricsHandler)
	}
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.rec.IncPreviewRequest()

	s.mu.RLock()
	page, lastErr, lastGood := s.page, s.lastErr, s.lastGood
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if lastErr != nil {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "<html><body><h1>Catalog error</h1><pre>%s</pre>", html.EscapeString(lastErr.Error()))
		if lastGood {
			fmt.Fprint(w, "<p>The last successful rendering is stale.</p>")
		}
		fmt.Fprint(w, "</body></html>")
		return
	}
	_, _ = w.Write(page)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	healthy := s.lastErr == nil && s.lastGood
	s.mu.RUnlock()

	if !healthy {
		http.Error(w, "catalog not rendering", http.StatusServiceUnavailable)
		return
	}
	fmt.Fprintln(w, "ok")
}
