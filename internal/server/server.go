// Package server exposes audits over HTTP. It is the backend for
// `stackaudit serve`: scans run server-side and results persist in the
// configured cache backend, keyed by run ID.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/stackaudit/pkg/audit"
	"github.com/matzehuels/stackaudit/pkg/cache"
	"github.com/matzehuels/stackaudit/pkg/license"
	"github.com/matzehuels/stackaudit/pkg/taxonomy"
)

// scanTTL bounds how long persisted scan results stay retrievable.
const scanTTL = 24 * time.Hour

// Auditor runs audits. *audit.Runner satisfies it.
type Auditor interface {
	Run(ctx context.Context, path string) (*audit.Result, error)
}

// TaxonomyStatuser reports taxonomy snapshot state. *taxonomy.Cache
// satisfies it.
type TaxonomyStatuser interface {
	Load() (license.Taxonomy, bool)
	Status() taxonomy.Status
}

// Server wires the HTTP API together.
type Server struct {
	auditor  Auditor
	taxCache TaxonomyStatuser
	fetcher  audit.TaxonomyFetcher
	backend  cache.Cache
	keyer    cache.Keyer
	logger   *log.Logger
}

// New assembles a Server. fetcher may be nil; the taxonomy endpoint then
// serves only what the snapshot holds.
func New(auditor Auditor, taxCache TaxonomyStatuser, fetcher audit.TaxonomyFetcher, backend cache.Cache, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		auditor:  auditor,
		taxCache: taxCache,
		fetcher:  fetcher,
		backend:  backend,
		keyer:    cache.NewDefaultKeyer(),
		logger:   logger,
	}
}

// Namespace prefixes all cache keys for this instance. Instances sharing a
// Redis or MongoDB backend use distinct namespaces to keep their stored
// scan results separate.
func (s *Server) Namespace(prefix string) {
	if prefix == "" {
		return
	}
	s.keyer = cache.NewScopedKeyer(s.keyer, prefix+":")
}

// Routes returns the HTTP handler for the API.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/cache/status", s.handleCacheStatus)
		r.Get("/taxonomy", s.handleTaxonomy)
		r.Post("/scans", s.handleCreateScan)
		r.Get("/scans/{id}", s.handleGetScan)
	})
	return r
}

// ListenAndServe runs the API until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}
