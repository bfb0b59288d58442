// Package server exposes the colour catalog over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/time/rate"

	"swatchbook/internal/catalog"
	"swatchbook/internal/config"
	"swatchbook/internal/store"
)

// Server serves the catalog API.
type Server struct {
	catalog *catalog.Catalog
	store   *store.Store
	logger  hclog.Logger
	limiter *rate.Limiter
	httpSrv *http.Server
}

// New creates a server for the given catalog. The store may be nil, in
// which case imports are applied to the in-memory catalog only.
func New(cat *catalog.Catalog, st *store.Store, cfg config.ServerConfig, logger hclog.Logger) *Server {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	s := &Server{
		catalog: cat,
		store:   st,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	}

	s.httpSrv = &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/colors", s.handleListColors)
	mux.HandleFunc("GET /api/colors/export", s.handleExport)
	mux.HandleFunc("GET /api/colors/{id}", s.handleGetColor)
	mux.HandleFunc("POST /api/colors/import", s.handleImport)
	mux.HandleFunc("POST /api/colors/import/image", s.handleImportImage)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/similar", s.handleSimilar)

	return s.logRequests(s.rateLimit(mux))
}

// Handler returns the full middleware-wrapped handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

// Run starts the HTTP server and blocks until the context is cancelled,
// then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.httpSrv.Addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
