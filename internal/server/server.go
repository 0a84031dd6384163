// Package server implements the read-only HTTP API for colorvane serve.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/colorvane/colorvane/internal/catalog"
	"github.com/colorvane/colorvane/internal/catfile"
	"github.com/colorvane/colorvane/internal/runlog"
)

// Config holds server configuration.
type Config struct {
	Host string
	Port int

	// Watch reloads the catalog when its file changes on disk.
	Watch bool
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		Host:  "localhost",
		Port:  7461,
		Watch: true,
	}
}

// Server serves nearest-name lookups over the catalog.
type Server struct {
	catalogPath string
	config      Config
	router      chi.Router

	mu  sync.RWMutex
	cat catalog.Catalog
}

// New creates a server over the catalog file at catalogPath. The catalog
// is loaded eagerly so a bad file fails startup instead of every request.
func New(catalogPath string, config Config) (*Server, error) {
	s := &Server{
		catalogPath: catalogPath,
		config:      config,
	}
	if err := s.Reload(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	s.router = s.setupRouter()
	return s, nil
}

// setupRouter configures all routes.
func (s *Server) setupRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  log.New(runlog.Log.Writer(), "", log.LstdFlags),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/name", s.handleGetName)
		r.Get("/colors", s.handleGetColors)
		r.Get("/colors/{hex}", s.handleGetColor)
	})

	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

// Router returns the chi router, for tests and for combining servers.
func (s *Server) Router() chi.Router {
	return s.router
}

// Addr returns the server address.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// Catalog returns the currently loaded catalog.
func (s *Server) Catalog() catalog.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cat
}

// Reload re-reads the catalog file and swaps it in atomically. The old
// catalog stays live if the new file fails to parse.
func (s *Server) Reload() error {
	c, err := catfile.Load(s.catalogPath)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cat = c
	s.mu.Unlock()

	catalogSize.Set(float64(len(c)))
	return nil
}

// Run serves HTTP until the context is canceled, reloading the catalog on
// file changes when configured to watch.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.Addr(),
		Handler: s.router,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}

	runlog.Log.Info("Server listening", "addr", s.Addr(), "entries", len(s.Catalog()))

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if s.config.Watch {
		g.Go(func() error {
			return s.watchCatalog(ctx)
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
