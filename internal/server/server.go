// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server serves the dashboard over HTTP. The spreadsheet is loaded
// once in the background; until it arrives every view reports loading.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/paper-dashboard/internal/dashboard"
	"github.com/pdiddy/paper-dashboard/pkg/types"
)

const (
	defaultAddr            = ":8080"
	defaultShutdownTimeout = 5 * time.Second
	readHeaderTimeout      = 10 * time.Second
)

//go:embed templates/*.html
var templateFiles embed.FS

// Loader produces the spreadsheet rows.
type Loader interface {
	Load(ctx context.Context) ([]types.RawRow, error)
}

// Server holds the router and the loaded snapshot.
type Server struct {
	cfg    types.ServerConfig
	router *chi.Mux
	logger *zap.Logger
	tmpl   *template.Template
	snap   atomic.Pointer[dashboard.Snapshot]
}

// New builds a Server with its routes. A nil logger discards output.
func New(cfg types.ServerConfig, logger *zap.Logger) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		cfg:    cfg,
		router: chi.NewRouter(),
		logger: logger,
		tmpl:   tmpl,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.requestLogger)
	s.router.Use(middleware.Recoverer)
}

func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleIndex)
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/scatter", s.handleScatter)
		r.Get("/radar/{series}", s.handleRadar)
		r.Get("/table", s.handleTable)
	})
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Snapshot returns the loaded snapshot, or nil while loading.
func (s *Server) Snapshot() *dashboard.Snapshot {
	return s.snap.Load()
}

// SetSnapshot publishes snap to all subsequent requests.
func (s *Server) SetSnapshot(snap *dashboard.Snapshot) {
	s.snap.Store(snap)
}

// LoadOnce runs loader and publishes the result. A failure is logged and
// the dashboard stays in the loading state.
func (s *Server) LoadOnce(ctx context.Context, loader Loader) {
	start := time.Now()
	rows, err := loader.Load(ctx)
	if err != nil {
		s.logger.Error("loading spreadsheet", zap.Error(err))
		return
	}
	snap := dashboard.NewSnapshot(rows)
	s.SetSnapshot(snap)
	s.logger.Info("dashboard ready",
		zap.Int("records", len(snap.Records)),
		zap.Int("points", len(snap.Points)),
		zap.Duration("elapsed", time.Since(start)))
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context, loader Loader) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln, loader)
}

// Serve serves on ln while loader runs in the background. It returns nil
// after a graceful shutdown triggered by ctx.
func (s *Server) Serve(ctx context.Context, ln net.Listener, loader Loader) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	if loader != nil {
		g.Go(func() error {
			s.LoadOnce(gctx, loader)
			return nil
		})
	}

	g.Go(func() error {
		s.logger.Info("serving dashboard", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}
