// Package ui provides the web upload interface for dbsources.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ukaji3/dbsources-go/pkg/dbsources"
	"golang.org/x/sync/errgroup"
)

// Server is the upload UI server.
type Server struct {
	handlers *Handlers
	port     int
	logger   *slog.Logger
}

// Config holds configuration for the UI server.
type Config struct {
	Options        dbsources.Options
	Port           int
	MaxUploadBytes int64
	PreviewLimit   int
	Logger         *slog.Logger
}

// NewServer creates a new UI server instance.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Server{
		handlers: NewHandlers(cfg.Options, cfg.MaxUploadBytes, cfg.PreviewLimit, logger),
		port:     cfg.Port,
		logger:   logger,
	}
}

// Router returns the HTTP handler with all routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
	)
	SetupRoutes(r, s.handlers)
	return r
}

// SetupRoutes configures the upload routes.
func SetupRoutes(router chi.Router, h *Handlers) {
	router.Get("/", h.HandleIndex)
	router.Post("/preview", h.HandlePreview)
	router.Post("/download", h.HandleDownload)
	router.Get("/healthz", h.HandleHealth)
}

// Serve starts the UI server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting UI server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: s.Router(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down UI server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
