// Package server exposes boards, lanes and cards over a JSON HTTP API
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/thenoetrevino/notscrum/internal/app"
)

// Options configures the HTTP server
type Options struct {
	Addr            string
	CORSOrigin      string
	ShutdownTimeout time.Duration
}

// Server represents the notscrum HTTP API
type Server struct {
	app     *app.App
	opts    Options
	logger  *slog.Logger
	router  *mux.Router
	handler http.Handler
	metrics *Metrics

	mu           sync.Mutex
	httpServer   *http.Server
	shutdownOnce sync.Once
}

// New creates a server for the services held by a
func New(a *app.App, opts Options) *Server {
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = 10 * time.Second
	}

	s := &Server{
		app:     a,
		opts:    opts,
		logger:  a.Logger(),
		router:  mux.NewRouter(),
		metrics: NewMetrics(),
	}
	s.registerRoutes(s.router)

	// Outermost first: every response, including 404s and panics, gets CORS
	// headers, a request ID and a log line
	s.handler = s.withCORS(s.withRequestID(s.withLogging(s.withRecovery(s.router))))
	return s
}

// Handler returns the fully wrapped HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Metrics returns the live request counters
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start listens on the configured address and serves until ctx is cancelled
func (s *Server) Start(ctx context.Context) error {
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve handles connections on ln until ctx is cancelled, then drains in-flight
// requests for at most ShutdownTimeout
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}
	s.mu.Lock()
	s.httpServer = srv
	s.mu.Unlock()

	s.logger.Info("server listening", "addr", ln.Addr().String())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("server context cancelled, shutting down")
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	return s.Shutdown()
}

// Shutdown stops accepting connections and waits for in-flight requests.
// It is safe to call more than once.
func (s *Server) Shutdown() error {
	var err error
	s.shutdownOnce.Do(func() {
		s.mu.Lock()
		srv := s.httpServer
		s.mu.Unlock()
		if srv == nil {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()

		if err = srv.Shutdown(ctx); err != nil {
			err = fmt.Errorf("graceful shutdown: %w", err)
			return
		}
		s.logger.Info("server stopped", "requests_total", s.metrics.RequestsTotal.Load())
	})
	return err
}
