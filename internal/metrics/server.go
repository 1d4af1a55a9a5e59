package metrics

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/agbru/fibmodes/internal/logging"
)

// Timeouts holds timeout configuration for the metrics server.
type Timeouts struct {
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	ShutdownTimeout   time.Duration
}

// DefaultTimeouts returns conservative timeouts for a scrape endpoint.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		ShutdownTimeout:   5 * time.Second,
	}
}

// Server serves /metrics and /healthz.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
	logger     logging.Logger
	timeouts   Timeouts
	errCh      chan error
}

// NewRouter builds the chi router for the metrics endpoint.
func NewRouter(rec *Recorder) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", rec.Handler())
	return r
}

// NewServer creates a metrics server for addr. It does not listen until Start.
func NewServer(addr string, rec *Recorder, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	t := DefaultTimeouts()
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(rec),
			ReadHeaderTimeout: t.ReadHeaderTimeout,
			WriteTimeout:      t.WriteTimeout,
		},
		logger:   logger,
		timeouts: t,
		errCh:    make(chan error, 1),
	}
}

// Start binds the listener and serves in the background. Bind errors are
// returned synchronously.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	s.listener = ln
	s.logger.Info("metrics server listening", logging.String("addr", ln.Addr().String()))

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("metrics server stopped", err)
			s.errCh <- err
		}
		close(s.errCh)
	}()
	return nil
}

// Addr returns the bound address, or the configured one before Start.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.httpServer.Addr
}

// Shutdown stops the server gracefully, bounded by the shutdown timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeouts.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	if s.listener == nil {
		return nil
	}
	return <-s.errCh
}
