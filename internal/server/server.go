// Package server exposes a Heap's programmatic surface over HTTP, grounded
// on the teacher's internal/server package.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/fibheap/internal/apperrors"
	"github.com/agbru/fibheap/internal/config"
	"github.com/agbru/fibheap/internal/heap"
	"github.com/agbru/fibheap/internal/logging"
)

// heapJob is a unit of work submitted to the heap's owning goroutine.
type heapJob func(h *heap.Heap)

// Server serves a single Heap's operations over HTTP. Every call into the
// heap is serialized through a single background goroutine that owns it (a
// size-1 job channel): the core stays single-threaded, per its explicit
// Non-goal, while multiple HTTP requests may be in flight at the transport
// layer simultaneously.
type Server struct {
	h              *heap.Heap
	cfg            config.AppConfig
	httpServer     *http.Server
	logger         logging.Logger
	jobs           chan heapJob
	stopWorker     chan struct{}
	shutdownSignal chan os.Signal
	rateLimiter    *RateLimiter
	securityConfig SecurityConfig
	metrics        *Metrics
	timeouts       Timeouts
}

// NewServer builds a Server around an already-constructed Heap and starts
// its owning worker goroutine.
func NewServer(h *heap.Heap, cfg config.AppConfig, opts ...Option) *Server {
	s := &Server{
		h:              h,
		cfg:            cfg,
		logger:         logging.NewLogger(os.Stdout, "server"),
		jobs:           make(chan heapJob, 1),
		stopWorker:     make(chan struct{}),
		shutdownSignal: make(chan os.Signal, 1),
		securityConfig: DefaultSecurityConfig(),
		metrics:        NewMetrics(),
		timeouts:       DefaultServerTimeouts(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.rateLimiter == nil {
		s.rateLimiter = NewRateLimiter(DefaultRateLimiterConfig())
	}

	go s.runWorker()

	mux := http.NewServeMux()
	mux.HandleFunc("/allocate", s.wrapWithMiddleware(s.handleAllocate))
	mux.HandleFunc("/free", s.wrapWithMiddleware(s.handleFree))
	mux.HandleFunc("/reference", s.wrapWithMiddleware(s.handleReference))
	mux.HandleFunc("/root", s.wrapWithMiddleware(s.handleRoot))
	mux.HandleFunc("/collect", s.wrapWithMiddleware(s.handleCollect))
	mux.HandleFunc("/blocks", s.wrapWithMiddleware(s.handleBlocks))
	mux.HandleFunc("/stats", s.wrapWithMiddleware(s.handleStats))
	mux.HandleFunc("/health", s.wrapWithMiddleware(s.handleHealth))
	mux.HandleFunc("/metrics", s.wrapWithMiddleware(s.handleMetrics))

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  s.timeouts.ReadTimeout,
		WriteTimeout: s.timeouts.WriteTimeout,
		IdleTimeout:  s.timeouts.IdleTimeout,
	}

	return s
}

// runWorker is the sole goroutine that ever touches s.h, draining jobs
// submitted by handlers one at a time.
func (s *Server) runWorker() {
	for {
		select {
		case job := <-s.jobs:
			job(s.h)
		case <-s.stopWorker:
			return
		}
	}
}

// submit runs fn against the heap on its owning goroutine and blocks until
// it completes.
func (s *Server) submit(fn heapJob) {
	done := make(chan struct{})
	s.jobs <- func(h *heap.Heap) {
		fn(h)
		close(done)
	}
	<-done
}

// wrapWithMiddleware applies the full chain: Security -> RateLimit ->
// Logging -> Metrics -> Handler.
func (s *Server) wrapWithMiddleware(handler http.HandlerFunc) http.HandlerFunc {
	wrapped := s.metricsMiddleware(handler)
	wrapped = s.loggingMiddleware(wrapped)
	wrapped = RateLimitMiddleware(s.rateLimiter, wrapped)
	wrapped = SecurityMiddleware(s.securityConfig, wrapped)
	return wrapped
}

// Start listens for incoming requests and blocks until a shutdown signal
// (SIGINT/SIGTERM) arrives or ctx is canceled (e.g. by a caller-imposed
// max-runtime), then drains in-flight requests before returning. Grounded
// on the teacher's Server.Start.
func (s *Server) Start(ctx context.Context) error {
	signal.Notify(s.shutdownSignal, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("starting server", logging.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-s.shutdownSignal:
		s.logger.Info("shutdown signal received, initiating graceful shutdown")
	case <-ctx.Done():
		s.logger.Info("run context done, initiating graceful shutdown", logging.Err(ctx.Err()))
	case err := <-errCh:
		return apperrors.NewServerError("server failed to start", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeouts.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return apperrors.NewServerError("failed to gracefully shutdown server", err)
	}

	close(s.stopWorker)
	s.rateLimiter.Stop()
	s.h.Teardown()

	s.logger.Info("server stopped gracefully")
	return nil
}
