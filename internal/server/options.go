package server

import (
	"time"

	"github.com/agbru/fibheap/internal/logging"
)

// Option defines a functional option for configuring a Server.
type Option func(*Server)

// WithLogger sets a custom logger for the server using the unified logging
// interface.
func WithLogger(logger logging.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTimeouts sets custom timeout configuration for the server.
func WithTimeouts(timeouts Timeouts) Option {
	return func(s *Server) {
		s.timeouts = timeouts
	}
}

// WithRateLimiter attaches a token-bucket rate limiter to the server's
// middleware chain. Grounded on FibGo/internal/server/middleware.go.
func WithRateLimiter(rl *RateLimiter) Option {
	return func(s *Server) {
		if rl != nil {
			s.rateLimiter = rl
		}
	}
}

// WithSecurityConfig overrides the server's security headers and CORS
// policy. Grounded on FibGo/internal/server/middleware.go.
func WithSecurityConfig(config SecurityConfig) Option {
	return func(s *Server) {
		s.securityConfig = config
	}
}

// WithMaxAllocationSize overrides the largest single allocation size the
// /allocate endpoint accepts before even consulting the heap, a transport-
// level DoS guard. Grounded on FibGo/internal/server/middleware.go's
// WithMaxN, re-purposed from a Fibonacci index ceiling to a request-size
// ceiling — see DESIGN.md's note on this option's provenance.
func WithMaxAllocationSize(max int) Option {
	return func(s *Server) {
		s.securityConfig.MaxAllocationSize = max
	}
}

// Timeouts holds timeout configuration for the HTTP server. Values are
// customizable via functional options for testing or deployment needs.
type Timeouts struct {
	// RequestTimeout is the maximum duration for a single request.
	RequestTimeout time.Duration
	// ShutdownTimeout is the maximum duration allowed for graceful shutdown.
	ShutdownTimeout time.Duration
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
}

// DefaultServerTimeouts returns the teacher's timeout values, carried over
// unchanged: a heap operation completes far faster than a Fibonacci
// computation, but the surrounding HTTP transport's tuning is independent
// of the domain it carries.
func DefaultServerTimeouts() Timeouts {
	return Timeouts{
		RequestTimeout:  5 * time.Minute,
		ShutdownTimeout: 30 * time.Second,
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Minute,
		IdleTimeout:     2 * time.Minute,
	}
}
