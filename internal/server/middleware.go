package server

import (
	"net/http"
	"time"

	"github.com/agbru/fibheap/internal/logging"
)

// loggingMiddleware logs each request's method, path, remote address, and
// duration, grounded on FibGo/internal/server/middleware.go's
// loggingMiddleware, adapted to the structured Logger interface.
func (s *Server) loggingMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		s.logger.Debug("request received",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.String("remote_addr", r.RemoteAddr))

		next(w, r)

		s.logger.Info("request completed",
			logging.String("method", r.Method),
			logging.String("path", r.URL.Path),
			logging.Int("duration_ms", int(time.Since(start).Milliseconds())))
	}
}
