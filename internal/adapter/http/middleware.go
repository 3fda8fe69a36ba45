package adapthttp

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// statusClientClosedRequest marks requests abandoned by the client before a
// response was written.
const statusClientClosedRequest = 499

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware writes one access log line per request.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// withLatency holds each request for s.latency before handing it on. A
// client that goes away during the wait is recorded as 499 and the handler
// never runs.
func (s *Server) withLatency(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.latency > 0 {
			t := time.NewTimer(s.latency)
			defer t.Stop()
			select {
			case <-t.C:
			case <-r.Context().Done():
				w.WriteHeader(statusClientClosedRequest)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
