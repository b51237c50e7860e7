package middleware

import (
	"net/http"
	"time"
)

type requestRecorder interface {
	RequestStarted()
	RequestFinished(route, method string, status int, d time.Duration)
}

// Metrics records request counts and latency per route pattern. It must wrap
// the mux so that r.Pattern is set once the handler returns.
func Metrics(rec requestRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			rec.RequestStarted()

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			rec.RequestFinished(route, r.Method, sw.status, time.Since(start))
		})
	}
}
