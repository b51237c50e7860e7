package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/rotection-backend/pkg/ctxutil"
)

// RequestIDHeader carries the per-request correlation id in both directions.
const RequestIDHeader = "X-Request-Id"

// RequestID reuses the caller's id when present and mints a UUID otherwise.
// The id is stored in the context for logging and echoed in the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		ctx := ctxutil.WithRequestID(r.Context(), id)
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
