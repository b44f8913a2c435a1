package middleware

import (
	"net/http"

	"github.com/frahmantamala/employee-management/pkg/logger"
	"github.com/google/uuid"
)

const traceHeader = "X-Trace-ID"

// RequestID tags every request with a trace id, reusing the caller's when
// one was forwarded. The id rides on the response header and on every log
// line written through the context logger.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(traceHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(traceHeader, id)
		ctx := logger.With(r.Context(), "trace_id", id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
