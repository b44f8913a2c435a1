package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// sensitiveKeys never reach the log, whether they appear in headers or in
// JSON body fields.
var sensitiveKeys = []string{"password", "token", "authorization", "secret", "api_key"}

// LoggingMiddleware writes one line per request and one per response.
// JSON bodies are replayed into the log with credential fields masked;
// multipart bodies (image uploads) are noted but never buffered.
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			traceID := w.Header().Get(traceHeader)

			logger.Info("request",
				"trace_id", traceID,
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.RawQuery,
				"remote_addr", r.RemoteAddr,
				"user_agent", r.UserAgent(),
				"body", requestBodyForLog(r),
			)

			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}

			level := slog.LevelInfo
			switch {
			case status >= 500:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}

			logger.Log(r.Context(), level, "response",
				"trace_id", traceID,
				"status", status,
				"bytes", rec.written,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

// statusRecorder captures the status code and byte count without holding
// the response body in memory.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	n, err := s.ResponseWriter.Write(b)
	s.written += n
	return n, err
}

// requestBodyForLog returns a loggable rendering of the request body and
// restores it so handlers can read it again.
func requestBodyForLog(r *http.Request) string {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/") {
		return "[multipart]"
	}
	if r.Body == nil {
		return ""
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return ""
	}
	r.Body = io.NopCloser(bytes.NewReader(raw))

	if len(raw) == 0 {
		return ""
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "[unparsed body]"
	}

	masked, err := json.Marshal(maskSensitive(decoded))
	if err != nil {
		return "[unparsed body]"
	}
	return string(masked)
}

// maskSensitive walks decoded JSON and blanks credential values in place.
func maskSensitive(v any) any {
	switch value := v.(type) {
	case map[string]any:
		for k, inner := range value {
			if isSensitiveKey(k) {
				value[k] = "[FILTERED]"
				continue
			}
			value[k] = maskSensitive(inner)
		}
		return value
	case []any:
		for i, item := range value {
			value[i] = maskSensitive(item)
		}
		return value
	default:
		return value
	}
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, s := range sensitiveKeys {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}
