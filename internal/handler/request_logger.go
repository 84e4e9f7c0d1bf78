package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/irahulsinghrajput/BrandMark/pkg/auth"
)

// responseRecorder captures the status code and body size for the access log.
type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func (rr *responseRecorder) WriteHeader(code int) {
	rr.status = code
	rr.ResponseWriter.WriteHeader(code)
}

func (rr *responseRecorder) Write(b []byte) (int, error) {
	n, err := rr.ResponseWriter.Write(b)
	rr.bytes += int64(n)
	return n, err
}

// Unwrap returns the underlying ResponseWriter for http.ResponseController.
func (rr *responseRecorder) Unwrap() http.ResponseWriter { return rr.ResponseWriter }

// Flush implements http.Flusher for http.FileServer.
func (rr *responseRecorder) Flush() {
	if f, ok := rr.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// accessEntry is filled in by inner handlers, which see the matched route
// and the authenticated admin that the outer logger cannot.
type accessEntry struct {
	route   string
	adminID string
}

func accessEntryFrom(ctx context.Context) *accessEntry {
	e, _ := ctx.Value(accessEntryKey).(*accessEntry)
	return e
}

// logged records the matched route pattern and, behind auth, the admin id.
func logged(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if e := accessEntryFrom(r.Context()); e != nil {
			e.route = r.Pattern
			if p, ok := auth.PrincipalFromContext(r.Context()); ok {
				e.adminID = p.ID
			}
		}
		h(w, r)
	}
}

// RequestLogger writes one access log line per request. Server errors are
// logged at WARN; the panic or repository error has its own ERROR record.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rr := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		entry := &accessEntry{}
		next.ServeHTTP(rr, r.WithContext(context.WithValue(r.Context(), accessEntryKey, entry)))

		attrs := []slog.Attr{
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rr.status),
			slog.Int64("bytes", rr.bytes),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			slog.String("remote_addr", r.RemoteAddr),
			slog.String("request_id", RequestIDFromContext(r.Context())),
		}
		if entry.route != "" {
			attrs = append(attrs, slog.String("route", entry.route))
		}
		if entry.adminID != "" {
			attrs = append(attrs, slog.String("admin_id", entry.adminID))
		}
		level := slog.LevelInfo
		if rr.status >= http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		slog.LogAttrs(r.Context(), level, "request", attrs...)
	})
}
