package handler

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SecurityHeaders adds security response headers (CSP, X-Frame-Options, etc.)
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("X-XSS-Protection", "0")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		h.Set("Content-Security-Policy", "default-src 'self'; frame-ancestors 'none'")
		h.Set("Cross-Origin-Resource-Policy", "cross-origin")
		h.Set("Strict-Transport-Security", "max-age=63072000; includeSubDomains")
		next.ServeHTTP(w, r)
	})
}

// ---------------------------------------------------------------------------
// Rate limiting
// ---------------------------------------------------------------------------

const msgRateLimited = "Too many requests from this IP, please try again later."

// RateLimiter enforces a fixed window of max requests per client address
// on /api/ routes. Counters live in a CounterStore so several instances can
// share them through Redis.
type RateLimiter struct {
	store             CounterStore
	max               int64
	window            time.Duration
	trustedProxyCount int
}

// NewRateLimiter creates a rate limiter allowing max requests per window.
// trustedProxies is the number of reverse proxies that append to
// X-Forwarded-For; with 0 the header is ignored and the peer address is used.
func NewRateLimiter(store CounterStore, max int, window time.Duration, trustedProxies int) *RateLimiter {
	if trustedProxies < 0 {
		trustedProxies = 0
	}
	return &RateLimiter{
		store:             store,
		max:               int64(max),
		window:            window,
		trustedProxyCount: trustedProxies,
	}
}

// Middleware returns an http.Handler that enforces rate limits. Store
// errors let the request through.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/") || r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		count, ttl, err := rl.store.Incr(r.Context(), "ratelimit:"+rl.clientIP(r), rl.window)
		if err != nil {
			slog.Warn("rate limit store unavailable", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		remaining := rl.max - count
		if remaining < 0 {
			remaining = 0
		}
		w.Header().Set("RateLimit-Limit", strconv.FormatInt(rl.max, 10))
		w.Header().Set("RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		w.Header().Set("RateLimit-Reset", retryAfterSeconds(ttl))

		if count > rl.max {
			w.Header().Set("Retry-After", retryAfterSeconds(ttl))
			writeMessage(w, http.StatusTooManyRequests, msgRateLimited)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func retryAfterSeconds(d time.Duration) string {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}

// clientIP extracts the real client IP. Behind trusted proxies it reads the
// entry the outermost proxy appended to X-Forwarded-For; anything to its
// left is client supplied.
func (rl *RateLimiter) clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" && rl.trustedProxyCount > 0 {
		parts := strings.Split(xff, ",")
		// The rightmost entry added by our infrastructure is at
		// index len(parts) - trustedProxyCount.
		idx := len(parts) - rl.trustedProxyCount
		if idx >= 0 && idx < len(parts) {
			return strings.TrimSpace(parts[idx])
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ---------------------------------------------------------------------------
// Request ID
// ---------------------------------------------------------------------------

type ctxKey int

const (
	requestIDKey ctxKey = iota
	accessEntryKey
)

const headerRequestID = "X-Request-ID"

// RequestID propagates an incoming X-Request-ID or assigns a new one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(headerRequestID, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// RequestIDFromContext returns the id set by RequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// ---------------------------------------------------------------------------
// Panic recovery
// ---------------------------------------------------------------------------

type panicResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

// Recover turns a panic into a 500. The panic value and stack are only
// exposed in the body when exposeDetails is set.
func Recover(exposeDetails bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				stack := string(debug.Stack())
				slog.Error("panic recovered",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"request_id", RequestIDFromContext(r.Context()),
				)
				resp := panicResponse{Success: false, Message: msgInternal}
				if exposeDetails {
					resp.Error = panicString(rec)
					resp.Stack = stack
				}
				writeJSON(w, http.StatusInternalServerError, resp)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func panicString(v any) string {
	if err, ok := v.(error); ok {
		return err.Error()
	}
	if s, ok := v.(string); ok {
		return s
	}
	return "panic"
}
