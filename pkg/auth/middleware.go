package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

type contextKey string

const principalKey contextKey = "principal"

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// ErrPrincipalNotFound is returned by a PrincipalLoader for an unknown id.
var ErrPrincipalNotFound = errors.New("auth: principal not found")

// Principal is the authenticated admin attached to a request. It never
// carries the password hash.
type Principal struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin"`
	IsActive  bool       `json:"-"`
}

// IsSuperAdmin reports whether the principal holds the superadmin role.
func (p *Principal) IsSuperAdmin() bool {
	return p != nil && p.Role == RoleSuperAdmin
}

// WithPrincipal stores p in the context.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext returns the principal set by RequireAdmin or OptionalAdmin.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey).(*Principal)
	return p, ok && p != nil
}

// Verifier checks a bearer token. *TokenService satisfies it.
type Verifier interface {
	Verify(token string) (*Claims, error)
}

// PrincipalLoader loads the current admin record for a verified token.
type PrincipalLoader interface {
	LoadPrincipal(ctx context.Context, id string) (*Principal, error)
}

// PrincipalLoaderFunc adapts a function to PrincipalLoader.
type PrincipalLoaderFunc func(ctx context.Context, id string) (*Principal, error)

func (f PrincipalLoaderFunc) LoadPrincipal(ctx context.Context, id string) (*Principal, error) {
	return f(ctx, id)
}

const (
	msgNoToken      = "No authentication token, access denied"
	msgInvalidToken = "Token is not valid"
	msgDeactivated  = "Admin account is deactivated"
	msgSuperAdmin   = "Access denied. Superadmin privileges required."
)

// Middleware resolves bearer tokens into principals.
type Middleware struct {
	verifier Verifier
	loader   PrincipalLoader
}

func NewMiddleware(verifier Verifier, loader PrincipalLoader) *Middleware {
	return &Middleware{verifier: verifier, loader: loader}
}

// BearerToken returns the Authorization header value with the "Bearer " prefix removed.
func BearerToken(r *http.Request) string {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

// authenticate returns the principal or the 401 message to send.
func (m *Middleware) authenticate(r *http.Request) (*Principal, string) {
	token := BearerToken(r)
	if token == "" {
		return nil, msgNoToken
	}
	claims, err := m.verifier.Verify(token)
	if err != nil {
		return nil, msgInvalidToken
	}
	p, err := m.loader.LoadPrincipal(r.Context(), claims.ID)
	if err != nil {
		if !errors.Is(err, ErrPrincipalNotFound) {
			slog.Error("auth: load principal failed", "admin_id", claims.ID, "error", err)
		}
		return nil, msgInvalidToken
	}
	if !p.IsActive {
		return nil, msgDeactivated
	}
	return p, ""
}

// RequireAdmin rejects the request with 401 unless it carries a valid token
// for an active admin.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, msg := m.authenticate(r)
		if p == nil {
			writeError(w, http.StatusUnauthorized, msg)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
	})
}

// OptionalAdmin attaches a principal when the token is valid and never rejects.
func (m *Middleware) OptionalAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if BearerToken(r) != "" {
			if p, _ := m.authenticate(r); p != nil {
				r = r.WithContext(WithPrincipal(r.Context(), p))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSuperAdmin must run after RequireAdmin. It responds 403 unless the
// principal is a superadmin.
func RequireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, _ := PrincipalFromContext(r.Context())
		if !p.IsSuperAdmin() {
			writeError(w, http.StatusForbidden, msgSuperAdmin)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": message})
}
