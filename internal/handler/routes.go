package handler

import (
	"net/http"
	"strings"

	"github.com/irahulsinghrajput/BrandMark/pkg/auth"
)

// Router wires handlers to routes.
type Router struct {
	Health     *Handler
	Admin      *AdminHandler
	Contact    *ContactHandler
	Career     *CareerHandler
	Quote      *QuoteHandler
	Newsletter *NewsletterHandler
	Blog       *BlogHandler
	Chat       *ChatHandler

	Auth    *auth.Middleware
	Limiter *RateLimiter

	// UploadDir is served read-only under /uploads/ when set.
	UploadDir string
	// ExposeErrors puts panic details in 500 bodies (non-production).
	ExposeErrors bool
}

// Handler returns the mux wrapped in the middleware chain:
// recover, request id, request logger, security headers, CORS, rate limit.
func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	admin := func(h http.HandlerFunc) http.Handler { return rt.Auth.RequireAdmin(logged(h)) }
	super := func(h http.HandlerFunc) http.Handler { return rt.Auth.RequireAdmin(auth.RequireSuperAdmin(logged(h))) }

	mux.HandleFunc("GET /api/health", logged(rt.Health.Health))

	// Admin accounts
	mux.Handle("POST /api/admin/register", rt.Auth.OptionalAdmin(logged(rt.Admin.Register)))
	mux.HandleFunc("POST /api/admin/login", logged(rt.Admin.Login))
	mux.Handle("GET /api/admin/me", admin(rt.Admin.Me))
	mux.Handle("PUT /api/admin/change-password", admin(rt.Admin.ChangePassword))
	mux.Handle("GET /api/admin/dashboard", admin(rt.Admin.Dashboard))
	mux.Handle("GET /api/admin/admins", super(rt.Admin.List))
	mux.Handle("PATCH /api/admin/admins/{id}/active", super(rt.Admin.SetActive))

	// Public forms and their admin listings
	mux.HandleFunc("POST /api/contact", logged(rt.Contact.Submit))
	mux.Handle("GET /api/contact", admin(rt.Contact.List))
	mux.Handle("PATCH /api/contact/{id}/status", admin(rt.Contact.UpdateStatus))

	mux.HandleFunc("POST /api/careers", logged(rt.Career.Apply))
	mux.Handle("GET /api/careers", admin(rt.Career.List))
	mux.Handle("PATCH /api/careers/{id}/status", admin(rt.Career.UpdateStatus))

	mux.HandleFunc("POST /api/quotes", logged(rt.Quote.Create))
	mux.Handle("GET /api/quotes", admin(rt.Quote.List))
	mux.Handle("PATCH /api/quotes/{id}/status", admin(rt.Quote.UpdateStatus))

	mux.HandleFunc("POST /api/newsletter", logged(rt.Newsletter.Subscribe))
	mux.HandleFunc("DELETE /api/newsletter/{email}", logged(rt.Newsletter.Unsubscribe))
	mux.Handle("GET /api/newsletter", admin(rt.Newsletter.List))

	// Blog
	mux.HandleFunc("GET /api/blog", logged(rt.Blog.List))
	mux.Handle("GET /api/blog/admin/all", admin(rt.Blog.ListAll))
	mux.HandleFunc("GET /api/blog/{slug}", logged(rt.Blog.Get))
	mux.Handle("POST /api/blog", admin(rt.Blog.Create))
	mux.Handle("PUT /api/blog/{id}", admin(rt.Blog.Update))
	mux.Handle("DELETE /api/blog/{id}", admin(rt.Blog.Delete))

	mux.HandleFunc("POST /api/chat", logged(rt.Chat.Chat))

	if rt.UploadDir != "" {
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", noDirListing(http.FileServer(http.Dir(rt.UploadDir)))))
	}
	mux.HandleFunc("/", NotFound)

	var h http.Handler = mux
	if rt.Limiter != nil {
		h = rt.Limiter.Middleware(h)
	}
	h = rt.Health.CORS(h)
	h = SecurityHeaders(h)
	h = RequestLogger(h)
	h = RequestID(h)
	return Recover(rt.ExposeErrors)(h)
}

func noDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
