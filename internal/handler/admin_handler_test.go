package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
	"github.com/irahulsinghrajput/BrandMark/internal/repository"
	"github.com/irahulsinghrajput/BrandMark/internal/service"
	"github.com/irahulsinghrajput/BrandMark/internal/validation"
	"github.com/irahulsinghrajput/BrandMark/pkg/auth"
)

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestAdminHandler_Register(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"created", nil, http.StatusCreated},
		{"duplicate", service.ErrAdminExists, http.StatusBadRequest},
		{"restricted", service.ErrRegistrationRestricted, http.StatusForbidden},
		{"invalid", validation.Errors{{Field: "email", Message: "Valid email is required"}}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var caller *auth.Principal
			h := NewAdminHandler(&mockAdminService{
				registerFunc: func(ctx context.Context, in service.RegisterInput, c *auth.Principal) (*model.Admin, error) {
					caller = c
					if tt.err != nil {
						return nil, tt.err
					}
					return &model.Admin{ID: "a1", Email: in.Email, Name: in.Name, Role: model.RoleSuperAdmin, PasswordHash: "hash"}, nil
				},
			})
			rec := postJSON(h.Register, "/api/admin/register", `{"email":"a@b.co","password":"secret1","name":"A"}`)
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, rec.Code, rec.Body.String())
			}
			if caller != nil {
				t.Error("anonymous request should pass a nil caller")
			}
			if tt.err == nil {
				if strings.Contains(rec.Body.String(), "hash") {
					t.Error("password hash leaked in response")
				}
				admin := decodeBody(t, rec)["admin"].(map[string]any)
				if admin["role"] != model.RoleSuperAdmin {
					t.Errorf("unexpected admin %v", admin)
				}
			}
		})
	}
}

func TestAdminHandler_Register_PassesCaller(t *testing.T) {
	var caller *auth.Principal
	h := NewAdminHandler(&mockAdminService{
		registerFunc: func(ctx context.Context, in service.RegisterInput, c *auth.Principal) (*model.Admin, error) {
			caller = c
			return &model.Admin{ID: "a2"}, nil
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/register", strings.NewReader(`{}`))
	req = req.WithContext(withPrincipal(req.Context(), &auth.Principal{ID: "root", Role: model.RoleSuperAdmin}))
	h.Register(httptest.NewRecorder(), req)
	if caller == nil || caller.ID != "root" {
		t.Errorf("expected caller root, got %+v", caller)
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestAdminHandler_Login(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"ok", nil, http.StatusOK, "Login successful"},
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"deactivated", service.ErrAccountDisabled, http.StatusUnauthorized, "Admin account is deactivated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAdminHandler(&mockAdminService{
				loginFunc: func(ctx context.Context, email, password string) (string, *model.Admin, error) {
					if tt.err != nil {
						return "", nil, tt.err
					}
					return "tok", &model.Admin{ID: "a1", Email: email, Role: model.RoleAdmin}, nil
				},
			})
			rec := postJSON(h.Login, "/api/admin/login", `{"email":"a@b.co","password":"secret1"}`)
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}
			body := decodeBody(t, rec)
			if body["message"] != tt.wantMsg {
				t.Errorf("expected message %q, got %v", tt.wantMsg, body["message"])
			}
			if tt.err == nil && body["token"] != "tok" {
				t.Errorf("expected token, got %v", body["token"])
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Me / ChangePassword
// ---------------------------------------------------------------------------

func TestAdminHandler_Me(t *testing.T) {
	h := NewAdminHandler(&mockAdminService{})

	rec := httptest.NewRecorder()
	h.Me(rec, httptest.NewRequest(http.MethodGet, "/api/admin/me", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("without principal: expected 401, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
	req = req.WithContext(withPrincipal(req.Context(), &auth.Principal{ID: "a1", Email: "a@b.co", Role: model.RoleAdmin}))
	rec = httptest.NewRecorder()
	h.Me(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if admin := decodeBody(t, rec)["admin"].(map[string]any); admin["email"] != "a@b.co" {
		t.Errorf("unexpected admin %v", admin)
	}
}

func TestAdminHandler_ChangePassword(t *testing.T) {
	var gotID string
	h := NewAdminHandler(&mockAdminService{
		changePasswordFunc: func(ctx context.Context, id, current, next string) error {
			gotID = id
			if current != "old-pass" {
				return service.ErrWrongPassword
			}
			return nil
		},
	})
	do := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPut, "/api/admin/change-password", strings.NewReader(body))
		req = req.WithContext(withPrincipal(req.Context(), &auth.Principal{ID: "a1"}))
		rec := httptest.NewRecorder()
		h.ChangePassword(rec, req)
		return rec
	}

	if rec := do(`{"currentPassword":"old-pass","newPassword":"new-pass"}`); rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if gotID != "a1" {
		t.Errorf("expected principal id a1, got %q", gotID)
	}
	if rec := do(`{"currentPassword":"guess","newPassword":"new-pass"}`); rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// Dashboard / SetActive
// ---------------------------------------------------------------------------

func TestAdminHandler_Dashboard(t *testing.T) {
	h := NewAdminHandler(&mockAdminService{
		dashboardFunc: func(ctx context.Context) (*model.Dashboard, error) {
			d := &model.Dashboard{}
			d.Stats.Contacts = model.Counts{Total: 3, New: 1}
			return d, nil
		},
	})
	rec := httptest.NewRecorder()
	h.Dashboard(rec, httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	stats := decodeBody(t, rec)["data"].(map[string]any)["stats"].(map[string]any)
	contacts := stats["contacts"].(map[string]any)
	if contacts["total"] != float64(3) || contacts["new"] != float64(1) {
		t.Errorf("unexpected stats %v", stats)
	}
}

func TestAdminHandler_SetActive(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
	}{
		{"ok", `{"isActive":false}`, nil, http.StatusOK},
		{"missing flag", `{}`, nil, http.StatusBadRequest},
		{"self", `{"isActive":false}`, service.ErrCannotDeactivateSelf, http.StatusBadRequest},
		{"unknown", `{"isActive":true}`, repository.ErrNotFound, http.StatusNotFound},
		{"forbidden", `{"isActive":true}`, service.ErrForbidden, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAdminHandler(&mockAdminService{
				setActiveFunc: func(ctx context.Context, caller *auth.Principal, id string, active bool) (*model.Admin, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					return &model.Admin{ID: id, IsActive: active}, nil
				},
			})
			req := httptest.NewRequest(http.MethodPatch, "/api/admin/admins/a2/active", strings.NewReader(tt.body))
			req.SetPathValue("id", "a2")
			req = req.WithContext(withPrincipal(req.Context(), &auth.Principal{ID: "root", Role: model.RoleSuperAdmin}))
			rec := httptest.NewRecorder()
			h.SetActive(rec, req)
			if rec.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, rec.Code)
			}
		})
	}
}
