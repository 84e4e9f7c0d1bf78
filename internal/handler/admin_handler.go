package handler

import (
	"errors"
	"net/http"

	"github.com/irahulsinghrajput/BrandMark/internal/repository"
	"github.com/irahulsinghrajput/BrandMark/internal/service"
	"github.com/irahulsinghrajput/BrandMark/pkg/auth"
)

// AdminHandler serves account and dashboard routes under /api/admin.
type AdminHandler struct {
	adminService service.AdminService
}

func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

type adminResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
	Admin   any    `json:"admin"`
}

// Register handles POST /api/admin/register. Runs behind OptionalAdmin so a
// superadmin caller is visible when present.
func (h *AdminHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterInput
	if !decodeJSON(w, r, &req) {
		return
	}
	caller, _ := auth.PrincipalFromContext(r.Context())
	a, err := h.adminService.Register(r.Context(), req, caller)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, adminResponse{Success: true, Message: "Admin registered successfully", Admin: a.Summary()})
	case errors.Is(err, service.ErrAdminExists):
		writeMessage(w, http.StatusBadRequest, "Admin already exists")
	case errors.Is(err, service.ErrRegistrationRestricted):
		writeMessage(w, http.StatusForbidden, "Access denied. Superadmin privileges required.")
	case writeValidation(w, err):
	default:
		writeInternal(w, r, err)
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	token, a, err := h.adminService.Login(r.Context(), req.Email, req.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, adminResponse{Success: true, Message: "Login successful", Token: token, Admin: a.Summary()})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrAccountDisabled):
		writeMessage(w, http.StatusUnauthorized, "Admin account is deactivated")
	case writeValidation(w, err):
	default:
		writeInternal(w, r, err)
	}
}

// Me handles GET /api/admin/me.
func (h *AdminHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "No authentication token, access denied")
		return
	}
	writeJSON(w, http.StatusOK, adminResponse{Success: true, Admin: p})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword handles PUT /api/admin/change-password.
func (h *AdminHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "No authentication token, access denied")
		return
	}
	var req changePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	err := h.adminService.ChangePassword(r.Context(), p.ID, req.CurrentPassword, req.NewPassword)
	switch {
	case err == nil:
		writeMessage(w, http.StatusOK, "Password changed successfully")
	case errors.Is(err, service.ErrWrongPassword):
		writeMessage(w, http.StatusUnauthorized, "Current password is incorrect")
	case writeValidation(w, err):
	default:
		writeInternal(w, r, err)
	}
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.adminService.Dashboard(r.Context())
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	writeData(w, http.StatusOK, "", d)
}

// List handles GET /api/admin/admins (superadmin).
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	admins, err := h.adminService.List(r.Context())
	if err != nil {
		writeInternal(w, r, err)
		return
	}
	writeData(w, http.StatusOK, "", admins)
}

type setActiveRequest struct {
	IsActive *bool `json:"isActive"`
}

// SetActive handles PATCH /api/admin/admins/{id}/active (superadmin).
func (h *AdminHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req setActiveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.IsActive == nil {
		writeMessage(w, http.StatusBadRequest, "isActive is required")
		return
	}
	caller, _ := auth.PrincipalFromContext(r.Context())
	a, err := h.adminService.SetActive(r.Context(), caller, r.PathValue("id"), *req.IsActive)
	switch {
	case err == nil:
		writeData(w, http.StatusOK, "", a)
	case errors.Is(err, repository.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Admin not found")
	case errors.Is(err, service.ErrCannotDeactivateSelf):
		writeMessage(w, http.StatusBadRequest, "You cannot deactivate your own account")
	case errors.Is(err, service.ErrForbidden):
		writeMessage(w, http.StatusForbidden, "Access denied. Superadmin privileges required.")
	default:
		writeInternal(w, r, err)
	}
}
