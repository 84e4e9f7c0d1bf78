package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
	"github.com/irahulsinghrajput/BrandMark/internal/repository"
	"github.com/irahulsinghrajput/BrandMark/internal/validation"
	"github.com/irahulsinghrajput/BrandMark/pkg/auth"
)

const (
	MinPasswordLength = 6
	RecentActivityLen = 5
)

// RegisterInput is the admin signup form.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

var registerRules = []validation.Rule{
	validation.Email("email", "Valid email is required"),
	validation.Exact(validation.MinLength("password", MinPasswordLength, "Password must be at least 6 characters")),
	validation.Required("name", "Name is required"),
}

var loginRules = []validation.Rule{
	validation.Email("email", "Valid email is required"),
	validation.Exact(validation.Required("password", "Password is required")),
}

var changePasswordRules = []validation.Rule{
	validation.Exact(validation.Required("currentPassword", "Current password is required")),
	validation.Exact(validation.MinLength("newPassword", MinPasswordLength, "New password must be at least 6 characters")),
}

// TokenIssuer signs session tokens. *auth.TokenService satisfies it.
type TokenIssuer interface {
	Issue(id, email, role string) (string, error)
}

// AdminService manages dashboard accounts and the dashboard overview.
type AdminService interface {
	// Register creates an admin. The first account ever becomes superadmin
	// without authentication; later ones need a superadmin caller unless
	// open signup is enabled.
	Register(ctx context.Context, in RegisterInput, caller *auth.Principal) (*model.Admin, error)
	// Login checks credentials, records the login time and issues a token.
	Login(ctx context.Context, email, password string) (string, *model.Admin, error)
	ChangePassword(ctx context.Context, id, current, next string) error
	Dashboard(ctx context.Context) (*model.Dashboard, error)
	List(ctx context.Context) ([]*model.Admin, error)
	// SetActive enables or disables another admin's account.
	SetActive(ctx context.Context, caller *auth.Principal, id string, active bool) (*model.Admin, error)
	// LoadPrincipal resolves a token subject for the auth middleware.
	LoadPrincipal(ctx context.Context, id string) (*auth.Principal, error)
}

type adminServiceImpl struct {
	admins     repository.AdminRepository
	dashboard  repository.DashboardRepository
	tokens     TokenIssuer
	openSignup bool
	now        func() time.Time
}

// NewAdminService creates an AdminService. openSignup lets anyone register
// once the first admin exists.
func NewAdminService(admins repository.AdminRepository, dashboard repository.DashboardRepository, tokens TokenIssuer, openSignup bool) AdminService {
	return &adminServiceImpl{admins: admins, dashboard: dashboard, tokens: tokens, openSignup: openSignup, now: time.Now}
}

func (s *adminServiceImpl) Register(ctx context.Context, in RegisterInput, caller *auth.Principal) (*model.Admin, error) {
	fields := validation.Fields{"email": in.Email, "password": in.Password, "name": in.Name}
	if errs := validation.Validate(fields, registerRules...); errs != nil {
		return nil, errs
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	a := &model.Admin{
		Email:        normalizeEmail(in.Email),
		PasswordHash: hash,
		Name:         trim(in.Name),
	}

	err = s.admins.CreateFirst(ctx, a)
	switch {
	case err == nil:
		slog.Info("bootstrap superadmin created", "admin_id", a.ID)
		return a, nil
	case errors.Is(err, repository.ErrDuplicate):
		return nil, ErrAdminExists
	case !errors.Is(err, repository.ErrAdminsExist):
		return nil, fmt.Errorf("create first admin: %w", err)
	}

	if !s.openSignup && !caller.IsSuperAdmin() {
		return nil, ErrRegistrationRestricted
	}
	a.Role = model.RoleAdmin
	a.IsActive = true
	if err := s.admins.Create(ctx, a); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAdminExists
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}
	slog.Info("admin created", "admin_id", a.ID)
	return a, nil
}

func (s *adminServiceImpl) Login(ctx context.Context, email, password string) (string, *model.Admin, error) {
	if errs := validation.Validate(validation.Fields{"email": email, "password": password}, loginRules...); errs != nil {
		return "", nil, errs
	}
	a, err := s.admins.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !auth.CheckPassword(a.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}
	if !a.IsActive {
		return "", nil, ErrAccountDisabled
	}

	now := s.now().UTC()
	if err := s.admins.UpdateLastLogin(ctx, a.ID, now); err != nil {
		return "", nil, fmt.Errorf("update last login: %w", err)
	}
	a.LastLogin = &now

	token, err := s.tokens.Issue(a.ID, a.Email, a.Role)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, a, nil
}

func (s *adminServiceImpl) ChangePassword(ctx context.Context, id, current, next string) error {
	fields := validation.Fields{"currentPassword": current, "newPassword": next}
	if errs := validation.Validate(fields, changePasswordRules...); errs != nil {
		return errs
	}
	a, err := s.admins.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(a.PasswordHash, current) {
		return ErrWrongPassword
	}
	hash, err := auth.HashPassword(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.admins.UpdatePassword(ctx, id, hash)
}

func (s *adminServiceImpl) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	return s.dashboard.Dashboard(ctx, RecentActivityLen)
}

func (s *adminServiceImpl) List(ctx context.Context) ([]*model.Admin, error) {
	return s.admins.List(ctx)
}

func (s *adminServiceImpl) SetActive(ctx context.Context, caller *auth.Principal, id string, active bool) (*model.Admin, error) {
	if !caller.IsSuperAdmin() {
		return nil, ErrForbidden
	}
	if !active && caller.ID == id {
		return nil, ErrCannotDeactivateSelf
	}
	a, err := s.admins.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	slog.Info("admin active flag changed", "admin_id", id, "active", active, "by", caller.ID)
	return a, nil
}

func (s *adminServiceImpl) LoadPrincipal(ctx context.Context, id string) (*auth.Principal, error) {
	a, err := s.admins.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, auth.ErrPrincipalNotFound
		}
		return nil, err
	}
	return &auth.Principal{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Role:      a.Role,
		LastLogin: a.LastLogin,
		IsActive:  a.IsActive,
	}, nil
}
