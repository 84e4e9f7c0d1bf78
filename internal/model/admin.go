package model

import "time"

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// Admin is a dashboard account. Admins are deactivated, never deleted.
type Admin struct {
	ID           string     `json:"id" bson:"_id"`
	Email        string     `json:"email" bson:"email"`
	PasswordHash string     `json:"-" bson:"password"`
	Name         string     `json:"name" bson:"name"`
	Role         string     `json:"role" bson:"role"`
	IsActive     bool       `json:"isActive" bson:"isActive"`
	LastLogin    *time.Time `json:"lastLogin" bson:"lastLogin,omitempty"`
	CreatedAt    time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// AdminSummary is the subset returned on login.
type AdminSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (a *Admin) Summary() AdminSummary {
	return AdminSummary{ID: a.ID, Email: a.Email, Name: a.Name, Role: a.Role}
}
