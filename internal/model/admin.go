package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the access tier of an admin account.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
)

// Admin is an authenticated back-office user. The password hash never leaves
// the server.
type Admin struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password" json:"-"`
	Role        Role               `bson:"role" json:"role"`
	Permissions []string           `bson:"permissions" json:"permissions"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	LastLogin   *time.Time         `bson:"lastLogin,omitempty" json:"lastLogin,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// HasPermission reports whether the admin holds the named capability.
// Super-admins implicitly hold every permission.
func (a *Admin) HasPermission(name string) bool {
	if a.Role == RoleSuperAdmin {
		return true
	}
	for _, p := range a.Permissions {
		if p == name {
			return true
		}
	}
	return false
}

// LoginRequest is the payload for admin login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// ChangePasswordRequest is the payload for changing the acting admin's password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}
