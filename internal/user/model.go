package user

import (
	"net/http"
	"time"

	"github.com/tomhotel/booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "profile not found")
	ErrEmailAlreadyUsed   = apperror.New(http.StatusConflict, "email already used")
	ErrInvalidCredentials = apperror.New(http.StatusUnauthorized, "invalid email or password")
	ErrEmailRequired      = apperror.New(http.StatusBadRequest, "email is required")
	ErrPasswordTooShort   = apperror.New(http.StatusBadRequest, "password must be at least 8 characters")
	ErrInvalidRole        = apperror.New(http.StatusBadRequest, "invalid role")
)

// Role is the access level assigned to a profile at registration.
// There is no in-app flow that changes it afterwards.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Profile represents a registered guest or administrator account.
type Profile struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	FullName     *string
	Phone        *string
	Role         Role
	CreatedAt    time.Time
}

// Filter defines filter options for listing profiles (admin view).
type Filter struct {
	Email string
	Role  string

	Page     int
	PageSize int
}
