package http

import (
	"time"

	"github.com/tomhotel/booking-backend/internal/pkg/request"
	"github.com/tomhotel/booking-backend/internal/user"
)

// ListProfilesRequest defines query parameters for the admin profile list.
type ListProfilesRequest struct {
	request.ListParams
	Email string `form:"email"`
	Role  string `form:"role" binding:"omitempty,oneof=user admin"`
}

// RegisterBody is the payload for POST /v1/auth/register.
type RegisterBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"omitempty,oneof=user admin"`
}

// LoginBody is the payload for POST /v1/auth/login.
type LoginBody struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ProfileResponse is the shape of profile data returned by the API.
type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// NewProfileResponse converts a domain Profile to its API shape.
func NewProfileResponse(p *user.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		Phone:     p.Phone,
		Role:      string(p.Role),
		CreatedAt: p.CreatedAt,
	}
}

// RegisterResponse is the response for POST /v1/auth/register.
type RegisterResponse struct {
	Profile ProfileResponse `json:"profile"`
}

// LoginResponse is the response for POST /v1/auth/login.
type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	Profile     ProfileResponse `json:"profile"`
}

// MeResponse is the response for GET /v1/me.
type MeResponse struct {
	Profile ProfileResponse `json:"profile"`
}
