package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tomhotel/booking-backend/internal/auth"
)

// RegisterRequest carries the sign-up fields. Role is assigned here and
// never changes through any in-app flow.
type RegisterRequest struct {
	Email    string
	Password string
	FullName string
	Phone    string
	Role     string
}

// Service defines business logic related to profiles and authentication.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*Profile, error)
	Login(ctx context.Context, email, password string) (*Profile, error)
	GetByID(ctx context.Context, id string) (*Profile, error)
	List(ctx context.Context, filter Filter) ([]*Profile, int, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher

	minPasswordLength int
}

// NewService creates a new profile Service.
func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:              repo,
		hasher:            hasher,
		minPasswordLength: 8,
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*Profile, error) {
	cleanEmail := normalizeEmail(req.Email)
	if cleanEmail == "" {
		return nil, ErrEmailRequired
	}

	if len(req.Password) < s.minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	role := Role(req.Role)
	if role == "" {
		role = RoleUser
	}
	if role != RoleUser && role != RoleAdmin {
		return nil, ErrInvalidRole
	}

	// Check if email is already used.
	_, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err == nil {
		return nil, ErrEmailAlreadyUsed
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	p := &Profile{
		Email:        cleanEmail,
		PasswordHash: hash,
		FullName:     optionalString(req.FullName),
		Phone:        optionalString(req.Phone),
		Role:         role,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*Profile, error) {
	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidCredentials
	}

	p, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch profile by email: %w", err)
	}

	if err := s.hasher.Compare(p.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Profile, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Profile, int, error) {
	return s.repo.List(ctx, filter)
}

// normalizeEmail trims spaces and lowercases the email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// optionalString returns nil for blank input so empty form fields are
// stored as NULL rather than empty strings.
func optionalString(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
