package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/tomhotel/booking-backend/internal/room"
)

// CreateRequest carries the wizard's terminal write: everything the
// draft accumulated plus the signed-in user. Validation has already
// happened step by step; the service only attaches the reference and
// the initial pending status.
type CreateRequest struct {
	UserID          string
	RoomID          string
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	TotalCost       float64
	SpecialRequests string
	PaymentMethod   string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	GetByReference(ctx context.Context, reference string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Booking, error)
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo        Repository
	roomService room.Service
	refGen      *ReferenceGenerator
}

func NewService(repo Repository, roomService room.Service, refGen *ReferenceGenerator) Service {
	return &service{
		repo:        repo,
		roomService: roomService,
		refGen:      refGen,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	// Validate the room still exists; availability races are accepted
	// (no lock, two sessions can book overlapping dates).
	if _, err := s.roomService.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	var userID *string
	if req.UserID != "" {
		uid := req.UserID
		userID = &uid
	}

	var specialRequests *string
	if trimmed := strings.TrimSpace(req.SpecialRequests); trimmed != "" {
		specialRequests = &trimmed
	}

	b := &Booking{
		UserID:          userID,
		RoomID:          req.RoomID,
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Guests:          req.Guests,
		TotalCost:       req.TotalCost,
		Status:          StatusPending,
		SpecialRequests: specialRequests,
		Reference:       s.refGen.Generate(),
		PaymentMethod:   req.PaymentMethod,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByReference(ctx context.Context, reference string) (*Booking, error) {
	return s.repo.GetByReference(ctx, reference)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

// UpdateStatus transitions a booking out of pending. Confirmed and
// cancelled are terminal, so any other starting state is rejected.
// Concurrent administrators race on the single-row update, last write
// wins.
func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (*Booking, error) {
	if status != StatusConfirmed && status != StatusCancelled {
		return nil, ErrInvalidStatus
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != StatusPending {
		return nil, ErrNotPending
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	b.Status = status
	return b, nil
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	return s.repo.Stats(ctx)
}
