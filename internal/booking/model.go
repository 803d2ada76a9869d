package booking

import (
	"net/http"
	"time"

	"github.com/tomhotel/booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrRoomNotFound     = apperror.New(http.StatusNotFound, "room not found")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrNotPending       = apperror.New(http.StatusConflict, "only pending bookings can change status")
	ErrReferenceTaken   = apperror.New(http.StatusConflict, "booking reference already exists")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Booking is a durably recorded reservation. It is created by the
// wizard's terminal step with status pending and transitioned once, by
// an administrator, to confirmed or cancelled.
type Booking struct {
	ID              string
	UserID          *string // nullable: a booking need not be tied to an account
	RoomID          string
	RoomName        string
	RoomType        string
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	TotalCost       float64
	Status          Status
	SpecialRequests *string
	Reference       string // unique human-readable lookup key
	PaymentMethod   string
	CreatedAt       time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	UserID string
	RoomID string
	Status string

	Page     int
	PageSize int
}

// Stats aggregates the admin dashboard tiles in a single read.
type Stats struct {
	TotalBookings     int
	PendingBookings   int
	ConfirmedBookings int
	CancelledBookings int
	// Revenue sums total_cost over confirmed bookings only.
	Revenue float64
}
