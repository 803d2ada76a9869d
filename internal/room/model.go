package room

import (
	"net/http"
	"time"

	"github.com/tomhotel/booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "room not found")
	ErrEmptyName       = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidType     = apperror.New(http.StatusBadRequest, "invalid room type")
	ErrNegativePrice   = apperror.New(http.StatusBadRequest, "price cannot be negative")
	ErrInvalidCapacity = apperror.New(http.StatusBadRequest, "capacity must be at least 1")
	ErrNoPhoto         = apperror.New(http.StatusNotFound, "room has no photo")
	ErrInvalidPhoto    = apperror.New(http.StatusBadRequest, "uploaded file is not a valid image")
)

// Type is the room category.
type Type string

const (
	TypeSingle Type = "Single"
	TypeDouble Type = "Double"
	TypeDeluxe Type = "Deluxe"
	TypeSuite  Type = "Suite"
)

// ValidTypes lists the accepted room categories.
var ValidTypes = []Type{TypeSingle, TypeDouble, TypeDeluxe, TypeSuite}

// Room represents a bookable hotel room.
type Room struct {
	ID          string
	Name        string
	Type        Type
	Price       float64 // nightly rate
	Capacity    int     // maximum occupants
	Description string
	Amenities   []string
	ImageURL    string
	PhotoPath   *string // internal storage path, not exposed
	Available   bool
	CreatedAt   time.Time
}

// Filter defines parameters for listing rooms. Available is a tri-state:
// nil returns every room, true/false filters on the availability flag.
type Filter struct {
	Available *bool
	Type      string

	Page     int
	PageSize int
}
