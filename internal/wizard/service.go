package wizard

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/tomhotel/booking-backend/internal/booking"
	"github.com/tomhotel/booking-backend/internal/pkg/apperror"
	"github.com/tomhotel/booking-backend/internal/room"
)

var (
	ErrNoRoomSelected        = apperror.New(http.StatusBadRequest, "please select a room")
	ErrDatesRequired         = apperror.New(http.StatusBadRequest, "please select check-in and check-out dates")
	ErrCheckOutNotAfter      = apperror.New(http.StatusBadRequest, "check-out date must be after check-in date")
	ErrGuestsOutOfRange      = apperror.New(http.StatusBadRequest, "number of guests must be between 1 and the room capacity")
	ErrCheckInPast           = apperror.New(http.StatusBadRequest, "check-in date cannot be in the past")
	ErrRoomNotFound          = apperror.New(http.StatusNotFound, "room not found")
	ErrRoomUnavailable       = apperror.New(http.StatusConflict, "room is not available")
	ErrNameRequired          = apperror.New(http.StatusBadRequest, "please enter the guest name")
	ErrInvalidEmail          = apperror.New(http.StatusBadRequest, "please enter a valid email address")
	ErrInvalidPhone          = apperror.New(http.StatusBadRequest, "please enter a valid phone number (at least 10 digits)")
	ErrStayNotSelected       = apperror.New(http.StatusConflict, "complete the room and dates step first")
	ErrGuestInfoMissing      = apperror.New(http.StatusConflict, "complete the guest information step first")
	ErrPaymentMethodRequired = apperror.New(http.StatusBadRequest, "please select a payment method")
	ErrInvalidPaymentMethod  = apperror.New(http.StatusBadRequest, "invalid payment method")
)

// PaymentMethods is the closed set of accepted payment method labels.
// Payment itself is simulated; the label is recorded verbatim.
var PaymentMethods = []string{"Credit Card", "Cash", "GCash"}

// emailShape is the minimal text@text.text check the guest form applies.
var emailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// StayRequest is the input of step one: room, dates, occupants.
type StayRequest struct {
	RoomID   string
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
}

// GuestInfoRequest is the input of step two.
type GuestInfoRequest struct {
	Name            string
	Email           string
	Phone           string
	SpecialRequests string
}

// Service drives the booking wizard: an ordered sequence of steps that
// validates and accumulates the draft, then performs the single terminal
// write through the booking service.
type Service interface {
	// Draft returns the caller's current draft without side effects.
	Draft(userID string) Draft

	// SelectStay runs step one. The validation rules run in order and
	// the first failure halts advancement; on success the draft holds
	// the room snapshot, dates, occupants and computed total cost.
	SelectStay(ctx context.Context, userID string, req StayRequest) (Draft, error)

	// SubmitGuestInfo runs step two. Requires a room in the draft.
	SubmitGuestInfo(userID string, req GuestInfoRequest) (Draft, error)

	// ConfirmPayment runs step three: records the payment method and
	// performs the terminal insert. The draft is preserved on failure
	// so the same submission can be retried, and is NOT cleared on
	// success either; only the confirmation step clears it.
	ConfirmPayment(ctx context.Context, userID, paymentMethod string) (*booking.Booking, error)

	// Confirmation re-reads the booking by reference from the store so
	// the confirmation reflects the durable record, then clears the
	// draft. An unknown reference is terminal and leaves the draft.
	Confirmation(ctx context.Context, userID, reference string) (*booking.Booking, error)
}

type service struct {
	store          *Store
	roomService    room.Service
	bookingService booking.Service

	now func() time.Time
}

func NewService(store *Store, roomService room.Service, bookingService booking.Service) Service {
	return &service{
		store:          store,
		roomService:    roomService,
		bookingService: bookingService,
		now:            time.Now,
	}
}

func (s *service) Draft(userID string) Draft {
	return s.store.Get(userID)
}

func (s *service) SelectStay(ctx context.Context, userID string, req StayRequest) (Draft, error) {
	// (a) a room must be chosen
	if req.RoomID == "" {
		return Draft{}, ErrNoRoomSelected
	}
	// (b) both dates must be set
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return Draft{}, ErrDatesRequired
	}
	// (c) check-out strictly after check-in
	nights := Nights(req.CheckIn, req.CheckOut)
	if nights <= 0 {
		return Draft{}, ErrCheckOutNotAfter
	}

	rm, err := s.roomService.GetByID(ctx, req.RoomID)
	if err != nil {
		if err == room.ErrNotFound {
			return Draft{}, ErrRoomNotFound
		}
		return Draft{}, err
	}
	// Step one only offers available rooms for selection.
	if !rm.Available {
		return Draft{}, ErrRoomUnavailable
	}

	// (d) occupants within the room's capacity
	if req.Guests < 1 || req.Guests > rm.Capacity {
		return Draft{}, ErrGuestsOutOfRange
	}
	// (e) check-in not before today, compared at midnight
	today := truncateToDay(s.now().UTC())
	if req.CheckIn.Before(today) {
		return Draft{}, ErrCheckInPast
	}

	total := TotalCost(rm.Price, nights)

	snapshot := RoomSnapshot{
		ID:       rm.ID,
		Name:     rm.Name,
		Type:     string(rm.Type),
		Price:    rm.Price,
		Capacity: rm.Capacity,
	}

	draft := s.store.Update(userID, Partial{
		Room:      &snapshot,
		CheckIn:   &req.CheckIn,
		CheckOut:  &req.CheckOut,
		Guests:    &req.Guests,
		TotalCost: &total,
	})
	return draft, nil
}

func (s *service) SubmitGuestInfo(userID string, req GuestInfoRequest) (Draft, error) {
	if s.store.Get(userID).Room == nil {
		return Draft{}, ErrStayNotSelected
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return Draft{}, ErrNameRequired
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || !emailShape.MatchString(email) {
		return Draft{}, ErrInvalidEmail
	}

	phone := strings.TrimSpace(req.Phone)
	if len(phone) < 10 {
		return Draft{}, ErrInvalidPhone
	}

	specialRequests := strings.TrimSpace(req.SpecialRequests)

	draft := s.store.Update(userID, Partial{
		GuestName:       &name,
		GuestEmail:      &email,
		GuestPhone:      &phone,
		SpecialRequests: &specialRequests,
	})
	return draft, nil
}

func (s *service) ConfirmPayment(ctx context.Context, userID, paymentMethod string) (*booking.Booking, error) {
	draft := s.store.Get(userID)
	if draft.Room == nil {
		return nil, ErrStayNotSelected
	}
	if draft.GuestName == "" {
		return nil, ErrGuestInfoMissing
	}

	if paymentMethod == "" {
		return nil, ErrPaymentMethodRequired
	}
	if !validPaymentMethod(paymentMethod) {
		return nil, ErrInvalidPaymentMethod
	}

	b, err := s.bookingService.Create(ctx, booking.CreateRequest{
		UserID:          userID,
		RoomID:          draft.Room.ID,
		GuestName:       draft.GuestName,
		GuestEmail:      draft.GuestEmail,
		GuestPhone:      draft.GuestPhone,
		CheckIn:         draft.CheckIn,
		CheckOut:        draft.CheckOut,
		Guests:          draft.Guests,
		TotalCost:       draft.TotalCost,
		SpecialRequests: draft.SpecialRequests,
		PaymentMethod:   paymentMethod,
	})
	if err != nil {
		// No automatic retry; the draft stays intact for a manual one.
		return nil, err
	}

	s.store.Update(userID, Partial{PaymentMethod: &paymentMethod})
	return b, nil
}

func (s *service) Confirmation(ctx context.Context, userID, reference string) (*booking.Booking, error) {
	b, err := s.bookingService.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	s.store.Clear(userID)
	return b, nil
}

func validPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if method == m {
			return true
		}
	}
	return false
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
