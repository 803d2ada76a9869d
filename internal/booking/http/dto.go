package http

import (
	"time"

	"github.com/tomhotel/booking-backend/internal/booking"
	"github.com/tomhotel/booking-backend/internal/pkg/request"
	roomHttp "github.com/tomhotel/booking-backend/internal/room/http"
)

// ListBookingsRequest defines query parameters for listing bookings.
// UserID only applies to admin callers; everyone else is scoped to
// their own bookings.
type ListBookingsRequest struct {
	request.ListParams
	UserID string `form:"user_id" binding:"omitempty,uuid"`
	RoomID string `form:"room_id" binding:"omitempty,uuid"`
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
}

type BookingResponse struct {
	ID              string           `json:"id"`
	UserID          *string          `json:"user_id,omitempty"`
	Room            roomHttp.RoomTag `json:"room"`
	GuestName       string           `json:"guest_name"`
	GuestEmail      string           `json:"guest_email"`
	GuestPhone      string           `json:"guest_phone"`
	CheckIn         string           `json:"check_in"`
	CheckOut        string           `json:"check_out"`
	Guests          int              `json:"guests"`
	TotalCost       float64          `json:"total_cost"`
	Status          string           `json:"status"`
	SpecialRequests *string          `json:"special_requests,omitempty"`
	Reference       string           `json:"booking_reference"`
	PaymentMethod   string           `json:"payment_method"`
	CreatedAt       time.Time        `json:"created_at"`
}

// Check-in and check-out are calendar dates, not instants.
const dateLayout = "2006-01-02"

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		Room:            roomHttp.RoomTag{ID: b.RoomID, Name: b.RoomName, Type: b.RoomType},
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		CheckIn:         b.CheckIn.Format(dateLayout),
		CheckOut:        b.CheckOut.Format(dateLayout),
		Guests:          b.Guests,
		TotalCost:       b.TotalCost,
		Status:          string(b.Status),
		SpecialRequests: b.SpecialRequests,
		Reference:       b.Reference,
		PaymentMethod:   b.PaymentMethod,
		CreatedAt:       b.CreatedAt,
	}
}

type UpdateStatusBody struct {
	Status string `json:"status" binding:"required,oneof=confirmed cancelled"`
}
