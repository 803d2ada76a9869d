package http

import (
	"github.com/tomhotel/booking-backend/internal/wizard"
)

// Check-in and check-out travel as calendar dates.
const dateLayout = "2006-01-02"

// StayBody is the payload for the room-and-dates step. Fields are bound
// loosely on purpose: the wizard's own ordered validation decides which
// missing field is reported first.
type StayBody struct {
	RoomID   string `json:"room_id" binding:"omitempty,uuid"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Guests   int    `json:"guests"`
}

// GuestInfoBody is the payload for the guest information step.
type GuestInfoBody struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"special_requests"`
}

// PaymentBody is the payload for the payment step.
type PaymentBody struct {
	PaymentMethod string `json:"payment_method"`
}

type DraftRoomResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"`
	Capacity int     `json:"capacity"`
}

// DraftResponse mirrors the in-memory draft. Unset dates render as
// empty strings so a fresh draft shows no residual data.
type DraftResponse struct {
	Room            *DraftRoomResponse `json:"room"`
	CheckIn         string             `json:"check_in"`
	CheckOut        string             `json:"check_out"`
	Guests          int                `json:"guests"`
	TotalCost       float64            `json:"total_cost"`
	GuestName       string             `json:"guest_name"`
	GuestEmail      string             `json:"guest_email"`
	GuestPhone      string             `json:"guest_phone"`
	SpecialRequests string             `json:"special_requests"`
	PaymentMethod   string             `json:"payment_method"`
}

// GuestDefaults carries profile-derived prefill values for the guest
// information form.
type GuestDefaults struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// DraftViewResponse is the full GET /v1/wizard/draft payload.
type DraftViewResponse struct {
	Draft          DraftResponse  `json:"draft"`
	GuestDefaults  *GuestDefaults `json:"guest_defaults,omitempty"`
	PaymentMethods []string       `json:"payment_methods"`
}

func NewDraftResponse(d wizard.Draft) DraftResponse {
	resp := DraftResponse{
		Guests:          d.Guests,
		TotalCost:       d.TotalCost,
		GuestName:       d.GuestName,
		GuestEmail:      d.GuestEmail,
		GuestPhone:      d.GuestPhone,
		SpecialRequests: d.SpecialRequests,
		PaymentMethod:   d.PaymentMethod,
	}

	if d.Room != nil {
		resp.Room = &DraftRoomResponse{
			ID:       d.Room.ID,
			Name:     d.Room.Name,
			Type:     d.Room.Type,
			Price:    d.Room.Price,
			Capacity: d.Room.Capacity,
		}
	}
	if !d.CheckIn.IsZero() {
		resp.CheckIn = d.CheckIn.Format(dateLayout)
	}
	if !d.CheckOut.IsZero() {
		resp.CheckOut = d.CheckOut.Format(dateLayout)
	}

	return resp
}
