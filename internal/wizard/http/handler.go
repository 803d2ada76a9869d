package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tomhotel/booking-backend/internal/auth"
	bookingHttp "github.com/tomhotel/booking-backend/internal/booking/http"
	"github.com/tomhotel/booking-backend/internal/pkg/response"
	"github.com/tomhotel/booking-backend/internal/user"
	"github.com/tomhotel/booking-backend/internal/wizard"
)

type Handler struct {
	service     wizard.Service
	userService user.Service
}

func NewHandler(service wizard.Service, userService user.Service) *Handler {
	return &Handler{
		service:     service,
		userService: userService,
	}
}

// GET /v1/wizard/draft
// Any step may read the draft. When the guest fields are still empty,
// the signed-in profile is offered as prefill for the guest form.
func (h *Handler) GetDraft(c *gin.Context) {
	userID := auth.GetUserID(c)
	draft := h.service.Draft(userID)

	resp := DraftViewResponse{
		Draft:          NewDraftResponse(draft),
		PaymentMethods: wizard.PaymentMethods,
	}

	if draft.GuestName == "" && draft.GuestEmail == "" {
		if p, err := h.userService.GetByID(c.Request.Context(), userID); err == nil {
			defaults := &GuestDefaults{Email: p.Email}
			if p.FullName != nil {
				defaults.Name = *p.FullName
			}
			if p.Phone != nil {
				defaults.Phone = *p.Phone
			}
			resp.GuestDefaults = defaults
		}
	}

	c.JSON(http.StatusOK, resp)
}

// POST /v1/wizard/stay
func (h *Handler) SelectStay(c *gin.Context) {
	var body StayBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	checkIn, ok := parseDate(c, body.CheckIn)
	if !ok {
		return
	}
	checkOut, ok := parseDate(c, body.CheckOut)
	if !ok {
		return
	}

	draft, err := h.service.SelectStay(c.Request.Context(), auth.GetUserID(c), wizard.StayRequest{
		RoomID:   body.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   body.Guests,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewDraftResponse(draft))
}

// POST /v1/wizard/guest
func (h *Handler) SubmitGuestInfo(c *gin.Context) {
	var body GuestInfoBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	draft, err := h.service.SubmitGuestInfo(auth.GetUserID(c), wizard.GuestInfoRequest{
		Name:            body.Name,
		Email:           body.Email,
		Phone:           body.Phone,
		SpecialRequests: body.SpecialRequests,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewDraftResponse(draft))
}

// POST /v1/wizard/payment
// The terminal write. On success the new booking is returned with its
// reference; the draft is cleared later, by the confirmation read.
func (h *Handler) ConfirmPayment(c *gin.Context) {
	var body PaymentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	b, err := h.service.ConfirmPayment(c.Request.Context(), auth.GetUserID(c), body.PaymentMethod)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, bookingHttp.NewBookingResponse(b))
}

// GET /v1/wizard/confirmation/:reference
func (h *Handler) Confirmation(c *gin.Context) {
	reference := c.Param("reference")

	b, err := h.service.Confirmation(c.Request.Context(), auth.GetUserID(c), reference)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, bookingHttp.NewBookingResponse(b))
}

// parseDate parses a calendar date field, treating empty as unset and
// rejecting malformed input before the wizard's ordered rules run.
func parseDate(c *gin.Context, value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, expected YYYY-MM-DD"})
		return time.Time{}, false
	}
	return t, true
}
