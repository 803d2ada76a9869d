package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tomhotel/booking-backend/internal/auth"
	"github.com/tomhotel/booking-backend/internal/booking"
	"github.com/tomhotel/booking-backend/internal/pkg/request"
	"github.com/tomhotel/booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// GET /v1/bookings
// Profile booking history and the admin dashboard share this endpoint:
// a regular user is always scoped to their own bookings, an admin sees
// everything and may narrow by user_id.
func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filterUserID := auth.GetUserID(c)
	if auth.IsAdmin(c) {
		filterUserID = req.UserID // empty shows all
	}

	filter := booking.Filter{
		UserID:   filterUserID,
		RoomID:   req.RoomID,
		Status:   req.Status,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

// GET /v1/bookings/:id
func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Access check: booking owner or admin.
	userID := auth.GetUserID(c)
	isOwner := b.UserID != nil && *b.UserID == userID
	if !isOwner && !auth.IsAdmin(c) {
		response.Error(c, booking.ErrPermissionDenied)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// PATCH /v1/bookings/:id/status (admin)
func (h *Handler) UpdateStatus(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var body UpdateStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), uri.ID, booking.Status(body.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}
