package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tomhotel/booking-backend/internal/booking"
	"github.com/tomhotel/booking-backend/internal/room"
)

// AdminHandler serves the dashboard aggregates.
type AdminHandler struct {
	bookingService booking.Service
	roomService    room.Service
}

func NewAdminHandler(bookingService booking.Service, roomService room.Service) *AdminHandler {
	return &AdminHandler{
		bookingService: bookingService,
		roomService:    roomService,
	}
}

// StatsResponse is the payload for GET /v1/admin/stats.
type StatsResponse struct {
	TotalBookings     int     `json:"total_bookings"`
	PendingBookings   int     `json:"pending_bookings"`
	ConfirmedBookings int     `json:"confirmed_bookings"`
	CancelledBookings int     `json:"cancelled_bookings"`
	Revenue           float64 `json:"revenue"`
	AvailableRooms    int     `json:"available_rooms"`
}

// GET /v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.bookingService.Stats(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}

	// A one-row list is enough: the window total carries the count.
	available := true
	_, availableRooms, err := h.roomService.List(ctx, room.Filter{Available: &available, Page: 1, PageSize: 1})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count rooms"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		TotalBookings:     stats.TotalBookings,
		PendingBookings:   stats.PendingBookings,
		ConfirmedBookings: stats.ConfirmedBookings,
		CancelledBookings: stats.CancelledBookings,
		Revenue:           stats.Revenue,
		AvailableRooms:    availableRooms,
	})
}
