package http

import (
	"time"

	"github.com/tomhotel/booking-backend/internal/pkg/request"
	"github.com/tomhotel/booking-backend/internal/room"
)

// ListRoomsRequest defines query parameters for browsing the catalog.
type ListRoomsRequest struct {
	request.ListParams
	Available *bool  `form:"available"`
	Type      string `form:"type" binding:"omitempty,oneof=Single Double Deluxe Suite"`
}

type RoomResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Price       float64   `json:"price"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description"`
	Amenities   []string  `json:"amenities"`
	ImageURL    string    `json:"image_url"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewRoomResponse(rm *room.Room) RoomResponse {
	amenities := rm.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return RoomResponse{
		ID:          rm.ID,
		Name:        rm.Name,
		Type:        string(rm.Type),
		Price:       rm.Price,
		Capacity:    rm.Capacity,
		Description: rm.Description,
		Amenities:   amenities,
		ImageURL:    rm.ImageURL,
		Available:   rm.Available,
		CreatedAt:   rm.CreatedAt,
	}
}

// RoomTag is the minimal room shape embedded in other responses.
type RoomTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type CreateRoomBody struct {
	Name        string   `json:"name" binding:"required"`
	Type        string   `json:"type" binding:"required,oneof=Single Double Deluxe Suite"`
	Price       float64  `json:"price" binding:"min=0"`
	Capacity    int      `json:"capacity" binding:"required,min=1"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	ImageURL    string   `json:"image_url"`
	Available   bool     `json:"available"`
}

type UpdateRoomBody struct {
	Name        *string  `json:"name"`
	Type        *string  `json:"type" binding:"omitempty,oneof=Single Double Deluxe Suite"`
	Price       *float64 `json:"price"`
	Capacity    *int     `json:"capacity"`
	Description *string  `json:"description"`
	Amenities   []string `json:"amenities"`
	ImageURL    *string  `json:"image_url"`
	Available   *bool    `json:"available"`
}
