package rest

import (
	"context"

	"github.com/pkg/errors"
)

// Room is a bookable room from the public catalogue.
type Room struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity,omitempty"`
	Images      []string `json:"images,omitempty"`
	CreatedAt   string   `json:"createdAt,omitempty"`
}

// RoomBookingRequest books a room for a date range. Dates use the backend's
// YYYY-MM-DD format.
type RoomBookingRequest struct {
	RoomID       string  `json:"roomId"`
	CheckInDate  string  `json:"checkInDate"`
	CheckOutDate string  `json:"checkOutDate"`
	Guests       int     `json:"guests,omitempty"`
	TotalPrice   float64 `json:"totalPrice,omitempty"`
}

// Rooms lists the public room catalogue.
func (c *Client) Rooms(ctx context.Context) ([]Room, error) {
	var rooms []Room
	if err := c.get(ctx, RouteRooms, &rooms); err != nil {
		return nil, errors.Wrap(err, "[Client.Rooms]")
	}
	return rooms, nil
}

// BookRoom creates a room booking for the authenticated user.
func (c *Client) BookRoom(ctx context.Context, booking RoomBookingRequest) (*RoomBooking, error) {
	var created RoomBooking
	if err := c.post(ctx, RouteRoomBook, booking, &created); err != nil {
		return nil, errors.Wrap(err, "[Client.BookRoom]")
	}
	return &created, nil
}
