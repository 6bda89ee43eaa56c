package rest

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
)

// RoomBooking is a room reservation belonging to a user.
type RoomBooking struct {
	ID                      string  `json:"id"`
	RoomID                  string  `json:"roomId,omitempty"`
	RoomName                string  `json:"roomName,omitempty"`
	CheckInDate             string  `json:"checkInDate"`
	CheckOutDate            string  `json:"checkOutDate"`
	Status                  string  `json:"status,omitempty"`
	TotalPrice              float64 `json:"totalPrice,omitempty"`
	BookingConfirmationCode string  `json:"bookingConfirmationCode,omitempty"`
	CreatedAt               string  `json:"createdAt,omitempty"`
}

// MyRoomBookings lists the authenticated user's room bookings.
func (c *Client) MyRoomBookings(ctx context.Context) ([]RoomBooking, error) {
	var bookings []RoomBooking
	if err := c.get(ctx, RouteMyRoomBookings, &bookings); err != nil {
		return nil, errors.Wrap(err, "[Client.MyRoomBookings]")
	}
	return bookings, nil
}

// CancelBooking deletes a booking by ID.
func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	if err := c.delete(ctx, RouteBookings+"/"+url.PathEscape(bookingID)); err != nil {
		return errors.Wrap(err, "[Client.CancelBooking]")
	}
	return nil
}
