package rest

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
)

// FoodUpdate carries the changed fields of a food edit; nil fields are left
// untouched by the backend.
type FoodUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	ImageURL    *string  `json:"imageUrl,omitempty"`
	Featured    *bool    `json:"featured,omitempty"`
}

// RoomUpdate carries the changed fields of a room edit.
type RoomUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Capacity    *int     `json:"capacity,omitempty"`
}

// ActivityUpdate carries the changed fields of an activity edit.
type ActivityUpdate struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Location        *string  `json:"location,omitempty"`
	Duration        *string  `json:"duration,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	MaxParticipants *int     `json:"maxParticipants,omitempty"`
}

// AdminCreateFood creates a food item. ADMIN only.
func (c *Client) AdminCreateFood(ctx context.Context, food Food) (*Food, error) {
	var created Food
	if err := c.post(ctx, RouteAdminFoodCreate, food, &created); err != nil {
		return nil, errors.Wrap(err, "[Client.AdminCreateFood]")
	}
	return &created, nil
}

// AdminUpdateFood edits a food item. ADMIN only.
func (c *Client) AdminUpdateFood(ctx context.Context, foodID string, update FoodUpdate) error {
	if err := c.put(ctx, RouteAdminFood+"/"+url.PathEscape(foodID), update, nil); err != nil {
		return errors.Wrap(err, "[Client.AdminUpdateFood]")
	}
	return nil
}

// AdminDeleteFood removes a food item. ADMIN only.
func (c *Client) AdminDeleteFood(ctx context.Context, foodID string) error {
	if err := c.delete(ctx, RouteAdminFood+"/"+url.PathEscape(foodID)); err != nil {
		return errors.Wrap(err, "[Client.AdminDeleteFood]")
	}
	return nil
}

// AdminCreateRoom creates a room. ADMIN only.
func (c *Client) AdminCreateRoom(ctx context.Context, room Room) (*Room, error) {
	var created Room
	if err := c.post(ctx, RouteAdminRooms, room, &created); err != nil {
		return nil, errors.Wrap(err, "[Client.AdminCreateRoom]")
	}
	return &created, nil
}

// AdminUpdateRoom edits a room. ADMIN only.
func (c *Client) AdminUpdateRoom(ctx context.Context, roomID string, update RoomUpdate) error {
	if err := c.put(ctx, RouteAdminRooms+"/"+url.PathEscape(roomID), update, nil); err != nil {
		return errors.Wrap(err, "[Client.AdminUpdateRoom]")
	}
	return nil
}

// AdminDeleteRoom removes a room. ADMIN only.
func (c *Client) AdminDeleteRoom(ctx context.Context, roomID string) error {
	if err := c.delete(ctx, RouteAdminRooms+"/"+url.PathEscape(roomID)); err != nil {
		return errors.Wrap(err, "[Client.AdminDeleteRoom]")
	}
	return nil
}

// AdminCreateActivity creates an activity. ADMIN only.
func (c *Client) AdminCreateActivity(ctx context.Context, activity Activity) (*Activity, error) {
	var created Activity
	if err := c.post(ctx, RouteAdminActivityCreate, activity, &created); err != nil {
		return nil, errors.Wrap(err, "[Client.AdminCreateActivity]")
	}
	return &created, nil
}

// AdminUpdateActivity edits an activity. ADMIN only.
func (c *Client) AdminUpdateActivity(ctx context.Context, activityID string, update ActivityUpdate) error {
	if err := c.put(ctx, RouteAdminActivity+"/"+url.PathEscape(activityID), update, nil); err != nil {
		return errors.Wrap(err, "[Client.AdminUpdateActivity]")
	}
	return nil
}

// AdminDeleteActivity removes an activity. ADMIN only.
func (c *Client) AdminDeleteActivity(ctx context.Context, activityID string) error {
	if err := c.delete(ctx, RouteAdminActivity+"/"+url.PathEscape(activityID)); err != nil {
		return errors.Wrap(err, "[Client.AdminDeleteActivity]")
	}
	return nil
}

// AdminBookings lists all room bookings. ADMIN only.
func (c *Client) AdminBookings(ctx context.Context) ([]RoomBooking, error) {
	var bookings []RoomBooking
	if err := c.get(ctx, RouteAdminBookings, &bookings); err != nil {
		return nil, errors.Wrap(err, "[Client.AdminBookings]")
	}
	return bookings, nil
}

// AdminUsers lists all user accounts. ADMIN only.
func (c *Client) AdminUsers(ctx context.Context) ([]UserProfile, error) {
	var users []UserProfile
	if err := c.get(ctx, RouteUserAll, &users); err != nil {
		return nil, errors.Wrap(err, "[Client.AdminUsers]")
	}
	return users, nil
}
