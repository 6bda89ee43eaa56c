package rest

import (
	"context"

	"github.com/pkg/errors"
)

// Activity is a bookable activity from the public catalogue.
type Activity struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description,omitempty"`
	Location        string  `json:"location,omitempty"`
	Duration        string  `json:"duration,omitempty"`
	Price           float64 `json:"price"`
	MaxParticipants int     `json:"maxParticipants,omitempty"`
	ImageURL        string  `json:"imageUrl,omitempty"`
}

// ActivityBookingRequest books an activity slot.
type ActivityBookingRequest struct {
	ActivityID   string `json:"activityId"`
	Date         string `json:"date"`
	Participants int    `json:"participants"`
}

// Activities lists the public activity catalogue.
func (c *Client) Activities(ctx context.Context) ([]Activity, error) {
	var activities []Activity
	if err := c.get(ctx, RouteActivities, &activities); err != nil {
		return nil, errors.Wrap(err, "[Client.Activities]")
	}
	return activities, nil
}

// BookActivity creates an activity booking for the authenticated user.
func (c *Client) BookActivity(ctx context.Context, booking ActivityBookingRequest) error {
	if err := c.post(ctx, RouteActivityBooking, booking, nil); err != nil {
		return errors.Wrap(err, "[Client.BookActivity]")
	}
	return nil
}
