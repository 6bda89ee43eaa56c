package rest

import (
	"context"

	"github.com/pkg/errors"
)

// Food is a menu item from the public catalogue.
type Food struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	Featured    bool    `json:"featured,omitempty"`
}

// Foods lists the public food catalogue.
func (c *Client) Foods(ctx context.Context) ([]Food, error) {
	var foods []Food
	if err := c.get(ctx, RouteFoods, &foods); err != nil {
		return nil, errors.Wrap(err, "[Client.Foods]")
	}
	return foods, nil
}
