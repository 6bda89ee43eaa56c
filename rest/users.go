package rest

import (
	"context"

	"github.com/broqhotels/broq-go/session"
	"github.com/pkg/errors"
)

// UserProfile is the authenticated user's account record.
type UserProfile struct {
	ID       string       `json:"id"`
	Username string       `json:"username"`
	Email    string       `json:"email"`
	Role     session.Role `json:"role,omitempty"`
}

// CurrentUser fetches the authenticated user's profile.
func (c *Client) CurrentUser(ctx context.Context) (*UserProfile, error) {
	var profile UserProfile
	if err := c.get(ctx, RouteUserProfile, &profile); err != nil {
		return nil, errors.Wrap(err, "[Client.CurrentUser]")
	}
	return &profile, nil
}
