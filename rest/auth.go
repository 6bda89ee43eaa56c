package rest

import (
	"context"

	"github.com/broqhotels/broq-go/session"
	"github.com/pkg/errors"
)

// AuthClient calls the backend auth endpoints. It must be wired with a plain
// (unauthenticated) http.Client: the refresh call itself must never travel
// through the bearer pipeline, or a rejected token would recurse into
// another refresh.
type AuthClient struct {
	client *Client
}

var _ session.AuthAPI = (*AuthClient)(nil)

// NewAuthClient creates a client for the backend's auth endpoints.
func NewAuthClient(baseURL string, options ...ClientOption) (*AuthClient, error) {
	client, err := NewClient(baseURL, options...)
	if err != nil {
		return nil, errors.Wrap(err, "[rest.NewAuthClient]")
	}
	return &AuthClient{client: client}, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Login exchanges credentials for tokens plus identity.
func (a *AuthClient) Login(ctx context.Context, email, password string) (*session.LoginResult, error) {
	var result session.LoginResult
	if err := a.client.post(ctx, RouteLogin, loginRequest{Email: email, Password: password}, &result); err != nil {
		return nil, errors.Wrap(err, "[AuthClient.Login]")
	}
	return &result, nil
}

// Register creates a new user account.
func (a *AuthClient) Register(ctx context.Context, username, email, password string) error {
	if err := a.client.post(ctx, RouteRegister, registerRequest{Username: username, Email: email, Password: password}, nil); err != nil {
		return errors.Wrap(err, "[AuthClient.Register]")
	}
	return nil
}

// RefreshSession exchanges a refresh credential for a fresh token set.
func (a *AuthClient) RefreshSession(ctx context.Context, refreshToken string) (*session.LoginResult, error) {
	var result session.LoginResult
	if err := a.client.post(ctx, RouteRefresh, refreshRequest{RefreshToken: refreshToken}, &result); err != nil {
		return nil, errors.Wrap(err, "[AuthClient.RefreshSession]")
	}
	return &result, nil
}

// Logout tells the backend to revoke the refresh credential. Best-effort
// from the session's point of view; the error is reported for logging only.
func (a *AuthClient) Logout(ctx context.Context, refreshToken string) error {
	if err := a.client.post(ctx, RouteLogout, refreshRequest{RefreshToken: refreshToken}, nil); err != nil {
		return errors.Wrap(err, "[AuthClient.Logout]")
	}
	return nil
}
