package session

import "errors"

var (
	// NoRefreshTokenErr is returned when a refresh is attempted with no stored
	// refresh credential. Terminal: the caller must send the user to login.
	NoRefreshTokenErr = errors.New("no refresh token available")

	// RefreshFailedErr is returned when the backend rejected the refresh
	// credential or was unreachable. The local session has already been wiped
	// by the time callers see this.
	RefreshFailedErr = errors.New("refresh failed")

	// NotAuthenticatedErr is returned by the oauth2 TokenSource adapter when
	// no access credential is held.
	NotAuthenticatedErr = errors.New("not authenticated")
)
