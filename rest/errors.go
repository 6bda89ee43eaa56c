package rest

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// APIError is a non-2xx backend response. 401s are normally absorbed by the
// request pipeline; one reaching a caller means the refresh path was already
// exhausted for that request.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("backend returned %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Body)
}

// IsUnauthorized reports whether err is a backend 401.
func IsUnauthorized(err error) bool {
	return isStatus(err, http.StatusUnauthorized)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	return isStatus(err, http.StatusNotFound)
}

func isStatus(err error, status int) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == status
}
