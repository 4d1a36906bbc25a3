package spot

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned for any non-success response from the Spot API.
// It carries the HTTP status and the server's message so callers can
// report which remote call failed and why.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("spot API error (status %d): %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
