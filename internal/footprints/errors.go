package footprints

import (
	"errors"
	"net/http"
)

// Domain errors for footprint operations.
var (
	ErrNotFound  = errors.New("footprint not found")
	ErrDuplicate = errors.New("footprint already exists")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
