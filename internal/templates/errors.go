package templates

import (
	"errors"
	"net/http"
)

// Domain errors for template operations.
var (
	ErrNotFound      = errors.New("template not found")
	ErrFieldNotFound = errors.New("template field not found")
	ErrDuplicate     = errors.New("template name already exists")
	ErrValidation    = errors.New("invalid field definition")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrFieldNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
