package docfields

import (
	"errors"
	"net/http"
)

// Domain errors for document field operations.
var (
	ErrNotFound     = errors.New("document field not found")
	ErrDuplicate    = errors.New("document field already exists")
	ErrSigned       = errors.New("field is already signed")
	ErrSignedFields = errors.New("document has signed fields")
	ErrValidation   = errors.New("invalid field")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) || errors.Is(err, ErrSigned) || errors.Is(err, ErrSignedFields) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrValidation) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
