package signing

import (
	"errors"
	"net/http"
)

// Domain errors for signing operations.
var (
	ErrFieldNotFound = errors.New("document field not found")
	ErrMissingValue  = errors.New("missing required input")
	ErrNotSigned     = errors.New("field is not signed")
	ErrUnassigned    = errors.New("field has no assigned signer")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrFieldNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrMissingValue) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrNotSigned) || errors.Is(err, ErrUnassigned) {
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
