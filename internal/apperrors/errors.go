package apperrors

import (
	"errors"
	"net/http"
)

var (
	// ErrConflict means a user with the given email or phone already exists.
	ErrConflict = errors.New("user with this email or phone already exists")
	// ErrInvalidCode means no OTP was issued for the identifier or the code does not match.
	ErrInvalidCode = errors.New("invalid OTP")
	// ErrPasswordMismatch means password and confirmPassword differ at signup.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrNotFound means no user or profile matched the lookup.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized means a bad password or a bad login OTP.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrBadRequest means the request carried neither a password nor an OTP.
	ErrBadRequest = errors.New("bad request")
)

// StatusCode maps a service error onto the HTTP status it is surfaced with.
// Anything outside the taxonomy is a 500.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrConflict),
		errors.Is(err, ErrInvalidCode),
		errors.Is(err, ErrPasswordMismatch),
		errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
