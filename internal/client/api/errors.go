package api

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/medfinder/internal/client/validate"
)

var (
	ErrValidation      = validate.ErrValidation
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrBackend         = errors.New("backend error")
	ErrUnavailable     = errors.New("server unavailable")
	ErrInvalidResponse = errors.New("invalid server response")
)

var errNotArray = errors.New("expected a JSON array")

// Error is the single error type returned by HTTPClient.
type Error struct {
	Kind    error
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Is(target error) bool { return target == e.Kind }

func (e *Error) Unwrap() error { return e.Err }

func kindForStatus(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return ErrBackend
	}
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
