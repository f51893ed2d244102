package domain

import "errors"

// Business error taxonomy. Handlers map these to HTTP status codes;
// anything outside this set is treated as an infrastructure failure.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("duplicate entry")
	ErrInternalServer = errors.New("internal server error")
)
