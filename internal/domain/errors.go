package domain

import "errors"

// Sentinel errors shared by repositories, use cases and handlers. Anything
// that does not wrap one of these is treated as an internal failure.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)
