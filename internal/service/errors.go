package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request reaches a service
	// operation with required fields missing or empty.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnauthenticated is returned when the supplied (id, password) pair
	// does not match any stored credential. Write paths surface this as a
	// recoverable error to the dispatcher instead of aborting the process.
	ErrUnauthenticated = errors.New("authentication failed")
)
