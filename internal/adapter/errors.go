package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("name conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNoCredentials is returned by authenticated operations when neither
	// Register nor SetCredentials has been called yet.
	ErrNoCredentials = errors.New("no credentials stored")
)
