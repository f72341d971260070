package config

import "errors"

var (
	// ErrInvalidStorageConfigs is returned when the merged configuration ends
	// up with no usable database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")

	// ErrInvalidServerConfigs is returned when the HTTP address is missing or
	// malformed, or the request timeout is not positive.
	ErrInvalidServerConfigs = errors.New("invalid server configs")
)
