// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used when decoding the operation parameters of an incoming
// request. Callers can match against them with [errors.Is].
var (
	// ErrMalformedRequest is returned when a request is missing a required
	// form field or carries a value that cannot be parsed, including an
	// unknown or absent "op" selector.
	ErrMalformedRequest = errors.New("malformed request parameters")
)
