// Package utils provides general-purpose helper utilities used across
// different parts of the application: credential generation and HTTP response
// writing.
package utils

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// GenerateCredential returns a fresh opaque user credential: 128 random bits
// hex-encoded into a 32-character lower-case string.
//
// The credential is generated exactly once per user at registration time and
// substitutes for a login password; it is never derived, hashed, or
// regenerated afterwards.
//
// Example output:
//
//	"3f2c9a1d4e5b6c7d8e9f0a1b2c3d4e5f"
func GenerateCredential() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
