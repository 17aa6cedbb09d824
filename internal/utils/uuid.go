// Package utils provides general-purpose helper utilities used across
// different parts of the application: identifier generation, access token
// inspection and HTTP client initialization.
package utils

import "github.com/google/uuid"

// NewID returns a time-ordered UUIDv7 string, falling back to a random v4
// if the clock source fails.
func NewID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
