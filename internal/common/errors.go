// Package common defines shared constants and sentinel errors used across
// the client layers of QuizBoard. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Session errors.
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrSessionExpired  = errors.New("session expired")
	ErrInvalidTokenExp = errors.New("invalid token expiration")

	// Form validation errors.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// Ownership errors.
	ErrNotOwner = errors.New("you do not have permission to edit this question")
)
