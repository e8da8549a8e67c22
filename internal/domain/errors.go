package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyInstruction is returned when a dialog pair has no instruction text.
	ErrEmptyInstruction = errors.New("instruction cannot be empty")

	// ErrEmptyAnswer is returned when a dialog pair has no answer text.
	ErrEmptyAnswer = errors.New("answer cannot be empty")
)
