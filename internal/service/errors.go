package service

import (
	"errors"
	"fmt"
)

var (
	// ErrQuestionFailed indicates no usable question could be synthesized for a fact.
	ErrQuestionFailed = errors.New("failed to synthesize question")

	// ErrTranslationExhausted indicates the translator spent its attempt budget
	// without a parsed or already-translated reply.
	ErrTranslationExhausted = errors.New("translation attempts exhausted")

	// ErrInvalidInput indicates a service was called with blank input.
	ErrInvalidInput = errors.New("invalid input")
)

// TranslationError reports an exhausted translation.
type TranslationError struct {
	// Language is the target language that was attempted.
	Language string
	// Attempts is how many translator attempts were made.
	Attempts int
	// LastState is the state of the final attempt before exhaustion.
	LastState TranslationState
	// Err is the underlying model error, if the model call itself failed.
	Err error
}

// Error implements the error interface for TranslationError.
func (e *TranslationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("translation to %s exhausted after %d attempts (%s): %v",
			e.Language, e.Attempts, e.LastState, e.Err)
	}
	return fmt.Sprintf("translation to %s exhausted after %d attempts (%s)",
		e.Language, e.Attempts, e.LastState)
}

// Unwrap returns the underlying model error.
func (e *TranslationError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrTranslationExhausted) hold for any *TranslationError.
func (e *TranslationError) Is(target error) bool {
	return target == ErrTranslationExhausted
}
