package generation

import (
	"errors"
	"fmt"
)

// Common errors returned by the generation package
var (
	// ErrRetriesExhausted is matched by the error returned when every attempt failed.
	ErrRetriesExhausted = errors.New("model call failed after all attempts")

	// ErrEmptyResponse is returned by completers when the service replied without text.
	ErrEmptyResponse = errors.New("empty response from language model")

	// ErrContentBlocked is returned when the service blocked the content.
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when a caller or completer is misconfigured.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// CallError reports an exhausted model call: the last failure and how many
// attempts were made.
type CallError struct {
	Attempts int
	Err      error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("error after %d attempts: %v", e.Attempts, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrRetriesExhausted) hold for any *CallError.
func (e *CallError) Is(target error) bool {
	return target == ErrRetriesExhausted
}
