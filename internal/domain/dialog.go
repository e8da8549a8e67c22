package domain

import (
	"fmt"
	"strings"
)

// DialogPair is a single (instruction, answer) unit destined for the dataset.
// Pairs are created by the question synthesizer (base language) or the
// translator and never mutated afterwards.
type DialogPair struct {
	Instruction string
	Answer      string
}

// NewDialogPair creates a DialogPair after checking that neither side is blank.
func NewDialogPair(instruction, answer string) (DialogPair, error) {
	pair := DialogPair{Instruction: instruction, Answer: answer}
	if err := pair.Validate(); err != nil {
		return DialogPair{}, err
	}
	return pair, nil
}

// Validate checks if the DialogPair has valid data.
func (p DialogPair) Validate() error {
	if strings.TrimSpace(p.Instruction) == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyInstruction)
	}
	if strings.TrimSpace(p.Answer) == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyAnswer)
	}
	return nil
}
