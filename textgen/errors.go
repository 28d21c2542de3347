// SPDX-License-Identifier: MIT

package textgen

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration indicates that no alphabet has been defined.
	ErrConfiguration = errors.New("textgen: alphabet not defined")

	// ErrPrecondition indicates a required step that has not been taken.
	ErrPrecondition = errors.New("textgen: precondition failed")

	// ErrInvalidArgument indicates an argument outside its domain.
	ErrInvalidArgument = errors.New("textgen: invalid argument")
)

// Missing steps named by precondition errors.
const (
	StepFeed     = "input not fed"
	StepIdentify = "probabilities not identified"
	StepGenerate = "no text generated"
)

func precondition(step string) error {
	return fmt.Errorf("%w: %s", ErrPrecondition, step)
}

func preconditionCause(step string, cause error) error {
	return fmt.Errorf("%w: %s: %w", ErrPrecondition, step, cause)
}

func invalid(cause error) error {
	return fmt.Errorf("%w: %w", ErrInvalidArgument, cause)
}
