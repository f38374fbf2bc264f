package services

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation indicates a missing or blank required field. Detected
	// before any write, so a validation failure never has side effects.
	ErrValidation = errors.New("invalid input")
	// ErrForbidden indicates the caller does not own the resource.
	ErrForbidden = errors.New("forbidden")
	// ErrDependency indicates a media collaborator failed.
	ErrDependency = errors.New("dependency failure")
)

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func dependencyErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrDependency, op, err)
}
