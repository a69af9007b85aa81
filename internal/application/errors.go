package application

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks caller errors: a malformed email or a lookup of an unknown one.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAlgorithmUnavailable means the password hash primitive is missing from the runtime.
	ErrAlgorithmUnavailable = errors.New("algorithm unavailable")
)

func invalidArgument(msg string) error {
	invalidArguments.Add(1)
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}
