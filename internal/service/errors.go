package service

import (
	"errors"
	"fmt"
)

// ErrCycle is returned when a move would make a bookmark its own ancestor,
// either directly (target is the source) or through the parent chain.
// Detected from in-memory state before any write.
var ErrCycle = errors.New("move would create a cycle")

// ValidationError reports invalid caller input. It is always detected
// before the store is touched, so a validation failure has zero effect.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
