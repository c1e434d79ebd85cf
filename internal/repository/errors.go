package repository

import (
	"errors"
	"fmt"
)

// ErrValidation marks failures caught before any management API call.
// No partial mutation has happened when this is returned.
var ErrValidation = errors.New("validation failed")

// OpError is the structured failure of a single repository operation.
// It names the attempted operation and the entity identity so the
// operator sees what failed, not just why.
type OpError struct {
	Op   string // "list", "create", "delete"
	Kind string // "zone", "zone scope", "client subnet", "policy", "record"
	Key  string // entity identity, e.g. "corp.example.com/internal"
	Err  error
}

func (e *OpError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s %s %q: %v", e.Op, e.Kind, e.Key, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
