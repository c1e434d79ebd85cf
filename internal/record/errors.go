package record

import "errors"

var (
	// ErrUnsupportedType is returned when a record type outside the
	// creatable set (A, CNAME, TXT, PTR) is requested for creation.
	// Callers must surface this to the operator; it is never a
	// silent no-op.
	ErrUnsupportedType = errors.New("unsupported record type")

	// ErrInvalidData is returned when creation input cannot be parsed
	// for the requested record type.
	ErrInvalidData = errors.New("invalid record data")
)
