package pagination

import "fmt"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is.
var (
	// ErrInvalidTotalItems indicates a negative item count.
	ErrInvalidTotalItems = constError("total items must not be negative")

	// ErrInvalidPerPage indicates a page size below 1.
	ErrInvalidPerPage = constError("items per page must be at least 1")

	// ErrInvalidNeighbors indicates a neighbor window below 1.
	ErrInvalidNeighbors = constError("number of neighboring pages must be at least 1")

	// ErrUnknownTag is returned by ParseTag for names outside the closed tag set.
	ErrUnknownTag = constError("unknown page tag")
)

// ConfigurationError reports a Config that cannot produce a Sequence.
// It is returned at construction time and is never retried internally.
type ConfigurationError struct {
	// Field is the offending Config field name.
	Field string

	// Value is the rejected value.
	Value int

	// Err is one of the sentinel errors above.
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid pagination configuration: %s=%d: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
