package tour

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every *NotFoundError.
	ErrNotFound = errors.New("tour: keyword not found")

	// ErrFormat is matched by every *FormatError.
	ErrFormat = errors.New("tour: malformed value")

	// ErrInvalidTour is returned by Validate.
	ErrInvalidTour = errors.New("tour: not a permutation of the problem nodes")
)

// NotFoundError reports a keyword that did not appear before end of input.
type NotFoundError struct {
	Keyword string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("tour: could not find keyword %q", e.Keyword)
}

// Is makes errors.Is(err, ErrNotFound) succeed.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// FormatError reports a field whose value is not what was expected.
type FormatError struct {
	Field string
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("tour: %s is not a node number: %q", e.Field, e.Value)
}

// Unwrap returns ErrFormat and the underlying conversion error.
func (e *FormatError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFormat}
	}
	return []error{ErrFormat, e.Err}
}
