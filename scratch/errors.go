package scratch

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned when using a File after Close.
	ErrClosed = errors.New("scratch: file is closed")

	// ErrInsecureWipe marks a wipe whose write-through to disk failed.
	ErrInsecureWipe = errors.New("scratch: secure wipe incomplete")
)

// WipeError reports a failed write-through after zeroing a scratch file.
//
// The mapped memory has been zeroed; the file at Path may still hold prior
// contents on disk and should be verified or removed by an operator.
type WipeError struct {
	Path string
	Err  error
}

func (e *WipeError) Error() string {
	return fmt.Sprintf("scratch: %s zeroed in memory but write-through failed, contents may persist on disk: %v", e.Path, e.Err)
}

// Unwrap exposes both ErrInsecureWipe and the underlying I/O error.
func (e *WipeError) Unwrap() []error { return []error{ErrInsecureWipe, e.Err} }
