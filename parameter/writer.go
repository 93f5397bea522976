package parameter

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	KeyProblemFile = "PROBLEM_FILE"
	KeyTourFile    = "TOUR_FILE"
)

// ErrInvalidValue is returned for keys or values that would break the line format.
var ErrInvalidValue = errors.New("parameter: invalid key or value")

// Writer emits `KEY = value` lines. The first error is sticky: later calls
// do nothing and Err reports it.
type Writer struct {
	w       io.Writer
	err     error
	written int64
}

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// ProblemFile writes the PROBLEM_FILE line.
func (w *Writer) ProblemFile(path string) *Writer {
	return w.Set(KeyProblemFile, path)
}

// TourFile writes the TOUR_FILE line.
func (w *Writer) TourFile(path string) *Writer {
	return w.Set(KeyTourFile, path)
}

// Set writes an arbitrary `key = value` line.
func (w *Writer) Set(key, value string) *Writer {
	if w.err != nil {
		return w
	}
	if err := checkPair(key, value); err != nil {
		w.err = err
		return w
	}
	n, err := io.WriteString(w.w, key+" = "+value+"\n")
	w.written += int64(n)
	w.err = err
	return w
}

// Tunables writes every tunable in order.
func (w *Writer) Tunables(t Tunables) *Writer {
	for _, p := range t {
		w.Set(p.Key, p.Value)
	}
	return w
}

// EOF writes the terminating EOF line and returns the first error.
func (w *Writer) EOF() error {
	if w.err != nil {
		return w.err
	}
	n, err := io.WriteString(w.w, "EOF\n")
	w.written += int64(n)
	w.err = err
	return err
}

// Err returns the first error encountered.
func (w *Writer) Err() error { return w.err }

// Written returns the number of bytes written.
func (w *Writer) Written() int64 { return w.written }

func checkPair(key, value string) error {
	if key == "" || strings.ContainsAny(key, " \t\r\n=") {
		return fmt.Errorf("%w: key %q", ErrInvalidValue, key)
	}
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%w: value of %s spans lines", ErrInvalidValue, key)
	}
	return nil
}
