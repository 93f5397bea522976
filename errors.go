package tspio

import (
	"errors"
	"fmt"

	"github.com/hupe1980/tspio/parameter"
	"github.com/hupe1980/tspio/problem"
	"github.com/hupe1980/tspio/scratch"
	"github.com/hupe1980/tspio/tour"
)

var (
	// ErrNotFound is returned when a keyword is missing from the solver output.
	ErrNotFound = errors.New("not found")

	// ErrFormat is returned when the solver output holds a malformed value.
	ErrFormat = errors.New("malformed solver output")

	// ErrInsecureWipe is returned when a scratch file could not be verifiably
	// zeroed. The file has still been deleted.
	ErrInsecureWipe = errors.New("insecure wipe")

	// ErrSolver is returned when the solver process fails or returns a tour
	// that does not visit every node once.
	ErrSolver = errors.New("solver failed")

	// ErrInvalidInput is returned for geometry or settings that cannot be encoded.
	ErrInvalidInput = errors.New("invalid input")
)

// ErrDimensionMismatch indicates the tour file reports a different dimension
// than the problem that was submitted.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected uint32
	Actual   uint32
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// SolverError describes a solver process that did not exit cleanly.
type SolverError struct {
	Path   string
	Output string // tail of the combined output
	Err    error
}

func (e *SolverError) Error() string {
	return fmt.Sprintf("solver %s: %v", e.Path, e.Err)
}

// Unwrap returns ErrSolver and the process error.
func (e *SolverError) Unwrap() []error { return []error{ErrSolver, e.Err} }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	out := classifyError(err)

	// A wipe failure travels alongside whatever else went wrong.
	if errors.Is(err, scratch.ErrInsecureWipe) {
		out = fmt.Errorf("%w: %w", ErrInsecureWipe, out)
	}

	return out
}

func classifyError(err error) error {
	if errors.Is(err, tour.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if errors.Is(err, tour.ErrFormat) {
		return fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if errors.Is(err, tour.ErrInvalidTour) {
		return fmt.Errorf("%w: %w", ErrSolver, err)
	}
	if errors.Is(err, problem.ErrInvalidValue) || errors.Is(err, parameter.ErrInvalidValue) || errors.Is(err, parameter.ErrReservedKey) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return err
}
