package problem

import "errors"

var (
	// ErrStageOrder is returned when a section is written out of order through
	// a stale stage value.
	ErrStageOrder = errors.New("problem: section written out of order")

	// ErrFinished is returned by calls made after Finish or EOF.
	ErrFinished = errors.New("problem: encoder already finished")

	// ErrInvalidValue is returned for header values that would break the line format.
	ErrInvalidValue = errors.New("problem: header value contains a line break")
)
