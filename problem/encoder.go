package problem

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/tspio/pool"
)

type stage int

const (
	stageProblem stage = iota
	stageHeader
	stageCoordinates
	stageEdgeData
	stageFixedEdges
	stageDone
)

var stageNames = [...]string{"problem", "header", "coordinates", "edge data", "fixed edges", "done"}

func (s stage) String() string { return stageNames[s] }

// encoder is the state shared by all stages of one problem.
type encoder[W io.Writer] struct {
	w       W
	err     error
	stage   stage
	line    *bytes.Buffer
	pool    *pool.Pool
	written int64
}

// Option configures a Problem.
type Option func(*config)

type config struct {
	pool *pool.Pool
}

// WithPool draws the line buffer from p instead of allocating one.
func WithPool(p *pool.Pool) Option {
	return func(c *config) {
		c.pool = p
	}
}

// at reports whether a call made from stage s may write.
func (e *encoder[W]) at(s stage) bool {
	if e.err != nil {
		return false
	}
	if e.stage != s {
		if e.stage == stageDone {
			e.err = ErrFinished
		} else {
			e.err = fmt.Errorf("%w: %s call after %s section began", ErrStageOrder, s, e.stage)
		}
		return false
	}
	return true
}

// advance moves from stage from to stage to.
func (e *encoder[W]) advance(from, to stage) {
	if e.at(from) {
		e.stage = to
	}
}

// flush writes the pending line to the sink.
func (e *encoder[W]) flush() {
	if e.err == nil {
		n, err := e.w.Write(e.line.Bytes())
		e.written += int64(n)
		e.err = err
	}
	e.line.Reset()
}

func (e *encoder[W]) literal(s stage, text string) {
	if !e.at(s) {
		return
	}
	e.line.WriteString(text)
	e.line.WriteByte('\n')
	e.flush()
}

func (e *encoder[W]) keyword(key, value string) {
	if !e.at(stageHeader) {
		return
	}
	if strings.ContainsAny(value, "\r\n") {
		e.err = fmt.Errorf("%w: %s", ErrInvalidValue, key)
		return
	}
	e.line.WriteString(key)
	e.line.WriteString(": ")
	e.line.WriteString(value)
	e.line.WriteByte('\n')
	e.flush()
}

func (e *encoder[W]) appendUint(v uint64) {
	e.line.Write(strconv.AppendUint(e.line.AvailableBuffer(), v, 10))
}

func (e *encoder[W]) appendFloat(v float32) {
	e.line.Write(strconv.AppendFloat(e.line.AvailableBuffer(), float64(v), 'e', 10, 32))
}

// finish returns the sink and the first error; later calls see ErrFinished.
func (e *encoder[W]) finish(s stage) (W, error) {
	if e.at(s) {
		e.stage = stageDone
	}
	err := e.err
	if e.line != nil {
		e.pool.Put(e.line)
		e.line = nil
	}
	if e.err == nil {
		e.err = ErrFinished
	}
	return e.w, err
}

func (e *encoder[W]) eof(s stage) (W, error) {
	e.literal(s, "EOF")
	return e.finish(s)
}

// Problem is the entry point of the builder.
type Problem[W io.Writer] struct {
	e *encoder[W]
}

// New starts a problem that writes to w.
func New[W io.Writer](w W, opts ...Option) Problem[W] {
	var cfg config
	for _, fn := range opts {
		if fn != nil {
			fn(&cfg)
		}
	}
	return Problem[W]{e: &encoder[W]{
		w:    w,
		line: cfg.pool.Get(),
		pool: cfg.pool,
	}}
}

// Header begins the specification part.
func (p Problem[W]) Header() Header[W] {
	p.e.advance(stageProblem, stageHeader)
	return Header[W]{e: p.e}
}

// Written returns the number of bytes handed to the sink so far.
func (p Problem[W]) Written() int64 { return p.e.written }
