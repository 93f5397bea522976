package tspio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/tspio/parameter"
	"github.com/hupe1980/tspio/problem"
	"github.com/hupe1980/tspio/scratch"
	"github.com/hupe1980/tspio/tour"
)

// Node is a 0-based node index.
type Node = problem.Node

// BuildFunc writes a problem through the typestate encoder and returns the
// sink from Finish or EOF.
type BuildFunc func(problem.Header[*scratch.File]) (*scratch.File, error)

// Solver runs problems through an external solver. It is safe for concurrent
// use; every call works on its own scratch files.
type Solver struct {
	opts options
}

// New creates a Solver.
func New(optFns ...Option) *Solver {
	return &Solver{opts: applyOptions(optFns)}
}

func (s *Solver) scratchOptions() []scratch.Option {
	return []scratch.Option{
		scratch.WithDir(s.opts.scratchDir),
		scratch.WithCapacity(s.opts.scratchCapacity),
		scratch.WithFS(s.opts.fs),
		scratch.WithLogger(s.opts.logger.Component("scratch")),
		scratch.WithController(s.opts.controller),
	}
}

// Solve encodes a problem with build, runs the solver and returns the tour.
//
// The problem and parameter files live in scratch files and the tour file is
// erased after reading, on every return path. A failed secure wipe is
// reported as ErrInsecureWipe; if the solve itself succeeded the Result is
// still returned alongside that error.
func (s *Solver) Solve(ctx context.Context, build BuildFunc) (*Result, error) {
	start := time.Now()

	res, err := s.solve(ctx, build)
	elapsed := time.Since(start)
	if res != nil {
		res.Elapsed = elapsed
	}

	err = translateError(err)
	if errors.Is(err, ErrInsecureWipe) {
		s.opts.metricsCollector.RecordWipeFailure()
	}

	var dim uint32
	if res != nil {
		dim = res.Dimension
	}
	s.opts.metricsCollector.RecordSolve(dim, elapsed, err)
	s.opts.logger.LogSolve(ctx, dim, elapsed, err)

	return res, err
}

func (s *Solver) solve(ctx context.Context, build BuildFunc) (res *Result, err error) {
	if build == nil {
		return nil, fmt.Errorf("%w: nil build function", ErrInvalidInput)
	}
	if err := s.opts.tunables.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.opts.controller.AcquireJob(ctx); err != nil {
		return nil, err
	}
	defer s.opts.controller.ReleaseJob()

	scratchOpts := s.scratchOptions()

	problemFile, err := scratch.Create("tsp", scratchOpts...)
	if err != nil {
		return nil, err
	}
	defer func() { err = errors.Join(err, problemFile.Close()) }()

	sink, err := build(problem.New(problemFile, problem.WithPool(s.opts.bufferPool)).Header())
	if err != nil {
		return nil, err
	}
	if sink != problemFile {
		return nil, fmt.Errorf("%w: build returned a different sink", ErrInvalidInput)
	}
	s.opts.metricsCollector.RecordScratch(problemFile.Len(), problemFile.Grows())
	s.opts.logger.LogEncode(ctx, problemFile.Path(), problemFile.Len(), problemFile.Grows())

	tourPath := scratch.TempPath(s.opts.scratchDir, "tour")
	defer func() { err = errors.Join(err, scratch.Erase(tourPath, scratchOpts...)) }()

	parameterFile, err := scratch.Create("par", scratchOpts...)
	if err != nil {
		return nil, err
	}
	defer func() { err = errors.Join(err, parameterFile.Close()) }()

	err = parameter.NewWriter(parameterFile).
		ProblemFile(problemFile.Path()).
		Tunables(s.opts.tunables).
		TourFile(tourPath).
		EOF()
	if err != nil {
		return nil, err
	}

	if err := s.opts.runner.Run(ctx, parameterFile.Path()); err != nil {
		return nil, err
	}

	data, err := tour.ReadFile(ctx, tourPath,
		tour.WithPool(s.opts.bufferPool),
		tour.WithController(s.opts.controller),
		tour.WithFS(s.opts.fs),
		tour.WithLogger(s.opts.logger.Component("tour")),
	)
	if err != nil {
		return nil, err
	}
	defer data.Release()

	p := data.Parser()
	dim, err := p.Dimension()
	var nodes []Node
	if err == nil {
		nodes, err = p.Tour()
	}
	s.opts.logger.LogParse(ctx, tourPath, dim, err)
	if err != nil {
		return nil, err
	}

	res = &Result{Dimension: dim, Tour: nodes, ProblemBytes: problemFile.Len()}
	if s.opts.validate {
		if err := validate(problemFile.Bytes(), res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// validate cross-checks the tour against the DIMENSION of the problem text.
func validate(problemText []byte, res *Result) error {
	expected, err := tour.NewParser(bytes.NewReader(problemText)).Dimension()
	if errors.Is(err, tour.ErrNotFound) {
		// No DIMENSION written; nothing to check against.
		return tour.Validate(res.Tour, res.Dimension)
	}
	if err != nil {
		return fmt.Errorf("%w: problem DIMENSION: %w", ErrInvalidInput, err)
	}
	if expected != res.Dimension {
		return &ErrDimensionMismatch{Expected: expected, Actual: res.Dimension, cause: ErrSolver}
	}
	return tour.Validate(res.Tour, expected)
}
