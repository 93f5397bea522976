package tspio

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/tspio/problem"
	"github.com/hupe1980/tspio/scratch"
)

// coordinateScale turns the caller's units into the integer-rounded EUC_2D
// distances the solver works with at a useful resolution.
const coordinateScale = 100

// Segment is a pair of endpoints that must be traversed together.
type Segment = [2][2]float32

// SolveToolpath orders segments so that travel between them is short.
//
// Segment i becomes nodes 2i and 2i+1 (0-based), joined by a fixed edge, so
// the returned tour visits both endpoints of a segment back to back.
func (s *Solver) SolveToolpath(ctx context.Context, segments []Segment) (*Result, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: no segments", ErrInvalidInput)
	}
	if uint64(len(segments))*2 > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d segments exceed the node range", ErrInvalidInput, len(segments))
	}
	for i, seg := range segments {
		for _, p := range seg {
			for _, v := range p {
				if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
					return nil, fmt.Errorf("%w: segment %d has a non-finite coordinate", ErrInvalidInput, i)
				}
			}
		}
	}

	n := uint32(len(segments))

	return s.Solve(ctx, func(h problem.Header[*scratch.File]) (*scratch.File, error) {
		return h.
			Type(problem.TSP).
			Dimension(2 * n).
			EdgeWeightType(problem.Euc2D).
			EdgeDataFormat(problem.AdjList).
			Coordinates().
			BeginNodeCoordinates().
			WriteCoordinates(endpoints(segments)).
			EdgeData().
			FixedEdges().
			BeginFixedEdges().
			WriteFixedEdges(segmentEdges(n)).
			EndFixedEdges().
			EOF()
	})
}

// endpoints yields both endpoints of every segment, scaled.
func endpoints(segments []Segment) func(yield func([]float32) bool) {
	return func(yield func([]float32) bool) {
		var p [2]float32
		for _, seg := range segments {
			for _, e := range seg {
				p[0], p[1] = coordinateScale*e[0], coordinateScale*e[1]
				if !yield(p[:]) {
					return
				}
			}
		}
	}
}

// segmentEdges yields (2i-1, 2i) for i in 1..n. The fixed edge section is
// written verbatim, so the pairs are already 1-based.
func segmentEdges(n uint32) func(yield func(problem.Edge) bool) {
	return func(yield func(problem.Edge) bool) {
		for i := uint32(1); i <= n; i++ {
			if !yield(problem.Edge{2*i - 1, 2 * i}) {
				return
			}
		}
	}
}

// SolveBatch solves independent toolpaths concurrently. Concurrency follows
// the resource controller's job slots, or GOMAXPROCS without one. The first
// error cancels jobs that have not started yet; results keep input order.
func (s *Solver) SolveBatch(ctx context.Context, jobs [][]Segment) ([]*Result, error) {
	start := time.Now()
	results := make([]*Result, len(jobs))

	limit := runtime.GOMAXPROCS(0)
	if s.opts.controller != nil {
		limit = s.opts.controller.MaxConcurrentJobs()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, job := range jobs {
		g.Go(func() error {
			js := &Solver{opts: s.opts}
			js.opts.logger = s.opts.logger.WithJob(i)

			res, err := js.SolveToolpath(gctx, job)
			if err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	err := g.Wait()

	failed := 0
	for _, r := range results {
		if r == nil {
			failed++
		}
	}
	s.opts.metricsCollector.RecordBatch(len(jobs), failed, time.Since(start))
	s.opts.logger.LogBatch(ctx, len(jobs), failed)

	return results, err
}
