// Package tspio prepares problems for an external LKH-style route solver,
// runs it and reads back the tour.
//
// Everything handed to the solver passes through files, and those files hold
// the caller's geometry. tspio therefore stages them in memory-mapped scratch
// files that are zeroed and deleted when released, and erases the solver's
// tour file right after reading it.
//
// # Quick Start
//
//	s := tspio.New(tspio.WithSolverPath("/usr/local/bin/LKH"))
//
//	res, err := s.SolveToolpath(ctx, []tspio.Segment{
//	    {{0, 0}, {1, 0}},
//	    {{0, 1}, {1, 1}},
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Tour) // e.g. [0 1 3 2]
//
// # Custom Problems
//
// Solve accepts any problem written through the typestate encoder. The
// sections can only be written in file order:
//
//	res, err := s.Solve(ctx, func(h problem.Header[*scratch.File]) (*scratch.File, error) {
//	    return h.
//	        Type(problem.TSP).
//	        Dimension(uint32(len(points))).
//	        EdgeWeightType(problem.Euc2D).
//	        Coordinates().
//	        BeginNodeCoordinates().
//	        WriteCoordinates(seq).
//	        EOF()
//	})
//
// # Solver Settings
//
// Tunables are written between PROBLEM_FILE and TOUR_FILE and may be loaded
// from YAML with parameter.LoadYAML. The default is POPULATION_SIZE = 256.
//
// # Errors
//
//   - ErrSolver: the process failed, or its tour is not a permutation
//   - ErrNotFound, ErrFormat: the tour file is incomplete or malformed
//   - ErrInsecureWipe: a scratch file was deleted but not verifiably zeroed
//   - ErrInvalidInput: the problem could not be encoded
//
// The solver process is not cancellable: the context is honored up to the
// moment it starts and again while reading its output.
package tspio
