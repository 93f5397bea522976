package tspio

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
)

// outputTail bounds how much solver output is kept for a SolverError.
const outputTail = 4096

// Runner starts the solver on a parameter file and blocks until it exits.
// On success the tour file named in the parameter file must exist.
type Runner interface {
	Run(ctx context.Context, parameterPath string) error
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context, parameterPath string) error

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, parameterPath string) error { return f(ctx, parameterPath) }

// ExecRunner runs `<Path> <parameterPath>` as a subprocess.
//
// The context is consulted only before the process starts. A running solver
// is neither timed out nor killed when ctx is canceled.
type ExecRunner struct {
	Path   string
	Logger *slog.Logger
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, parameterPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := r.Path
	if path == "" {
		path = DefaultSolverPath
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cmd := exec.Command(path, parameterPath) //nolint:gosec // solver path is configuration
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	logger.DebugContext(ctx, "starting solver", "path", path, "parameters", parameterPath)
	err := cmd.Run()
	logger.DebugContext(ctx, "solver exited", "path", path, "output_bytes", out.Len(), "error", err)

	if err != nil {
		tail := out.Bytes()
		if len(tail) > outputTail {
			tail = tail[len(tail)-outputTail:]
		}
		return &SolverError{Path: path, Output: string(tail), Err: err}
	}
	return nil
}
