package tspio

import (
	"log/slog"

	"github.com/hupe1980/tspio/internal/fs"
	"github.com/hupe1980/tspio/parameter"
	"github.com/hupe1980/tspio/pool"
	"github.com/hupe1980/tspio/resource"
)

// DefaultSolverPath is the executable run when no path or runner is configured.
const DefaultSolverPath = "LKH"

type options struct {
	solverPath       string
	runner           Runner
	tunables         parameter.Tunables
	scratchDir       string
	scratchCapacity  int
	bufferPool       *pool.Pool
	metricsCollector MetricsCollector
	logger           *Logger
	controller       *resource.Controller
	validate         bool
	fs               fs.FileSystem
}

// Option configures a Solver.
type Option func(*options)

// WithSolverPath sets the solver executable. It is looked up in PATH when it
// contains no separator. Ignored when WithRunner is used.
func WithSolverPath(path string) Option {
	return func(o *options) {
		o.solverPath = path
	}
}

// WithRunner replaces the subprocess runner, e.g. to run the solver in a
// container or to fake it in tests.
func WithRunner(r Runner) Option {
	return func(o *options) {
		o.runner = r
	}
}

// WithTunables sets the solver settings written between PROBLEM_FILE and
// TOUR_FILE. They replace DefaultTunables entirely.
//
// Example loading them from YAML:
//
//	f, _ := os.Open("lkh.yaml")
//	t, err := parameter.LoadYAML(f)
//	s := tspio.New(tspio.WithTunables(t))
func WithTunables(t parameter.Tunables) Option {
	return func(o *options) {
		o.tunables = t
	}
}

// WithScratchDir places problem, parameter and tour files in dir instead of
// os.TempDir(). A RAM-backed directory keeps the staged geometry off disk.
func WithScratchDir(dir string) Option {
	return func(o *options) {
		o.scratchDir = dir
	}
}

// WithScratchCapacity sets the initial capacity of scratch files. Larger
// problems grow by doubling.
func WithScratchCapacity(capacity int) Option {
	return func(o *options) {
		o.scratchCapacity = capacity
	}
}

// WithBufferPool shares a caller-owned buffer pool for line formatting and
// tour reading.
func WithBufferPool(p *pool.Pool) Option {
	return func(o *options) {
		o.bufferPool = p
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
//	metrics := &tspio.BasicMetricsCollector{}
//	s := tspio.New(tspio.WithMetricsCollector(metrics))
//	// ... solve ...
//	stats := metrics.GetStats()
//	fmt.Printf("Solves: %d, Avg latency: %dns\n", stats.SolveCount, stats.SolveAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
//	logger := tspio.NewJSONLogger(slog.LevelInfo)
//	s := tspio.New(tspio.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithResourceController bounds scratch capacity, concurrent solver processes
// and tour read throughput. The controller may be shared between solvers.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithValidation toggles checking the returned tour against the submitted
// problem: matching DIMENSION and every node visited exactly once.
// Enabled by default.
func WithValidation(enabled bool) Option {
	return func(o *options) {
		o.validate = enabled
	}
}

func withFS(fsys fs.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		solverPath:       DefaultSolverPath,
		tunables:         parameter.DefaultTunables(),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		validate:         true,
		fs:               fs.Default,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.fs == nil {
		o.fs = fs.Default
	}
	if o.runner == nil {
		o.runner = &ExecRunner{Path: o.solverPath, Logger: o.logger.Component("runner")}
	}
	return o
}
