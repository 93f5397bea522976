package scratch

import (
	"log/slog"
	"os"

	"github.com/hupe1980/tspio/internal/fs"
	"github.com/hupe1980/tspio/resource"
)

// DefaultCapacity is the initial mapped size of a scratch file.
const DefaultCapacity = 4096

type options struct {
	dir        string
	capacity   int
	fs         fs.FileSystem
	logger     *slog.Logger
	controller *resource.Controller
}

// Option configures scratch file creation.
type Option func(*options)

// WithDir places scratch files in dir instead of os.TempDir().
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

// WithCapacity sets the initial capacity. Non-positive values select DefaultCapacity.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

// WithFS swaps the filesystem implementation (fault injection in tests).
func WithFS(fsys fs.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithLogger configures where wipe and removal failures are reported.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithController accounts mapped capacity against the controller's scratch budget.
func WithController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		dir:      os.TempDir(),
		capacity: DefaultCapacity,
		fs:       fs.Default,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.capacity <= 0 {
		o.capacity = DefaultCapacity
	}
	if o.dir == "" {
		o.dir = os.TempDir()
	}
	if o.fs == nil {
		o.fs = fs.Default
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}
