package tour

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/hupe1980/tspio/internal/fs"
	"github.com/hupe1980/tspio/pool"
	"github.com/hupe1980/tspio/resource"
)

// Option configures ReadFile.
type Option func(*options)

type options struct {
	pool       *pool.Pool
	controller *resource.Controller
	fs         fs.FileSystem
	logger     *slog.Logger
}

// WithPool reads into a buffer drawn from p.
func WithPool(p *pool.Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithController throttles the read with the controller's IO limiter.
func WithController(rc *resource.Controller) Option {
	return func(o *options) {
		o.controller = rc
	}
}

// WithFS swaps the filesystem implementation.
func WithFS(fsys fs.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Data is the content of a tour file held in memory.
type Data struct {
	path string
	buf  *bytes.Buffer
	pool *pool.Pool
}

// ReadFile reads the whole file at path.
// The caller must call Release when done with the data.
func ReadFile(ctx context.Context, path string, optFns ...Option) (*Data, error) {
	o := options{fs: fs.Default, logger: slog.New(slog.DiscardHandler)}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	f, err := o.fs.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("tour: open %s: %w", path, err)
	}
	defer f.Close()

	buf := o.pool.Get()
	if _, err := buf.ReadFrom(resource.NewRateLimitedReader(ctx, f, o.controller)); err != nil {
		o.pool.Put(buf)
		return nil, fmt.Errorf("tour: read %s: %w", path, err)
	}

	o.logger.Debug("tour file read", "path", path, "bytes", buf.Len())

	return &Data{path: path, buf: buf, pool: o.pool}, nil
}

// Path returns the path the data was read from.
func (d *Data) Path() string { return d.path }

// Len returns the size of the data in bytes.
func (d *Data) Len() int {
	if d.buf == nil {
		return 0
	}
	return d.buf.Len()
}

// Parser returns a new parser positioned at the start of the data.
func (d *Data) Parser() *Parser {
	if d.buf == nil {
		return NewParser(bytes.NewReader(nil))
	}
	return NewParser(bytes.NewReader(d.buf.Bytes()))
}

// Release zeroes the buffer and returns it to the pool. Parsers obtained
// earlier must not be used afterwards.
func (d *Data) Release() {
	if d.buf == nil {
		return
	}
	d.pool.Put(d.buf)
	d.buf = nil
}
