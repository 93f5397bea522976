package scratch

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hupe1980/tspio/internal/fs"
	"github.com/hupe1980/tspio/internal/mmap"
)

const (
	namePrefix = "tsp_"

	// createAttempts bounds retries on the (practically impossible) name collision.
	createAttempts = 3
)

// File is a memory-mapped scratch file. See the package documentation.
type File struct {
	opts options

	path   string
	ext    string
	cursor int
	grows  int

	file   fs.File
	region *mmap.Mapping
	closed bool

	// retireErr holds wipe failures of files replaced while growing inside
	// Write, until Close.
	retireErr error
}

// TempPath returns a fresh collision-resistant path in dir with extension ext.
// The file is not created.
func TempPath(dir, ext string) string {
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, namePrefix+rand.Text()+".tmp."+ext)
}

// Create allocates a zero-filled scratch file with extension ext and maps it
// read-write.
func Create(ext string, optFns ...Option) (*File, error) {
	opts := applyOptions(optFns)

	if err := opts.controller.AcquireScratch(int64(opts.capacity)); err != nil {
		return nil, fmt.Errorf("scratch: reserve %d bytes: %w", opts.capacity, err)
	}

	path, file, region, err := allocate(opts, ext, opts.capacity)
	if err != nil {
		opts.controller.ReleaseScratch(int64(opts.capacity))
		return nil, err
	}

	opts.logger.Debug("scratch file created", "path", path, "capacity", opts.capacity)

	return &File{
		opts:   opts,
		path:   path,
		ext:    ext,
		file:   file,
		region: region,
	}, nil
}

// allocate creates, sizes, maps and zero-fills a new file at a random path.
func allocate(opts options, ext string, capacity int) (string, fs.File, *mmap.Mapping, error) {
	var (
		path string
		file fs.File
		err  error
	)
	for range createAttempts {
		path = TempPath(opts.dir, ext)
		file, err = opts.fs.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o600)
		if !errors.Is(err, os.ErrExist) {
			break
		}
	}
	if err != nil {
		return "", nil, nil, fmt.Errorf("scratch: create: %w", err)
	}

	abandon := func(cause error) (string, fs.File, *mmap.Mapping, error) {
		_ = file.Close()
		_ = opts.fs.Remove(path)
		return "", nil, nil, cause
	}

	if err := file.Truncate(int64(capacity)); err != nil {
		return abandon(fmt.Errorf("scratch: size %s to %d: %w", path, capacity, err))
	}

	region, err := mmap.Map(file, capacity, mmap.ReadWrite)
	if err != nil {
		return abandon(fmt.Errorf("scratch: map %s: %w", path, err))
	}

	clear(region.Bytes())
	_ = region.Advise(mmap.AccessSequential)

	return path, file, region, nil
}

// Path returns the current backing path. It changes when the file grows.
func (f *File) Path() string { return f.path }

// Extension returns the extension the file was created with.
func (f *File) Extension() string { return f.ext }

// Len returns the number of bytes written (the cursor).
func (f *File) Len() int { return f.cursor }

// Cap returns the mapped capacity in bytes.
func (f *File) Cap() int { return f.region.Len() }

// Grows returns how many times the file has doubled.
func (f *File) Grows() int { return f.grows }

// Bytes returns a view of the written prefix.
// The view is invalidated by Write, Grow, Wipe and Close.
func (f *File) Bytes() []byte {
	if f.closed {
		return nil
	}
	return f.region.Bytes()[:f.cursor]
}

// String returns a copy of the written prefix.
func (f *File) String() string {
	return string(f.Bytes())
}

// Write appends p at the cursor, doubling capacity as often as needed first.
// A failure to wipe a file retired by growing does not stop the write; it is
// returned by Close.
func (f *File) Write(p []byte) (int, error) {
	if f.closed {
		return 0, ErrClosed
	}
	if err := f.reserve(len(p)); err != nil {
		return 0, err
	}
	n := copy(f.region.Bytes()[f.cursor:], p)
	f.cursor += n
	return n, nil
}

// WriteString appends s at the cursor.
func (f *File) WriteString(s string) (int, error) {
	if f.closed {
		return 0, ErrClosed
	}
	if err := f.reserve(len(s)); err != nil {
		return 0, err
	}
	n := copy(f.region.Bytes()[f.cursor:], s)
	f.cursor += n
	return n, nil
}

func (f *File) reserve(n int) error {
	for f.cursor+n > f.Cap() {
		retireErr, err := f.grow()
		if err != nil {
			return err
		}
		f.retireErr = errors.Join(f.retireErr, retireErr)
	}
	return nil
}

// Grow doubles the capacity. The written prefix moves to a new file at a new
// path; the old file is wiped and deleted. A *WipeError from retiring the old
// file is returned after the new file has been adopted.
func (f *File) Grow() error {
	if f.closed {
		return ErrClosed
	}
	retireErr, err := f.grow()
	if err != nil {
		return err
	}
	return retireErr
}

// grow reports a failure to move to a bigger file as err; the file is then
// unchanged. retireErr is set when the move succeeded but the old file could
// not be released cleanly.
func (f *File) grow() (retireErr, err error) {
	oldCap := f.Cap()
	newCap := oldCap * 2

	if err := f.opts.controller.AcquireScratch(int64(newCap)); err != nil {
		return nil, fmt.Errorf("scratch: reserve %d bytes: %w", newCap, err)
	}

	path, file, region, err := allocate(f.opts, f.ext, newCap)
	if err != nil {
		f.opts.controller.ReleaseScratch(int64(newCap))
		return nil, err
	}
	copy(region.Bytes(), f.region.Bytes()[:f.cursor])

	oldPath, oldFile, oldRegion := f.path, f.file, f.region
	f.path, f.file, f.region = path, file, region
	f.grows++

	retireErr = release(f.opts, oldPath, oldFile, oldRegion)
	f.opts.controller.ReleaseScratch(int64(oldCap))

	f.opts.logger.Debug("scratch file grown", "path", f.path, "from", oldCap, "to", newCap, "cursor", f.cursor)

	return retireErr, nil
}

// Wipe zeroes the cursor and the whole region, then forces the zeros through
// to the backing file. The file stays usable (empty) afterwards.
func (f *File) Wipe() error {
	if f.closed {
		return ErrClosed
	}
	f.cursor = 0
	return wipe(f.path, f.file, f.region)
}

// Close wipes and deletes the file and releases the mapping. The file is
// removed even when the wipe fails; all failures are joined, including those
// held back from growing during Write. Close is idempotent.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	f.cursor = 0
	capacity := f.region.Len()

	err := release(f.opts, f.path, f.file, f.region)
	f.opts.controller.ReleaseScratch(int64(capacity))
	if err == nil {
		f.opts.logger.Debug("scratch file released", "path", f.path)
	}

	err = errors.Join(f.retireErr, err)
	f.retireErr = nil
	return err
}

func wipe(path string, file fs.File, region *mmap.Mapping) error {
	clear(region.Bytes())
	if err := region.Sync(); err != nil {
		return &WipeError{Path: path, Err: err}
	}
	if err := file.Sync(); err != nil {
		return &WipeError{Path: path, Err: err}
	}
	return nil
}

// release wipes, unmaps, closes and removes. Removal is attempted regardless
// of earlier failures.
func release(opts options, path string, file fs.File, region *mmap.Mapping) error {
	var errs []error

	if err := wipe(path, file, region); err != nil {
		opts.logger.Error("secure wipe failed, verify the file is gone", "path", path, "error", err)
		errs = append(errs, err)
	}
	if err := region.Close(); err != nil {
		errs = append(errs, fmt.Errorf("scratch: unmap %s: %w", path, err))
	}
	if err := file.Close(); err != nil {
		errs = append(errs, fmt.Errorf("scratch: close %s: %w", path, err))
	}
	if err := opts.fs.Remove(path); err != nil {
		opts.logger.Error("scratch file not removed", "path", path, "error", err)
		errs = append(errs, fmt.Errorf("scratch: remove %s: %w", path, err))
	}

	return errors.Join(errs...)
}

// Erase wipes and deletes a file this package did not create, such as the
// tour file written by the solver. A missing file is not an error.
func Erase(path string, optFns ...Option) error {
	opts := applyOptions(optFns)

	file, err := opts.fs.OpenFile(path, os.O_RDWR, 0)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		// Still try to unlink; an unreadable file is better gone.
		if rmErr := opts.fs.Remove(path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			return errors.Join(fmt.Errorf("scratch: open %s: %w", path, err), rmErr)
		}
		return fmt.Errorf("scratch: open %s: %w", path, err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return errors.Join(fmt.Errorf("scratch: stat %s: %w", path, err), removeQuiet(opts, path))
	}

	if info.Size() == 0 {
		return errors.Join(file.Close(), removeQuiet(opts, path))
	}

	region, err := mmap.Map(file, int(info.Size()), mmap.ReadWrite)
	if err != nil {
		_ = file.Close()
		return errors.Join(fmt.Errorf("scratch: map %s: %w", path, err), removeQuiet(opts, path))
	}

	return release(opts, path, file, region)
}

func removeQuiet(opts options, path string) error {
	if err := opts.fs.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		opts.logger.Error("scratch file not removed", "path", path, "error", err)
		return fmt.Errorf("scratch: remove %s: %w", path, err)
	}
	return nil
}

var (
	_ io.Writer       = (*File)(nil)
	_ io.StringWriter = (*File)(nil)
)
