package mmap

import (
	"sync/atomic"
)

// Descriptor is anything that exposes an OS file descriptor, such as *os.File.
type Descriptor interface {
	Fd() uintptr
}

// Mapping represents a memory-mapped file region.
// It owns the underlying byte slice and is responsible for unmapping it.
type Mapping struct {
	data   []byte
	mode   Mode
	closed atomic.Bool
	// unmap and flush are the platform-specific release and write-through functions.
	unmap func([]byte) error
	flush func([]byte) error
}

// Map maps the first size bytes of f into memory.
// The file must already be at least size bytes long.
func Map(f Descriptor, size int, mode Mode) (*Mapping, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	data, unmap, flush, err := osMap(f.Fd(), size, mode)
	if err != nil {
		return nil, err
	}

	return &Mapping{
		data:  data,
		mode:  mode,
		unmap: unmap,
		flush: flush,
	}, nil
}

// Close unmaps the memory. It is idempotent.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil // Already closed
	}
	data := m.data
	m.data = nil
	if m.unmap != nil && data != nil {
		return m.unmap(data)
	}
	return nil
}

// Bytes returns the underlying byte slice.
// Warning: The slice is valid only until Close() is called.
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Len returns the size of the mapping in bytes, or 0 once closed.
func (m *Mapping) Len() int {
	if m.closed.Load() {
		return 0
	}
	return len(m.data)
}

// Sync synchronously writes dirty pages back to the mapped file.
// It does not return until the kernel has scheduled and completed the write.
func (m *Mapping) Sync() error {
	if m.closed.Load() {
		return ErrClosed
	}
	if m.mode != ReadWrite {
		return ErrReadOnly
	}
	return m.flush(m.data)
}

// Advise provides hints to the kernel about how the memory will be accessed.
func (m *Mapping) Advise(pattern AccessPattern) error {
	if m.closed.Load() {
		return ErrClosed
	}
	return osAdvise(m.data, pattern)
}
