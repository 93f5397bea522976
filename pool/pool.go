// Package pool provides a bounded, caller-owned pool of reusable byte buffers.
//
// A Pool is handed to the components that format problem lines or read solver
// results. It holds at most Size idle buffers; Get never blocks and allocates
// a fresh buffer when the pool is empty, Put drops the buffer when the pool is
// full. Buffers may hold sensitive text, so Put zeroes the used bytes before
// the buffer becomes idle and Get always hands out an empty buffer.
//
// A nil *Pool is valid and simply allocates on every Get.
package pool

import (
	"bytes"
	"sync/atomic"
)

const (
	// DefaultSize is the number of idle buffers retained.
	DefaultSize = 3

	// DefaultBufferCapacity is the initial capacity of freshly allocated buffers.
	DefaultBufferCapacity = 4096

	// maxRetainedCapacity caps what is kept idle; larger buffers are dropped.
	maxRetainedCapacity = 1 << 24
)

// Pool is a bounded set of reusable buffers. It is safe for concurrent use.
type Pool struct {
	idle   chan *bytes.Buffer
	bufCap int

	hits   atomic.Int64
	misses atomic.Int64
	drops  atomic.Int64
}

// Stats is a snapshot of pool counters.
type Stats struct {
	Hits   int64 // Get served from an idle buffer
	Misses int64 // Get allocated a fresh buffer
	Drops  int64 // Put discarded a buffer (pool full or buffer too large)
	Idle   int   // idle buffers currently held
}

// New creates a pool holding up to size idle buffers of initial capacity bufCap.
// Non-positive arguments select DefaultSize and DefaultBufferCapacity.
func New(size, bufCap int) *Pool {
	if size <= 0 {
		size = DefaultSize
	}
	if bufCap <= 0 {
		bufCap = DefaultBufferCapacity
	}
	return &Pool{
		idle:   make(chan *bytes.Buffer, size),
		bufCap: bufCap,
	}
}

// Get returns an empty buffer. It never blocks.
func (p *Pool) Get() *bytes.Buffer {
	if p == nil {
		return bytes.NewBuffer(make([]byte, 0, DefaultBufferCapacity))
	}
	select {
	case b := <-p.idle:
		p.hits.Add(1)
		b.Reset()
		return b
	default:
		p.misses.Add(1)
		return bytes.NewBuffer(make([]byte, 0, p.bufCap))
	}
}

// Put zeroes b and returns it to the pool. A full pool drops b.
func (p *Pool) Put(b *bytes.Buffer) {
	if b == nil {
		return
	}
	Zero(b)
	if p == nil {
		return
	}
	if b.Cap() > maxRetainedCapacity {
		p.drops.Add(1)
		return
	}
	select {
	case p.idle <- b:
	default:
		p.drops.Add(1)
	}
}

// Stats returns a snapshot of the pool counters.
func (p *Pool) Stats() Stats {
	if p == nil {
		return Stats{}
	}
	return Stats{
		Hits:   p.hits.Load(),
		Misses: p.misses.Load(),
		Drops:  p.drops.Load(),
		Idle:   len(p.idle),
	}
}

// Zero overwrites the written bytes of b and empties it.
func Zero(b *bytes.Buffer) {
	clear(b.Bytes())
	b.Reset()
}
