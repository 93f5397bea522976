package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_ReuseAndStats(t *testing.T) {
	p := New(2, 64)

	a := p.Get()
	a.WriteString("secret coordinates")
	backing := a.Bytes()[:a.Len()]
	p.Put(a)

	// Zeroed on Put, even though the buffer is idle
	for _, c := range backing {
		require.Zero(t, c)
	}

	b := p.Get()
	assert.Same(t, a, b)
	assert.Equal(t, 0, b.Len())

	stats := p.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 0, stats.Idle)
}

func TestPool_ExhaustionAllocates(t *testing.T) {
	p := New(1, 16)

	a := p.Get()
	b := p.Get()
	assert.NotSame(t, a, b)
	assert.Equal(t, int64(2), p.Stats().Misses)

	p.Put(a)
	p.Put(b) // pool full
	stats := p.Stats()
	assert.Equal(t, int64(1), stats.Drops)
	assert.Equal(t, 1, stats.Idle)
}

func TestPool_Nil(t *testing.T) {
	var p *Pool

	b := p.Get()
	require.NotNil(t, b)
	b.WriteString("x")
	p.Put(b)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, Stats{}, p.Stats())
}

func TestPool_Defaults(t *testing.T) {
	p := New(0, 0)
	assert.Equal(t, DefaultSize, cap(p.idle))
	assert.Equal(t, DefaultBufferCapacity, p.Get().Cap())
}

func TestPool_Concurrent(t *testing.T) {
	p := New(3, 32)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				b := p.Get()
				b.WriteString("NODE_COORD_SECTION")
				p.Put(b)
			}
		}()
	}
	wg.Wait()

	stats := p.Stats()
	assert.Equal(t, int64(1600), stats.Hits+stats.Misses)
	assert.LessOrEqual(t, stats.Idle, 3)
}
