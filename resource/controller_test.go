package resource

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Scratch(t *testing.T) {
	c := NewController(Config{ScratchLimitBytes: 100})

	// Acquire 50
	require.NoError(t, c.AcquireScratch(50))
	assert.Equal(t, int64(50), c.ScratchUsage())

	// Acquire 40
	require.NoError(t, c.AcquireScratch(40))
	assert.Equal(t, int64(90), c.ScratchUsage())

	// Acquire 20 fails fast
	assert.ErrorIs(t, c.AcquireScratch(20), ErrScratchLimitExceeded)
	assert.Equal(t, int64(90), c.ScratchUsage())

	// Release 50, then 20 fits
	c.ReleaseScratch(50)
	require.NoError(t, c.AcquireScratch(20))
	assert.Equal(t, int64(60), c.ScratchUsage())
	assert.Equal(t, int64(100), c.ScratchLimit())
}

func TestController_UnlimitedScratch(t *testing.T) {
	c := NewController(Config{})

	require.NoError(t, c.AcquireScratch(1<<40))
	c.ReleaseScratch(1 << 39)
	assert.Equal(t, int64(1<<39), c.ScratchUsage())
	assert.Equal(t, int64(0), c.ScratchLimit())
}

func TestController_Jobs(t *testing.T) {
	c := NewController(Config{MaxConcurrentJobs: 2})
	assert.Equal(t, 2, c.MaxConcurrentJobs())

	require.NoError(t, c.AcquireJob(context.Background()))
	require.NoError(t, c.AcquireJob(context.Background()))
	assert.False(t, c.TryAcquireJob())

	// Blocked acquire honors the context
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.AcquireJob(ctx), context.DeadlineExceeded)

	c.ReleaseJob()
	assert.True(t, c.TryAcquireJob())
}

func TestController_NilIsNoop(t *testing.T) {
	var c *Controller

	assert.NoError(t, c.AcquireScratch(10))
	c.ReleaseScratch(10)
	assert.Zero(t, c.ScratchUsage())
	assert.NoError(t, c.AcquireJob(context.Background()))
	assert.True(t, c.TryAcquireJob())
	c.ReleaseJob()
	assert.Equal(t, 1, c.MaxConcurrentJobs())
	assert.NoError(t, c.AcquireIO(context.Background(), 1<<20))
}

func TestRateLimitedReader(t *testing.T) {
	c := NewController(Config{IOLimitBytesPerSec: 1 << 20})
	payload := bytes.Repeat([]byte("x"), 3<<20)

	// Larger than one burst: split into burst-sized waits, never an error
	r := NewRateLimitedReader(context.Background(), bytes.NewReader(payload[:1<<20]), c)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Len(t, got, 1<<20)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r = NewRateLimitedReader(ctx, bytes.NewReader(payload), c)
	_, err = io.ReadAll(r)
	assert.Error(t, err)
}
