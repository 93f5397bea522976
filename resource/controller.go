package resource

import (
	"context"
	"errors"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrScratchLimitExceeded is returned when the scratch budget would be exceeded.
var ErrScratchLimitExceeded = errors.New("scratch limit exceeded")

// Config holds resource limits.
type Config struct {
	// ScratchLimitBytes is the hard limit for mapped scratch capacity across jobs.
	// If 0, no hard limit is enforced (only tracking).
	ScratchLimitBytes int64

	// MaxConcurrentJobs is the maximum number of solver processes running at once.
	// If 0, defaults to 1.
	MaxConcurrentJobs int64

	// IOLimitBytesPerSec is the maximum read throughput for result files.
	// If 0, unlimited.
	IOLimitBytesPerSec int64
}

// Controller manages shared resources (scratch memory, job slots, IO).
type Controller struct {
	cfg Config

	// Scratch
	scratchSem  *semaphore.Weighted // nil if unlimited
	scratchUsed atomic.Int64

	// Concurrency
	jobSem *semaphore.Weighted

	// IO
	ioLimiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxConcurrentJobs <= 0 {
		cfg.MaxConcurrentJobs = 1
	}

	c := &Controller{
		cfg:    cfg,
		jobSem: semaphore.NewWeighted(cfg.MaxConcurrentJobs),
	}

	if cfg.ScratchLimitBytes > 0 {
		c.scratchSem = semaphore.NewWeighted(cfg.ScratchLimitBytes)
	}

	if cfg.IOLimitBytesPerSec > 0 {
		c.ioLimiter = rate.NewLimiter(rate.Limit(cfg.IOLimitBytesPerSec), int(cfg.IOLimitBytesPerSec))
	}

	return c
}

// AcquireScratch reserves scratch capacity.
// Returns ErrScratchLimitExceeded if the limit would be exceeded.
// Non-blocking - a scratch file that cannot grow fails its write.
func (c *Controller) AcquireScratch(bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}

	if c.scratchSem != nil {
		if !c.scratchSem.TryAcquire(bytes) {
			return ErrScratchLimitExceeded
		}
	}

	c.scratchUsed.Add(bytes)
	return nil
}

// ReleaseScratch releases reserved scratch capacity.
func (c *Controller) ReleaseScratch(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}

	if c.scratchSem != nil {
		c.scratchSem.Release(bytes)
	}
	c.scratchUsed.Add(-bytes)
}

// ScratchUsage returns the scratch capacity currently reserved.
func (c *Controller) ScratchUsage() int64 {
	if c == nil {
		return 0
	}
	return c.scratchUsed.Load()
}

// ScratchLimit returns the configured scratch limit in bytes (0 if unlimited).
func (c *Controller) ScratchLimit() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.ScratchLimitBytes
}

// AcquireJob reserves a job slot, blocking while all slots are busy.
func (c *Controller) AcquireJob(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.jobSem.Acquire(ctx, 1)
}

// TryAcquireJob reserves a job slot without blocking.
func (c *Controller) TryAcquireJob() bool {
	if c == nil {
		return true
	}
	return c.jobSem.TryAcquire(1)
}

// ReleaseJob releases a job slot.
func (c *Controller) ReleaseJob() {
	if c == nil {
		return
	}
	c.jobSem.Release(1)
}

// MaxConcurrentJobs returns the number of job slots.
func (c *Controller) MaxConcurrentJobs() int {
	if c == nil {
		return 1
	}
	return int(c.cfg.MaxConcurrentJobs)
}

// AcquireIO waits until the IO limit allows the specified number of bytes.
// Requests larger than the bucket are split into burst-sized waits.
func (c *Controller) AcquireIO(ctx context.Context, bytes int) error {
	if c == nil || c.ioLimiter == nil {
		return nil
	}
	burst := c.ioLimiter.Burst()
	for bytes > 0 {
		n := min(bytes, burst)
		if err := c.ioLimiter.WaitN(ctx, n); err != nil {
			return err
		}
		bytes -= n
	}
	return nil
}
