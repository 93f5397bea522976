// Package resource implements the Controller that bounds what concurrent
// solver jobs may consume.
//
// Three resources are governed:
//
//   - Scratch: bytes of memory-mapped scratch capacity (non-blocking, fail-fast)
//   - Jobs: concurrently running solver subprocesses (blocking semaphore)
//   - IO: read throughput for solver result files (token bucket)
//
// # Scratch Budget
//
//	rc := resource.NewController(resource.Config{
//	    ScratchLimitBytes: 64 << 20,
//	})
//
//	if err := rc.AcquireScratch(4096); err != nil {
//	    // ErrScratchLimitExceeded - the job fails rather than waits
//	}
//	defer rc.ReleaseScratch(4096)
//
// # Job Slots
//
//	if err := rc.AcquireJob(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseJob()
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
