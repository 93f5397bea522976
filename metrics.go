package tspio

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    solveCounter   prometheus.Counter
//	    solveHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordSolve(dimension uint32, duration time.Duration, err error) {
//	    p.solveCounter.Inc()
//	    p.solveHistogram.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordSolve is called after each solve.
	// duration is the total time taken, err is nil if successful.
	RecordSolve(dimension uint32, duration time.Duration, err error)

	// RecordBatch is called after each SolveBatch call.
	RecordBatch(count, failed int, duration time.Duration)

	// RecordScratch is called once the problem file is complete, with its
	// size and how often it had to grow.
	RecordScratch(problemBytes, grows int)

	// RecordWipeFailure is called when a scratch or tour file could not be
	// verifiably zeroed.
	RecordWipeFailure()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSolve(uint32, time.Duration, error) {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration)     {}
func (NoopMetricsCollector) RecordScratch(int, int)                  {}
func (NoopMetricsCollector) RecordWipeFailure()                      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SolveCount        atomic.Int64
	SolveErrors       atomic.Int64
	SolveTotalNanos   atomic.Int64
	BatchCount        atomic.Int64
	BatchJobs         atomic.Int64
	BatchFailed       atomic.Int64
	ProblemBytesTotal atomic.Int64
	ScratchGrows      atomic.Int64
	WipeFailures      atomic.Int64
}

// RecordSolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSolve(_ uint32, duration time.Duration, err error) {
	b.SolveCount.Add(1)
	b.SolveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SolveErrors.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count, failed int, _ time.Duration) {
	b.BatchCount.Add(1)
	b.BatchJobs.Add(int64(count))
	b.BatchFailed.Add(int64(failed))
}

// RecordScratch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScratch(problemBytes, grows int) {
	b.ProblemBytesTotal.Add(int64(problemBytes))
	b.ScratchGrows.Add(int64(grows))
}

// RecordWipeFailure implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWipeFailure() {
	b.WipeFailures.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SolveCount:        b.SolveCount.Load(),
		SolveErrors:       b.SolveErrors.Load(),
		SolveAvgNanos:     b.getAvgSolveNanos(),
		BatchCount:        b.BatchCount.Load(),
		BatchJobs:         b.BatchJobs.Load(),
		BatchFailed:       b.BatchFailed.Load(),
		ProblemBytesTotal: b.ProblemBytesTotal.Load(),
		ScratchGrows:      b.ScratchGrows.Load(),
		WipeFailures:      b.WipeFailures.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSolveNanos() int64 {
	count := b.SolveCount.Load()
	if count == 0 {
		return 0
	}
	return b.SolveTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SolveCount        int64
	SolveErrors       int64
	SolveAvgNanos     int64
	BatchCount        int64
	BatchJobs         int64
	BatchFailed       int64
	ProblemBytesTotal int64
	ScratchGrows      int64
	WipeFailures      int64
}
