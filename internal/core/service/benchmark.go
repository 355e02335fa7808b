package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/yndnr/sortbench/internal/core/domain"
	"github.com/yndnr/sortbench/internal/telemetry/logger"
	"github.com/yndnr/sortbench/pkg/sorting"
)

// Recorder receives measurements as the benchmark runs.
// *metric.Registry satisfies it.
type Recorder interface {
	ObserveDataset(items int)
	ObserveSort(algorithm string, ms float64)
	ObserveIteration()
	SetAverage(algorithm string, ms float64)
}

// ProgressFunc is called after each completed iteration.
type ProgressFunc func(done, total int)

// InvokeFunc runs one sorter on a dataset and measures it.
type InvokeFunc func(s sorting.Sorter, data domain.Dataset) domain.SortResult

// AlgorithmResult is the outcome of one algorithm across all iterations.
type AlgorithmResult struct {
	ID        domain.AlgorithmID `json:"id" yaml:"id"`
	Name      string             `json:"name" yaml:"name"`
	TotalMs   float64            `json:"total_ms" yaml:"total_ms"`
	AverageMs float64            `json:"average_ms" yaml:"average_ms"`
	Sorted    domain.Dataset     `json:"sorted" yaml:"sorted"`
}

// Report is the outcome of one benchmark run.
type Report struct {
	RunID       string            `json:"run_id" yaml:"run_id"`
	Size        int               `json:"size" yaml:"size"`
	Iterations  int               `json:"iterations" yaml:"iterations"`
	Seed        uint64            `json:"seed,omitempty" yaml:"seed,omitempty"`
	Fingerprint string            `json:"fingerprint" yaml:"fingerprint"`
	StartedAt   time.Time         `json:"started_at" yaml:"started_at"`
	WallMs      float64           `json:"wall_ms" yaml:"wall_ms"`
	Original    domain.Dataset    `json:"original" yaml:"original"`
	Results     []AlgorithmResult `json:"results" yaml:"results"`
}

// Benchmark drives the sorting algorithms over a dataset.
type Benchmark struct {
	sorters  []sorting.Sorter
	invoke   InvokeFunc
	recorder Recorder
	progress ProgressFunc
	logger   logger.Logger
}

// Option configures a Benchmark.
type Option func(*Benchmark)

// WithSorters replaces the default algorithm set. Order is kept in reports.
func WithSorters(sorters ...sorting.Sorter) Option {
	return func(b *Benchmark) {
		b.sorters = sorters
	}
}

// WithInvoker replaces the timing envelope around each sort.
func WithInvoker(fn InvokeFunc) Option {
	return func(b *Benchmark) {
		b.invoke = fn
	}
}

// WithRecorder sends measurements to r.
func WithRecorder(r Recorder) Option {
	return func(b *Benchmark) {
		b.recorder = r
	}
}

// WithProgress reports iteration progress to fn.
func WithProgress(fn ProgressFunc) Option {
	return func(b *Benchmark) {
		b.progress = fn
	}
}

// WithLogger sets the logger for runs, overriding any logger in the context.
func WithLogger(l logger.Logger) Option {
	return func(b *Benchmark) {
		b.logger = l
	}
}

// NewBenchmark creates a Benchmark over all registered algorithms.
func NewBenchmark(opts ...Option) *Benchmark {
	b := &Benchmark{
		sorters: sorting.All(),
		invoke: func(s sorting.Sorter, data domain.Dataset) domain.SortResult {
			return s.Run(data)
		},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run benchmarks every algorithm on data for the given number of
// iterations. Each invocation gets its own copy of data, which is never
// modified. iterations must be at least 1.
//
// Cancelling ctx stops the run at the next iteration boundary.
func (b *Benchmark) Run(ctx context.Context, data domain.Dataset, iterations int) (*Report, error) {
	if iterations < 1 {
		return nil, domain.ErrInvalidIterations.WithDetails("got " + strconv.Itoa(iterations))
	}

	runID := NewRunID()
	ctx = logger.WithRunID(ctx, runID)
	if b.logger != nil {
		ctx = logger.WithLogger(ctx, b.logger)
	}
	log := logger.L(ctx)

	original := data.Clone()
	report := &Report{
		RunID:       runID,
		Size:        len(original),
		Iterations:  iterations,
		Fingerprint: FormatFingerprint(original.Fingerprint()),
		StartedAt:   time.Now(),
		Original:    original,
		Results:     make([]AlgorithmResult, len(b.sorters)),
	}

	log.Info("benchmark started",
		"items", report.Size,
		"iterations", iterations,
		"algorithms", len(b.sorters),
		"fingerprint", report.Fingerprint,
	)
	log.Debug("dataset", "items", original.String())

	if b.recorder != nil {
		b.recorder.ObserveDataset(report.Size)
	}

	samples := make([][]float64, len(b.sorters))
	for i := range samples {
		samples[i] = make([]float64, 0, iterations)
	}
	for iter := 0; iter < iterations; iter++ {
		for i, s := range b.sorters {
			res := b.invoke(s, original)
			ms := res.Milliseconds()
			samples[i] = append(samples[i], ms)

			if iter == 0 {
				report.Results[i] = AlgorithmResult{
					ID:     s.ID,
					Name:   s.Name,
					Sorted: res.Sorted,
				}
			}
			if b.recorder != nil {
				b.recorder.ObserveSort(string(s.ID), ms)
			}
		}

		if b.recorder != nil {
			b.recorder.ObserveIteration()
		}
		if b.progress != nil {
			b.progress(iter+1, iterations)
		}
		log.Debug("iteration done", "iteration", iter+1)

		if err := ctx.Err(); err != nil && iter+1 < iterations {
			log.Warn("benchmark interrupted", "completed", iter+1, "iterations", iterations)
			return nil, fmt.Errorf("benchmark interrupted after %d of %d iterations: %w", iter+1, iterations, err)
		}
	}

	for i := range report.Results {
		avg, err := Average(samples[i])
		if err != nil {
			return nil, err
		}
		report.Results[i].AverageMs = avg
		report.Results[i].TotalMs = sum(samples[i])
		if b.recorder != nil {
			b.recorder.SetAverage(string(report.Results[i].ID), report.Results[i].AverageMs)
		}
		log.Info("algorithm finished",
			"algorithm", report.Results[i].ID,
			"average_ms", report.Results[i].AverageMs,
		)
	}

	report.WallMs = float64(time.Since(report.StartedAt)) / float64(time.Millisecond)
	return report, nil
}

// Average returns the arithmetic mean of per-iteration times.
// An empty slice is an error rather than NaN.
func Average(times []float64) (float64, error) {
	if len(times) == 0 {
		return 0, domain.ErrInvalidIterations.WithDetails("no samples")
	}
	return sum(times) / float64(len(times)), nil
}

// sum adds times in order.
func sum(times []float64) float64 {
	var total float64
	for _, t := range times {
		total += t
	}
	return total
}

// NewRunID returns a new lexically sortable run id.
func NewRunID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		// Only fails when the entropy source does.
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return strings.ToLower(id.String())
}

// FormatFingerprint renders a dataset fingerprint as fixed-width hex.
func FormatFingerprint(fp uint64) string {
	return fmt.Sprintf("%016x", fp)
}
