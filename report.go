package numreport

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Report computes statistics over numbers fetched from a Source.
//
// Report holds no data of its own: every method performs exactly one fetch
// and computes from what that fetch returned. Nothing is cached between
// calls, so a source whose state changes between calls (a swapped path, a
// rewritten file) is reflected by the very next method call.
//
// Source errors are returned unchanged; Report never wraps, recovers, or
// retries them.
type Report struct {
	src Source
}

// NewReport returns a Report reading from src.
func NewReport(src Source) *Report {
	return &Report{src: src}
}

// Mean fetches the current sequence and returns its arithmetic mean.
// The mean of an empty sequence is NaN; see Mean.
func (r *Report) Mean(ctx context.Context) (float64, error) {
	xs, err := r.src.Fetch(ctx)
	if err != nil {
		return 0, err
	}
	return Mean(xs), nil
}

// Median fetches the current sequence and returns its median.
// The median of an empty sequence is NaN; see Median.
func (r *Report) Median(ctx context.Context) (float64, error) {
	xs, err := r.src.Fetch(ctx)
	if err != nil {
		return 0, err
	}
	return Median(xs), nil
}

// Mode fetches the current sequence and returns its mode set, ascending
// and duplicate-free; see Mode.
func (r *Report) Mode(ctx context.Context) ([]float64, error) {
	xs, err := r.src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return Mode(xs), nil
}

// Summary bundles all three statistics over one fetched sequence.
type Summary struct {
	// Number of values in the fetched sequence
	Count int

	Mean   float64
	Median float64
	Mode   []float64
}

// Describe fetches the current sequence once and computes all three
// statistics from it.
//
// Unlike calling Mean, Median, and Mode in sequence (three fetches,
// potentially three different sequences if the source mutates between
// calls), Describe guarantees all statistics describe the same data.
func (r *Report) Describe(ctx context.Context) (Summary, error) {
	xs, err := r.src.Fetch(ctx)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Count:  len(xs),
		Mean:   Mean(xs),
		Median: Median(xs),
		Mode:   Mode(xs),
	}, nil
}

// DescribeMany computes summaries for multiple sources concurrently.
//
// Sources are fetched in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input sources. If any
// fetch fails, DescribeMany returns the first error and no summaries.
func DescribeMany(ctx context.Context, sources ...Source) ([]Summary, error) {
	if len(sources) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]Summary, len(sources))

	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			summary, err := NewReport(src).Describe(ctx)
			if err != nil {
				return err
			}

			results[i] = summary
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
