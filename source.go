package numreport

import (
	"context"
	"slices"
	"sync"
)

// Source supplies the sequence of numbers a Report analyzes.
//
// Fetch performs whatever I/O the backing store requires and returns the
// full sequence. Every call returns freshly allocated memory: callers may
// mutate the returned slice freely without affecting the source, and
// mutating a previously returned slice never changes what a later Fetch
// returns.
//
// Implementations that can be shared across goroutines must keep
// concurrent fetches from cross-contaminating each other's results;
// FileSource and SliceSource both do.
type Source interface {
	// Fetch returns the current number sequence, or a
	// *SourceUnavailableError if the backing resource cannot be read.
	Fetch(ctx context.Context) ([]float64, error)
}

// SliceSource is an in-memory Source backed by a fixed slice of values.
//
// It is useful as a fixture in tests and wherever the numbers are already
// materialized. The zero value is an empty source; NewSliceSource copies
// its input, so later changes to the caller's slice are not observed.
type SliceSource struct {
	mu     sync.RWMutex
	values []float64
}

// NewSliceSource returns a SliceSource holding a copy of values.
func NewSliceSource(values []float64) *SliceSource {
	return &SliceSource{values: slices.Clone(values)}
}

// Fetch returns a copy of the current values.
func (s *SliceSource) Fetch(ctx context.Context) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.values), nil
}

// SetValues replaces the source's values with a copy of the given slice.
// Fetches after SetValues observe only the new values.
func (s *SliceSource) SetValues(values []float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = slices.Clone(values)
}
