package numreport_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/numreport/numreport"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{"one through five", []float64{1, 2, 3, 4, 5}, 3},
		{"single value", []float64{42}, 42},
		{"negative values", []float64{-2, 2}, 0},
		{"fractional result", []float64{1, 2}, 1.5},
		{"unordered", []float64{7, 34, 2}, 43.0 / 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := numreport.Mean(tt.input); got != tt.expected {
				t.Errorf("Mean(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMean_Empty(t *testing.T) {
	if got := numreport.Mean(nil); !math.IsNaN(got) {
		t.Errorf("Mean(nil) = %v, want NaN", got)
	}
	if got := numreport.Mean([]float64{}); !math.IsNaN(got) {
		t.Errorf("Mean([]) = %v, want NaN", got)
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		expected float64
	}{
		{"odd count", []float64{1, 2, 3, 4, 5}, 3},
		{"unsorted odd count", []float64{7, 34, 2}, 7},
		{"even count", []float64{1, 2, 3, 4}, 2.5},
		{"two values", []float64{10, 20}, 15},
		{"single value", []float64{9}, 9},
		{"duplicates", []float64{1, 1, 2, 2, 3}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := numreport.Median(tt.input); got != tt.expected {
				t.Errorf("Median(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMedian_Empty(t *testing.T) {
	if got := numreport.Median(nil); !math.IsNaN(got) {
		t.Errorf("Median(nil) = %v, want NaN", got)
	}
}

func TestMedian_OrderIndependent(t *testing.T) {
	input := []float64{5, 1, 4, 2, 3, 2, 5}
	want := numreport.Median(input)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := slices.Clone(input)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		if got := numreport.Median(shuffled); got != want {
			t.Fatalf("Median(%v) = %v, want %v", shuffled, got, want)
		}
	}
}

func TestMedian_DoesNotModifyInput(t *testing.T) {
	input := []float64{3, 1, 2}
	numreport.Median(input)

	if !slices.Equal(input, []float64{3, 1, 2}) {
		t.Errorf("Median modified its input: %v", input)
	}
}

func TestMode(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		expected []float64
	}{
		{"single most frequent", []float64{1, 1, 2, 2, 2, 3}, []float64{2}},
		{"tied most frequent", []float64{1, 1, 2, 2, 3}, []float64{1, 2}},
		{"all equally frequent", []float64{1, 2, 3, 4, 5}, []float64{1, 2, 3, 4, 5}},
		{"single value", []float64{7}, []float64{7}},
		{"unsorted input", []float64{3, 1, 3, 2}, []float64{3}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := numreport.Mode(tt.input)
			if !slices.Equal(got, tt.expected) {
				t.Errorf("Mode(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMode_SortedAndDuplicateFree(t *testing.T) {
	got := numreport.Mode([]float64{9, 9, 5, 5, 1, 1, 3, 3})

	if !slices.IsSorted(got) {
		t.Errorf("Mode result not sorted: %v", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i] == got[i-1] {
			t.Errorf("Mode result contains duplicate %v: %v", got[i], got)
		}
	}
}
