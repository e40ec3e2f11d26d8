package numreport

import (
	"slices"
)

// Mean returns the arithmetic mean of xs.
//
// The mean of an empty sequence is NaN (0/0). This is deliberate: callers
// distinguish "no data" from "source failure" by checking math.IsNaN, not
// by handling an error.
func Mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Median returns the middle value of xs, or the mean of the two central
// values when the count is even.
//
// The input is not modified; sorting happens on a copy. The median of an
// empty sequence is NaN, falling out of Mean over zero elements.
func Median(xs []float64) float64 {
	c := slices.Clone(xs)
	slices.Sort(c)

	n := len(c)
	if n == 0 {
		return Mean(c)
	}
	if n%2 == 0 {
		return Mean(c[n/2-1 : n/2+1])
	}
	return c[n/2]
}

// Mode returns the values occurring most frequently in xs, sorted ascending
// with no duplicates.
//
// Values are grouped by exact float64 equality. When every distinct value
// occurs equally often, all distinct values are returned; the mode of an
// empty sequence is empty.
func Mode(xs []float64) []float64 {
	counts := make(map[float64]int, len(xs))
	maxCount := 0
	for _, x := range xs {
		counts[x]++
		if counts[x] > maxCount {
			maxCount = counts[x]
		}
	}

	var mode []float64
	for x, n := range counts {
		if n == maxCount {
			mode = append(mode, x)
		}
	}
	slices.Sort(mode)
	return mode
}
