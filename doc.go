// Package numreport computes descriptive statistics (mean, median, mode)
// over sequences of numbers supplied by pluggable sources.
//
// # Quick Start
//
// Reading statistics from a newline-delimited number file:
//
//	src := numreport.NewFileSource("numbers.txt")
//	report := numreport.NewReport(src)
//
//	mean, err := report.Mean(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("mean: %v\n", mean)
//
// # Architecture
//
// The library is split into three small layers:
//
//	[Source]  - where numbers come from (file, in-memory slice, test double)
//	[Mean/Median/Mode] - pure functions over an in-memory sequence
//	[Report]  - fetches from a Source and applies a statistic
//
// Source is the only seam: anything implementing Fetch can feed a Report.
// The statistics functions never perform I/O; the Report never caches.
//
// # Empty Input
//
// Mean and Median of an empty sequence are NaN, not an error. Check with
// math.IsNaN rather than expecting a failure:
//
//	m, err := report.Mean(ctx)
//	if err != nil {
//		return err // the source could not be read
//	}
//	if math.IsNaN(m) {
//		fmt.Println("no data")
//	}
//
// Mode of an empty sequence is an empty slice.
//
// # Mode Convention
//
// Mode returns every value attaining the maximum occurrence count, sorted
// ascending. When all values occur equally often, all of them are returned:
// the mode of [1 2 3] is [1 2 3], not "no mode".
//
// # Error Handling
//
// The only error kind raised by this package is *SourceUnavailableError,
// returned when a source's backing resource cannot be read. It carries the
// identifying key (e.g. the file path) and the underlying cause. Report
// methods propagate it unchanged.
//
// Malformed lines in number files are not errors: the file source discards
// them silently by default. Use WithStrictParsing to fail on them instead.
package numreport
