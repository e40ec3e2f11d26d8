// Package scan parses newline-delimited number files.
package scan

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Skipped records a line that did not parse as a number.
type Skipped struct {
	// Line number, 1-based
	Line int

	// Raw line text, trimmed
	Text string
}

// Floats reads r line by line and parses each line as a float64.
//
// Leading and trailing whitespace is trimmed before parsing. Blank lines
// and lines starting with comments (when non-empty) are skipped entirely.
// Lines that still fail to parse are returned in skipped, in file order,
// and are not part of vals.
func Floats(r io.Reader, comments string) (vals []float64, skipped []Skipped, err error) {
	sc := bufio.NewScanner(r)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if comments != "" && strings.HasPrefix(text, comments) {
			continue
		}

		v, perr := strconv.ParseFloat(text, 64)
		if perr != nil {
			skipped = append(skipped, Skipped{Line: line, Text: text})
			continue
		}
		vals = append(vals, v)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, err
	}

	return vals, skipped, nil
}
