package numreport

import "fmt"

// SourceUnavailableError is returned when a source's backing resource
// cannot be located or read.
//
// Key identifies the resource (for FileSource, the file path). Err is the
// underlying cause and is exposed via Unwrap, so errors.Is and errors.As
// see through it:
//
//	_, err := report.Mean(ctx)
//	var unavailable *numreport.SourceUnavailableError
//	if errors.As(err, &unavailable) {
//		log.Printf("cannot read %s", unavailable.Key)
//	}
type SourceUnavailableError struct {
	Key string
	Err error
}

func (e *SourceUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: source unavailable: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("%s: source unavailable", e.Key)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// ParseError is returned by FileSource in strict parsing mode when a line
// does not parse as a number. In the default mode such lines are discarded
// and no ParseError is ever produced.
type ParseError struct {
	Path string
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: line %d: not a number: %q", e.Path, e.Line, e.Text)
}
