package numreport

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/numreport/numreport/internal/scan"
)

// FileSource is a Source that reads newline-delimited numbers from a file.
//
// Each Fetch opens the file, parses one number per line, and returns the
// resulting sequence. Lines that do not parse as numbers are discarded
// silently (see WithStrictParsing to fail on them instead). A file that
// cannot be opened yields a *SourceUnavailableError carrying the path.
//
// The path may be swapped between fetches with SetPath; FileSource is safe
// for concurrent fetches.
type FileSource struct {
	mu   sync.RWMutex
	path string

	opts *fileOptions
}

// NewFileSource returns a FileSource reading from path.
//
// No I/O happens until Fetch; a missing file is reported by Fetch, not
// here.
func NewFileSource(path string, opts ...Option) *FileSource {
	options := defaultFileOptions()
	for _, opt := range opts {
		opt(options)
	}

	return &FileSource{path: path, opts: options}
}

// Fetch reads and parses the current file.
func (s *FileSource) Fetch(ctx context.Context) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	path := s.path
	s.mu.RUnlock()

	f, err := s.opts.fs.Open(path)
	if err != nil {
		return nil, &SourceUnavailableError{Key: path, Err: err}
	}
	defer f.Close()

	vals, skipped, err := scan.Floats(f, s.opts.comments)
	if err != nil {
		return nil, &SourceUnavailableError{Key: path, Err: err}
	}

	for _, sk := range skipped {
		if s.opts.strictParsing {
			return nil, &ParseError{Path: path, Line: sk.Line, Text: sk.Text}
		}
		s.opts.log.WithFields(logrus.Fields{
			"path": path,
			"line": sk.Line,
			"text": sk.Text,
		}).Debug("discarding non-numeric line")
	}

	return vals, nil
}

// Path returns the file path the next Fetch will read.
func (s *FileSource) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// SetPath points the source at a different file. Fetches after SetPath
// read only the new file.
func (s *FileSource) SetPath(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.path = path
}
