package numreport

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Option configures a FileSource.
//
// Options use the functional options pattern:
//
//	src := numreport.NewFileSource("numbers.txt",
//	    numreport.WithStrictParsing(),
//	    numreport.WithComments("#"),
//	)
type Option func(*fileOptions)

// fileOptions holds configuration for a FileSource.
type fileOptions struct {
	fs            afero.Fs
	log           logrus.FieldLogger
	strictParsing bool   // fail on lines that do not parse
	comments      string // line prefix to skip before parsing ("" = none)
}

// defaultFileOptions returns the default configuration: the OS filesystem,
// a discarded logger, lenient parsing, no comment handling.
func defaultFileOptions() *fileOptions {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return &fileOptions{
		fs:  afero.NewOsFs(),
		log: log,
	}
}

// WithFS makes the FileSource read through the given filesystem instead of
// the OS filesystem. Handy for tests (afero.NewMemMapFs) and read-only or
// rooted filesystems.
func WithFS(fs afero.Fs) Option {
	return func(o *fileOptions) {
		o.fs = fs
	}
}

// WithLogger sets the logger used to report discarded lines at debug level.
// By default the FileSource logs nothing.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *fileOptions) {
		o.log = log
	}
}

// WithStrictParsing makes Fetch fail with a *ParseError on the first line
// that does not parse as a number.
//
// By default such lines are silently discarded and the remaining numbers
// are returned.
func WithStrictParsing() Option {
	return func(o *fileOptions) {
		o.strictParsing = true
	}
}

// WithComments skips lines starting with prefix before number parsing.
// Skipped comment lines are not counted as discarded and never fail strict
// parsing.
func WithComments(prefix string) Option {
	return func(o *fileOptions) {
		o.comments = prefix
	}
}
