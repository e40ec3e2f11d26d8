package numreport

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestSourceUnavailableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *SourceUnavailableError
		contains []string
	}{
		{
			name: "with cause",
			err: &SourceUnavailableError{
				Key: "numbers.txt",
				Err: fs.ErrNotExist,
			},
			contains: []string{"numbers.txt", "source unavailable", "file does not exist"},
		},
		{
			name: "without cause",
			err: &SourceUnavailableError{
				Key: "remote-bucket/values",
			},
			contains: []string{"remote-bucket/values", "source unavailable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(msg, substr) {
					t.Errorf("error message %q should contain %q", msg, substr)
				}
			}
		})
	}
}

func TestSourceUnavailableError_Unwrap(t *testing.T) {
	err := &SourceUnavailableError{Key: "numbers.txt", Err: fs.ErrNotExist}

	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("errors.Is should see through to the cause, got %v", err)
	}
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Path: "numbers.txt",
		Line: 3,
		Text: "banana",
	}

	msg := err.Error()
	if !strings.Contains(msg, "numbers.txt") {
		t.Errorf("error should contain path, got: %s", msg)
	}
	if !strings.Contains(msg, "line 3") {
		t.Errorf("error should contain line number, got: %s", msg)
	}
	if !strings.Contains(msg, "banana") {
		t.Errorf("error should contain offending text, got: %s", msg)
	}
}
