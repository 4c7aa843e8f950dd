package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gravito-framework/sysmon-go/pkg/types"
)

// FileSink appends entries to a file, creating its directory on demand.
// The file is opened per write so overlapping runs rely on O_APPEND.
type FileSink struct {
	path string
}

// NewFileSink creates a sink for path
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Path returns the log file location
func (s *FileSink) Path() string {
	return s.path
}

// Write implements Sink
func (s *FileSink) Write(_ context.Context, entry types.LogEntry) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	// One write call per entry keeps each entry contiguous
	if _, err := f.WriteString(Format(entry)); err != nil {
		f.Close()
		return fmt.Errorf("failed to write log entry: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

var _ Sink = (*FileSink)(nil)
