// Package sink persists rendered report sections.
//
// Sinks are append-only. Nothing written here is ever read back by SysMon.
package sink

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gravito-framework/sysmon-go/pkg/types"
)

// TimeLayout is the timestamp format at the head of every entry
const TimeLayout = "2006-01-02 15:04:05"

// Separator closes every entry
var Separator = strings.Repeat("-", 60)

// Sink stores log entries
type Sink interface {
	Write(ctx context.Context, entry types.LogEntry) error
}

// Format renders an entry exactly as it is persisted
func Format(entry types.LogEntry) string {
	return fmt.Sprintf("[%s] %s\n%s\n%s\n", entry.Time.Format(TimeLayout), entry.Title, entry.Body, Separator)
}

// Tee writes to a primary sink and then to best-effort mirrors.
// Only a primary failure is returned; mirror failures are logged.
type Tee struct {
	Primary Sink
	Mirrors []Sink
	Logger  *slog.Logger
}

// Write implements Sink
func (t *Tee) Write(ctx context.Context, entry types.LogEntry) error {
	if err := t.Primary.Write(ctx, entry); err != nil {
		return err
	}

	for _, m := range t.Mirrors {
		if err := m.Write(ctx, entry); err != nil {
			t.logger().Warn("Log mirror write failed", "title", entry.Title, "error", err)
		}
	}
	return nil
}

func (t *Tee) logger() *slog.Logger {
	if t.Logger != nil {
		return t.Logger
	}
	return slog.Default()
}
