package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/kwrobel/sitetree"
)

// Ensure LoggingTreeWriter implements sitetree.TreeWriter.
var _ sitetree.TreeWriter = (*LoggingTreeWriter)(nil)

// LoggingTreeWriter wraps a TreeWriter with logging.
type LoggingTreeWriter struct {
	next   sitetree.TreeWriter
	logger *slog.Logger
}

// NewLoggingTreeWriter creates a new LoggingTreeWriter.
func NewLoggingTreeWriter(next sitetree.TreeWriter, logger *slog.Logger) *LoggingTreeWriter {
	return &LoggingTreeWriter{next: next, logger: logger}
}

// WriteTree delegates to the wrapped writer and logs the outcome.
func (w *LoggingTreeWriter) WriteTree(ctx context.Context, root *sitetree.Node) (info *sitetree.WriteInfo, err error) {
	defer func(begin time.Time) {
		var path string
		var size int
		var unchanged bool
		if info != nil {
			path, size, unchanged = info.Path, info.Bytes, info.Unchanged
		}
		w.logger.Info("tree artifact write",
			"path", path,
			"bytes", size,
			"unchanged", unchanged,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteTree(ctx, root)
}
