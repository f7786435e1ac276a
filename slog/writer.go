package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/linkpost"
)

// Ensure LoggingPostWriter implements linkpost.PostWriter.
var _ linkpost.PostWriter = (*LoggingPostWriter)(nil)

// LoggingPostWriter wraps a PostWriter with debug logging.
type LoggingPostWriter struct {
	next   linkpost.PostWriter
	logger *slog.Logger
}

// NewLoggingPostWriter creates a new LoggingPostWriter.
func NewLoggingPostWriter(next linkpost.PostWriter, logger *slog.Logger) *LoggingPostWriter {
	return &LoggingPostWriter{next: next, logger: logger}
}

// WritePost delegates to the wrapped writer and logs the resulting path.
func (w *LoggingPostWriter) WritePost(ctx context.Context, post *linkpost.Post) (path string, err error) {
	defer func(begin time.Time) {
		w.logger.Info("write post",
			"run", post.RunID,
			"url", post.SourceURL,
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WritePost(ctx, post)
}
