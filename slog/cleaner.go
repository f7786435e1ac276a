package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/linkpost"
)

// Ensure LoggingCleaner implements linkpost.Cleaner.
var _ linkpost.Cleaner = (*LoggingCleaner)(nil)

// LoggingCleaner wraps a Cleaner with debug logging.
type LoggingCleaner struct {
	next   linkpost.Cleaner
	logger *slog.Logger
}

// NewLoggingCleaner creates a new LoggingCleaner.
func NewLoggingCleaner(next linkpost.Cleaner, logger *slog.Logger) *LoggingCleaner {
	return &LoggingCleaner{next: next, logger: logger}
}

// Clean delegates to the wrapped cleaner and logs input and output sizes.
func (c *LoggingCleaner) Clean(rawHTML []byte) (text string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("clean",
			"bytes", len(rawHTML),
			"chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Clean(rawHTML)
}
