package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/linkpost"
)

// Ensure LoggingComposer implements linkpost.Composer.
var _ linkpost.Composer = (*LoggingComposer)(nil)

// LoggingComposer wraps a Composer with debug logging.
type LoggingComposer struct {
	next   linkpost.Composer
	logger *slog.Logger
}

// NewLoggingComposer creates a new LoggingComposer.
func NewLoggingComposer(next linkpost.Composer, logger *slog.Logger) *LoggingComposer {
	return &LoggingComposer{next: next, logger: logger}
}

// Compose delegates to the wrapped composer and logs whether generation succeeded.
func (c *LoggingComposer) Compose(ctx context.Context, cleanedText, sourceURL string) (result *linkpost.GenerationResult, err error) {
	defer func(begin time.Time) {
		var succeeded bool
		if result != nil {
			succeeded = result.Succeeded
		}
		c.logger.Info("compose",
			"url", sourceURL,
			"chars", len(cleanedText),
			"succeeded", succeeded,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Compose(ctx, cleanedText, sourceURL)
}
