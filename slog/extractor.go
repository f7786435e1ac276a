package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/linkpost"
)

// Ensure LoggingExtractor implements linkpost.Extractor.
var _ linkpost.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   linkpost.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next linkpost.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the document hash.
func (e *LoggingExtractor) Extract(ctx context.Context, url string) (doc *linkpost.SourceDocument, err error) {
	defer func(begin time.Time) {
		var hash string
		var chars int
		if doc != nil {
			hash, chars = doc.ContentHash, len(doc.CleanedText)
		}
		e.logger.Info("extract",
			"url", url,
			"hash", hash,
			"chars", chars,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, url)
}
