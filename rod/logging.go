package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/wkleong/outletmap"
)

// Ensure LoggingExtractor implements outletmap.Extractor.
var _ outletmap.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   outletmap.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next outletmap.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract logs the run outcome and delegates to the wrapped extractor.
func (e *LoggingExtractor) Extract(ctx context.Context, regionFilter string) (outlets []*outletmap.Outlet, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"region", regionFilter,
			"outlets", len(outlets),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, regionFilter)
}

// Close delegates to the wrapped extractor.
func (e *LoggingExtractor) Close() error {
	return e.next.Close()
}
