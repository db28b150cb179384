// Package slog provides logging decorators for outletmap services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/wkleong/outletmap"
)

// Ensure LoggingOutletService implements outletmap.OutletService.
var _ outletmap.OutletService = (*LoggingOutletService)(nil)

// LoggingOutletService wraps an OutletService with logging on the write
// path. Reads are expected to be frequent and are not logged.
type LoggingOutletService struct {
	next   outletmap.OutletService
	logger *slog.Logger
}

// NewLoggingOutletService creates a new LoggingOutletService.
func NewLoggingOutletService(next outletmap.OutletService, logger *slog.Logger) *LoggingOutletService {
	return &LoggingOutletService{next: next, logger: logger}
}

// UpsertOutlets logs the batch outcome and delegates to the wrapped service.
func (s *LoggingOutletService) UpsertOutlets(ctx context.Context, outlets []*outletmap.Outlet) (written int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("upsert outlets",
			"batch", len(outlets),
			"written", written,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpsertOutlets(ctx, outlets)
}

// FindOutletByID delegates to the wrapped service.
func (s *LoggingOutletService) FindOutletByID(ctx context.Context, id int64) (*outletmap.Outlet, error) {
	return s.next.FindOutletByID(ctx, id)
}

// FindOutlets delegates to the wrapped service.
func (s *LoggingOutletService) FindOutlets(ctx context.Context, filter outletmap.OutletFilter) ([]*outletmap.Outlet, error) {
	return s.next.FindOutlets(ctx, filter)
}
