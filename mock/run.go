package mock

import (
	"context"

	"github.com/wkleong/outletmap"
)

var _ outletmap.RunService = (*RunService)(nil)

// RunService is a mock implementation of outletmap.RunService.
type RunService struct {
	CreateScrapeRunFn func(ctx context.Context, run *outletmap.ScrapeRun) error
	FindScrapeRunsFn  func(ctx context.Context, limit int) ([]*outletmap.ScrapeRun, error)
}

func (s *RunService) CreateScrapeRun(ctx context.Context, run *outletmap.ScrapeRun) error {
	return s.CreateScrapeRunFn(ctx, run)
}

func (s *RunService) FindScrapeRuns(ctx context.Context, limit int) ([]*outletmap.ScrapeRun, error) {
	return s.FindScrapeRunsFn(ctx, limit)
}
