package mock

import (
	"context"

	"github.com/wkleong/outletmap"
)

var _ outletmap.OutletService = (*OutletService)(nil)

// OutletService is a mock implementation of outletmap.OutletService.
type OutletService struct {
	UpsertOutletsFn  func(ctx context.Context, outlets []*outletmap.Outlet) (int, error)
	FindOutletByIDFn func(ctx context.Context, id int64) (*outletmap.Outlet, error)
	FindOutletsFn    func(ctx context.Context, filter outletmap.OutletFilter) ([]*outletmap.Outlet, error)
}

func (s *OutletService) UpsertOutlets(ctx context.Context, outlets []*outletmap.Outlet) (int, error) {
	return s.UpsertOutletsFn(ctx, outlets)
}

func (s *OutletService) FindOutletByID(ctx context.Context, id int64) (*outletmap.Outlet, error) {
	return s.FindOutletByIDFn(ctx, id)
}

func (s *OutletService) FindOutlets(ctx context.Context, filter outletmap.OutletFilter) ([]*outletmap.Outlet, error) {
	return s.FindOutletsFn(ctx, filter)
}
