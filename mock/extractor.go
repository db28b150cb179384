package mock

import (
	"context"

	"github.com/wkleong/outletmap"
)

var _ outletmap.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of outletmap.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, regionFilter string) ([]*outletmap.Outlet, error)
	CloseFn   func() error
}

func (e *Extractor) Extract(ctx context.Context, regionFilter string) ([]*outletmap.Outlet, error) {
	return e.ExtractFn(ctx, regionFilter)
}

func (e *Extractor) Close() error {
	if e.CloseFn == nil {
		return nil
	}
	return e.CloseFn()
}
