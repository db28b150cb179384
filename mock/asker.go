package mock

import (
	"context"

	"github.com/wkleong/outletmap"
)

var _ outletmap.Asker = (*Asker)(nil)

// Asker is a mock implementation of outletmap.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question string, outlets []*outletmap.Outlet) (string, error)
}

func (a *Asker) Ask(ctx context.Context, question string, outlets []*outletmap.Outlet) (string, error) {
	return a.AskFn(ctx, question, outlets)
}
