package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wkleong/outletmap"
	"github.com/wkleong/outletmap/mock"
	"github.com/wkleong/outletmap/slog"
)

func TestLoggingOutletService_UpsertOutlets(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

	next := &mock.OutletService{
		UpsertOutletsFn: func(_ context.Context, outlets []*outletmap.Outlet) (int, error) {
			return len(outlets), nil
		},
	}

	svc := slog.NewLoggingOutletService(next, logger)
	written, err := svc.UpsertOutlets(context.Background(), []*outletmap.Outlet{
		{Name: "Subway KLCC", Address: "Suria KLCC"},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, written)
	assert.Contains(t, buf.String(), "upsert outlets")
	assert.Contains(t, buf.String(), "written=1")
}

func TestLoggingOutletService_ReadsDelegate(t *testing.T) {
	t.Parallel()

	next := &mock.OutletService{
		FindOutletsFn: func(_ context.Context, _ outletmap.OutletFilter) ([]*outletmap.Outlet, error) {
			return []*outletmap.Outlet{{Name: "A", Address: "B"}}, nil
		},
		FindOutletByIDFn: func(_ context.Context, id int64) (*outletmap.Outlet, error) {
			return &outletmap.Outlet{ID: id, Name: "A", Address: "B"}, nil
		},
	}

	svc := slog.NewLoggingOutletService(next, stdslog.New(stdslog.DiscardHandler))

	outlets, err := svc.FindOutlets(context.Background(), outletmap.OutletFilter{})
	require.NoError(t, err)
	assert.Len(t, outlets, 1)

	outlet, err := svc.FindOutletByID(context.Background(), 7)
	require.NoError(t, err)
	assert.EqualValues(t, 7, outlet.ID)
}
