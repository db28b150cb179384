package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wkleong/outletmap"
	main "github.com/wkleong/outletmap/cmd/outletmap"
	"github.com/wkleong/outletmap/mock"
)

func TestAskCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("answers over the stored snapshot", func(t *testing.T) {
		t.Parallel()

		outlets := &mock.OutletService{
			FindOutletsFn: func(context.Context, outletmap.OutletFilter) ([]*outletmap.Outlet, error) {
				return []*outletmap.Outlet{
					{Name: "Subway KLCC", Address: "Suria KLCC, Kuala Lumpur", OperatingHours: "Daily, 8:00 AM - 10:00 PM"},
					{Name: "Subway Bangsar", Address: "12 Jalan Bangsar, KL", OperatingHours: "Daily, 9:00 AM - 9:00 PM"},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Outlets:  outlets,
			Resolver: &outletmap.Resolver{},
		}

		cmd := &main.AskCmd{Question: "which outlet closes latest?"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Latest closing outlets:")
		assert.Contains(t, stdout.String(), "Subway KLCC")
	})

	t.Run("store failure is reported", func(t *testing.T) {
		t.Parallel()

		outlets := &mock.OutletService{
			FindOutletsFn: func(context.Context, outletmap.OutletFilter) ([]*outletmap.Outlet, error) {
				return nil, outletmap.Errorf(outletmap.EINTERNAL, "db gone")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   &bytes.Buffer{},
			Stderr:   stderr,
			Outlets:  outlets,
			Resolver: &outletmap.Resolver{},
		}

		cmd := &main.AskCmd{Question: "hello"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "db gone")
	})
}
