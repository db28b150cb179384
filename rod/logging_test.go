package rod_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wkleong/outletmap"
	"github.com/wkleong/outletmap/mock"
	"github.com/wkleong/outletmap/rod"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := &mock.Extractor{
		ExtractFn: func(_ context.Context, regionFilter string) ([]*outletmap.Outlet, error) {
			return []*outletmap.Outlet{
				{Name: "Subway KLCC", Address: "Suria KLCC, " + regionFilter},
			}, nil
		},
	}

	extractor := rod.NewLoggingExtractor(next, logger)
	outlets, err := extractor.Extract(context.Background(), "Kuala Lumpur")

	require.NoError(t, err)
	require.Len(t, outlets, 1)
	assert.Contains(t, buf.String(), "extract")
	assert.Contains(t, buf.String(), "region=\"Kuala Lumpur\"")
	assert.Contains(t, buf.String(), "outlets=1")
}

func TestLoggingExtractor_Close(t *testing.T) {
	t.Parallel()

	closed := false
	next := &mock.Extractor{
		ExtractFn: func(context.Context, string) ([]*outletmap.Outlet, error) { return nil, nil },
		CloseFn:   func() error { closed = true; return nil },
	}

	extractor := rod.NewLoggingExtractor(next, slog.New(slog.DiscardHandler))
	require.NoError(t, extractor.Close())
	assert.True(t, closed)
}
