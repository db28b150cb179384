package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	main "github.com/wkleong/outletmap/cmd/outletmap"
)

// Not parallel: subtests pin GEMINI_API_KEY via t.Setenv.
func TestMain_Run(t *testing.T) {
	t.Run("no command prints help and errors", func(t *testing.T) {
		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), nil, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help exits cleanly", func(t *testing.T) {
		m := main.NewMain()
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "scrape")
		assert.Contains(t, stdout.String(), "serve")
	})

	t.Run("list runs end to end against a fresh database", func(t *testing.T) {
		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "outletmap.db")
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"list"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No outlets stored")
	})

	t.Run("ask answers without a generative backend configured", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "outletmap.db")
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"ask", "what is the weather"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "I'm not sure about that.")
	})
}
