package main

import (
	"fmt"
	"time"

	"github.com/wkleong/outletmap"
)

// Run executes the scrape command: extract, ingest, record the run.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	started := time.Now().UTC()

	outlets, err := deps.Extractor.Extract(deps.Ctx, c.Region)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", outletmap.ErrorMessage(err))
		return err
	}

	written, err := deps.Outlets.UpsertOutlets(deps.Ctx, outlets)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s (%d of %d outlets written)\n",
			outletmap.ErrorMessage(err), written, len(outlets))
		return err
	}

	run := &outletmap.ScrapeRun{
		Region:      c.Region,
		OutletCount: written,
		StartedAt:   started,
		FinishedAt:  time.Now().UTC(),
	}
	if err := deps.Runs.CreateScrapeRun(deps.Ctx, run); err != nil {
		// The outlets are already committed; a failed audit row is not
		// worth failing the whole run over.
		fmt.Fprintf(deps.Stderr, "warning: failed to record scrape run: %s\n", outletmap.ErrorMessage(err))
	}

	fmt.Fprintf(deps.Stdout, "Found %d outlets in %s, wrote %d.\n", len(outlets), c.Region, written)
	return nil
}
