package main

import (
	"fmt"
	"time"

	"github.com/wkleong/outletmap"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	if c.Runs {
		return c.listRuns(deps)
	}

	filter := outletmap.OutletFilter{}
	if c.Location != "" {
		filter.Location = &c.Location
	}

	outlets, err := deps.Outlets.FindOutlets(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", outletmap.ErrorMessage(err))
		return err
	}

	if len(outlets) == 0 {
		fmt.Fprintln(deps.Stdout, "No outlets stored. Run 'outletmap scrape' first.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, outletmap.FormatOutlets(outlets))
	fmt.Fprintf(deps.Stdout, "\n%d outlet(s)\n", len(outlets))
	return nil
}

func (c *ListCmd) listRuns(deps *Dependencies) error {
	runs, err := deps.Runs.FindScrapeRuns(deps.Ctx, 10)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", outletmap.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No scrape runs recorded.")
		return nil
	}

	for _, run := range runs {
		fmt.Fprintf(deps.Stdout, "%s  region=%q outlets=%d duration=%s\n",
			run.StartedAt.Format("2006-01-02 15:04:05"), run.Region, run.OutletCount,
			run.FinishedAt.Sub(run.StartedAt).Round(10*time.Millisecond))
	}
	return nil
}
