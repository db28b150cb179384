package outletmap

import (
	"context"
	"time"
)

// ScrapeRun records one extraction-and-ingestion run for auditing.
type ScrapeRun struct {
	ID          string    `json:"id"`
	Region      string    `json:"region"`
	OutletCount int       `json:"outletCount"`
	StartedAt   time.Time `json:"startedAt"`
	FinishedAt  time.Time `json:"finishedAt"`
}

// RunService records and lists scrape runs.
type RunService interface {
	// CreateScrapeRun persists a run record, assigning its ID.
	CreateScrapeRun(ctx context.Context, run *ScrapeRun) error

	// FindScrapeRuns lists runs, most recent first.
	FindScrapeRuns(ctx context.Context, limit int) ([]*ScrapeRun, error)
}
