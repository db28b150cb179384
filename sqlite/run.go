package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/wkleong/outletmap"
)

// Compile-time interface verification.
var _ outletmap.RunService = (*RunService)(nil)

// RunService implements outletmap.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateScrapeRun persists a run record with a generated ID.
func (s *RunService) CreateScrapeRun(ctx context.Context, run *outletmap.ScrapeRun) error {
	run.ID = uuid.New().String()
	if run.FinishedAt.IsZero() {
		run.FinishedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scrape_runs (id, region, outlet_count, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, run.Region, run.OutletCount,
		run.StartedAt.Format(time.RFC3339), run.FinishedAt.Format(time.RFC3339))

	return err
}

// FindScrapeRuns lists runs, most recent first.
func (s *RunService) FindScrapeRuns(ctx context.Context, limit int) ([]*outletmap.ScrapeRun, error) {
	query := "SELECT id, region, outlet_count, started_at, finished_at FROM scrape_runs ORDER BY started_at DESC"
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*outletmap.ScrapeRun
	for rows.Next() {
		var run outletmap.ScrapeRun
		var startedAt, finishedAt string

		if err := rows.Scan(&run.ID, &run.Region, &run.OutletCount, &startedAt, &finishedAt); err != nil {
			return nil, err
		}

		if run.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
			return nil, err
		}
		if run.FinishedAt, err = parseRFC3339(finishedAt, "finished_at"); err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
