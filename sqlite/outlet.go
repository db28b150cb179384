package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/wkleong/outletmap"
)

// Compile-time interface verification.
var _ outletmap.OutletService = (*OutletService)(nil)

// OutletService implements outletmap.OutletService using SQLite.
type OutletService struct {
	db *DB
}

// NewOutletService creates a new OutletService.
func NewOutletService(db *DB) *OutletService {
	return &OutletService{db: db}
}

// hashOutlet computes an xxHash fingerprint of the extracted fields and
// returns it as a hex string. The hash changes whenever any stored field of
// the listing changes.
func hashOutlet(o *outletmap.Outlet) string {
	h := xxhash.New()
	for _, field := range []string{
		o.Name, o.Address, o.OperatingHours, o.WazeLink,
		fmt.Sprintf("%f,%f", o.Latitude, o.Longitude),
	} {
		_, _ = h.WriteString(field)
		_, _ = h.Write([]byte{0})
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, h.Sum64())
	return hex.EncodeToString(b)
}

// UpsertOutlets writes outlets one at a time in input order. Each write
// resolves conflicts against the (name, address) natural key: an existing
// row keeps its ID and has its other fields overwritten; a new row is
// assigned an ID, which is reported back into the record.
//
// The policy is fail-fast: the first failure aborts the remaining batch
// and already-written rows stand. Callers needing all-or-nothing semantics
// must wrap the call in an external transaction.
func (s *OutletService) UpsertOutlets(ctx context.Context, outlets []*outletmap.Outlet) (int, error) {
	written := 0
	for _, o := range outlets {
		if err := s.upsertOutlet(ctx, o); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

func (s *OutletService) upsertOutlet(ctx context.Context, o *outletmap.Outlet) error {
	if err := o.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC().Truncate(time.Second)
	o.ContentHash = hashOutlet(o)

	var createdAt string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO outlets (name, address, operating_hours, waze_link, latitude, longitude, content_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name, address) DO UPDATE SET
			operating_hours = excluded.operating_hours,
			waze_link = excluded.waze_link,
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			content_hash = excluded.content_hash,
			updated_at = excluded.updated_at
		RETURNING id, created_at
	`, o.Name, o.Address, o.OperatingHours, o.WazeLink, o.Latitude, o.Longitude,
		o.ContentHash, now.Format(time.RFC3339), now.Format(time.RFC3339)).Scan(&o.ID, &createdAt)
	if err != nil {
		return outletmap.Errorf(outletmap.EINTERNAL, "failed to persist outlet %q: %v", o.Name, err)
	}

	o.UpdatedAt = now
	o.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return outletmap.Errorf(outletmap.EINTERNAL, "failed to persist outlet %q: %v", o.Name, err)
	}

	return nil
}

// FindOutletByID retrieves an outlet by ID.
func (s *OutletService) FindOutletByID(ctx context.Context, id int64) (*outletmap.Outlet, error) {
	var o outletmap.Outlet
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, address, operating_hours, waze_link, latitude, longitude, content_hash, created_at, updated_at
		FROM outlets
		WHERE id = ?
	`, id).Scan(&o.ID, &o.Name, &o.Address, &o.OperatingHours, &o.WazeLink,
		&o.Latitude, &o.Longitude, &o.ContentHash, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, outletmap.Errorf(outletmap.ENOTFOUND, "outlet not found")
	}
	if err != nil {
		return nil, err
	}

	if o.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if o.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &o, nil
}

// FindOutlets retrieves outlets matching the filter, in insertion order.
func (s *OutletService) FindOutlets(ctx context.Context, filter outletmap.OutletFilter) ([]*outletmap.Outlet, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, address, operating_hours, waze_link, latitude, longitude, content_hash, created_at, updated_at FROM outlets WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.Location != nil {
		// SQLite LIKE is case-insensitive for ASCII.
		query.WriteString(" AND address LIKE ?")
		args = append(args, "%"+*filter.Location+"%")
	}

	query.WriteString(" ORDER BY id ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var outlets []*outletmap.Outlet
	for rows.Next() {
		var o outletmap.Outlet
		var createdAt, updatedAt string

		if err := rows.Scan(&o.ID, &o.Name, &o.Address, &o.OperatingHours, &o.WazeLink,
			&o.Latitude, &o.Longitude, &o.ContentHash, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if o.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if o.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		outlets = append(outlets, &o)
	}

	return outlets, rows.Err()
}
