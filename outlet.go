package outletmap

import (
	"context"
	"time"
)

// Outlet represents one physical outlet extracted from the store locator.
//
// The pair (Name, Address) is the natural key: repeated ingestion of the
// same listing replaces the stored row rather than duplicating it.
type Outlet struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	OperatingHours string  `json:"operatingHours"`
	WazeLink       string  `json:"wazeLink"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`

	// ContentHash fingerprints the extracted fields; assigned by the store.
	ContentHash string `json:"contentHash"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the outlet contains invalid fields.
// OperatingHours is free text and may be empty or unparseable; that must
// never prevent storage.
func (o *Outlet) Validate() error {
	if o.Name == "" {
		return Errorf(EINVALID, "outlet name required")
	}
	if o.Address == "" {
		return Errorf(EINVALID, "outlet address required")
	}
	return nil
}

// OutletService represents a service for managing stored outlets.
type OutletService interface {
	// UpsertOutlets writes outlets one at a time in input order, keyed by
	// the (name, address) natural key: an existing row is overwritten, a
	// new row is created and assigned an ID. Returns the number of rows
	// written. The first write failure aborts the remaining batch;
	// already-written rows stand.
	UpsertOutlets(ctx context.Context, outlets []*Outlet) (int, error)

	// FindOutletByID retrieves an outlet by ID.
	// Returns ENOTFOUND if the outlet does not exist.
	FindOutletByID(ctx context.Context, id int64) (*Outlet, error)

	// FindOutlets retrieves outlets matching the filter, in stable
	// insertion order.
	FindOutlets(ctx context.Context, filter OutletFilter) ([]*Outlet, error)
}

// OutletFilter represents a filter for FindOutlets.
type OutletFilter struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`

	// Location matches as a case-insensitive substring of the address.
	Location *string `json:"location"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
