package outletmap

import "context"

// Extractor retrieves outlet listings from the store locator page.
// Implementations drive browser automation to handle JavaScript-rendered
// content.
type Extractor interface {
	// Extract loads the listing page, waits for the listing container to
	// render, parses every listing node, and returns the outlets whose
	// address contains regionFilter as a case-sensitive substring, in
	// source page order. Returned outlets have no ID yet.
	//
	// Returns ETIMEOUT if the listing container never renders. A missing
	// or malformed field on a single listing degrades that field to its
	// zero value rather than aborting the record.
	Extract(ctx context.Context, regionFilter string) ([]*Outlet, error)

	// Close releases browser resources.
	// Must be called when the Extractor is no longer needed.
	Close() error
}
