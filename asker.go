package outletmap

import "context"

// Asker produces a conversational answer to an open-ended question, given
// the current outlet listing as context. It backs the Resolver's optional
// generative fallback path.
type Asker interface {
	// Ask answers a free-text question about the provided outlets.
	// The outlets are supplied as context; no multi-turn state is kept.
	Ask(ctx context.Context, question string, outlets []*Outlet) (string, error)
}
