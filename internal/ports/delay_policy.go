package ports

import "context"

// Suspension points of a place search.
// Implementations return ctx.Err() if the context ends while waiting.
type DelayPolicy interface {
	// Wait after each place-details lookup.
	AfterDetail(ctx context.Context) error
	// Wait before requesting a page with a fresh continuation token.
	BeforeNextPage(ctx context.Context) error
}
