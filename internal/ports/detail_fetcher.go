package ports

import (
	"business-finder/internal/domain"
	"context"
)

// Contract for enriching a place identifier with descriptive fields.
type DetailFetcher interface {
	// Return the details of one place. A lookup with no usable fields returns
	// empty PlaceDetails and a nil error.
	PlaceDetails(ctx context.Context, placeID string) (domain.PlaceDetails, error)
}
