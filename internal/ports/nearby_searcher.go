package ports

import (
	"business-finder/internal/domain"
	"context"
)

// Parameters held fixed across every page of one nearby search.
type NearbyQuery struct {
	Keyword      string
	Location     domain.Coordinates
	RadiusMeters float64
}

// Contract for a paginated keyword search around a coordinate.
type NearbySearcher interface {
	// Return one page of candidates. pageToken is empty for the first page
	// and otherwise the NextPageToken of the previous page.
	NearbySearch(ctx context.Context, q NearbyQuery, pageToken string) (domain.SearchPage, error)
}
