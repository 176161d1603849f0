package ports

import (
	"business-finder/internal/domain"
	"context"
)

// Contract for resolving a human-readable location to coordinates.
type Geocoder interface {
	// Return the coordinates of the first match for location.
	// Failures that are not transport errors satisfy errors.Is(err, domain.ErrGeocodeFailed).
	Geocode(ctx context.Context, location string) (domain.Coordinates, error)
}
