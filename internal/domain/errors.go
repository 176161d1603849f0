package domain

import (
	"errors"
	"fmt"
)

// ErrGeocodeFailed marks a location that could not be resolved to coordinates.
var ErrGeocodeFailed = errors.New("geocode failed")

// GeocodeError carries the provider status of a failed geocode.
// Status is "OK" when the provider succeeded but returned no results.
type GeocodeError struct {
	Location string
	Status   string
}

func (e *GeocodeError) Error() string {
	if e.Status == "OK" || e.Status == "" {
		return fmt.Sprintf("could not retrieve coordinates for %q: no results", e.Location)
	}
	return fmt.Sprintf("geocoding error for %q: %s", e.Location, e.Status)
}

func (e *GeocodeError) Is(target error) bool {
	return target == ErrGeocodeFailed
}

const MessageNoCoordinates = "Could not retrieve coordinates for the specified city. Please check the city name and try again."

// UserMessage is the diagnostic shown to whoever ran the search.
// A location the provider does not know (no results, or ZERO_RESULTS) gets the
// coordinates message; any other status is a provider-side failure.
func (e *GeocodeError) UserMessage() string {
	switch e.Status {
	case "", "OK":
		return MessageNoCoordinates
	case "ZERO_RESULTS":
		return MessageNoCoordinates + " (status: ZERO_RESULTS)"
	}
	return "Geocoding error: " + e.Status
}
