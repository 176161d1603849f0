package googlemaps

import (
	"business-finder/internal/domain"
	"business-finder/internal/platform/obs"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

type geocodeResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves a free-text location using the Geocoding API (/geocode/json).
// Only the first result is used.
func (c *Client) Geocode(ctx context.Context, location string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "maps.Geocode")(&err)

	location = strings.Join(strings.Fields(location), " ")
	if location == "" {
		return domain.Coordinates{}, errors.New("geocode: location must be non-empty")
	}

	var decoded geocodeResponse
	params := url.Values{"address": {location}}
	if err := c.getJSON(ctx, "/geocode/json", params, &decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("geocode %q: %w", location, err)
	}

	if decoded.Status != StatusOK {
		return domain.Coordinates{}, &domain.GeocodeError{Location: location, Status: decoded.Status}
	}
	if len(decoded.Results) == 0 {
		return domain.Coordinates{}, &domain.GeocodeError{Location: location, Status: StatusOK}
	}

	loc := decoded.Results[0].Geometry.Location
	return domain.Coordinates{Lat: loc.Lat, Lng: loc.Lng}, nil
}
