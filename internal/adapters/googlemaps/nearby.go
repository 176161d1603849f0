package googlemaps

import (
	"business-finder/internal/domain"
	"business-finder/internal/platform/obs"
	"business-finder/internal/ports"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

type nearbyResponse struct {
	Status        string `json:"status"`
	NextPageToken string `json:"next_page_token"`
	Results       []struct {
		PlaceID  string `json:"place_id"`
		Name     string `json:"name"`
		Vicinity string `json:"vicinity"`
	} `json:"results"`
}

// NearbySearch requests one page from the Places API (/place/nearbysearch/json).
// Results without a place_id are skipped.
func (c *Client) NearbySearch(
	ctx context.Context,
	q ports.NearbyQuery,
	pageToken string,
) (_ domain.SearchPage, err error) {
	defer obs.Time(ctx, "maps.NearbySearch")(&err)

	if q.RadiusMeters <= 0 {
		return domain.SearchPage{}, errors.New("nearby search: radius must be positive")
	}

	params := url.Values{
		"location": {q.Location.LocationParam()},
		"radius":   {strconv.FormatFloat(q.RadiusMeters, 'f', -1, 64)},
		"keyword":  {q.Keyword},
	}
	if pageToken != "" {
		params.Set("pagetoken", pageToken)
	}

	var decoded nearbyResponse
	if err := c.getJSON(ctx, "/place/nearbysearch/json", params, &decoded); err != nil {
		return domain.SearchPage{}, fmt.Errorf("nearby search keyword=%q: %w", q.Keyword, err)
	}

	page := domain.SearchPage{
		Status:        decoded.Status,
		NextPageToken: decoded.NextPageToken,
		Candidates:    make([]domain.PlaceCandidate, 0, len(decoded.Results)),
	}
	for _, r := range decoded.Results {
		if r.PlaceID == "" {
			continue
		}
		page.Candidates = append(page.Candidates, domain.PlaceCandidate{
			PlaceID:  r.PlaceID,
			Name:     r.Name,
			Vicinity: r.Vicinity,
		})
	}

	return page, nil
}
