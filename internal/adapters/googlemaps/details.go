package googlemaps

import (
	"business-finder/internal/domain"
	"business-finder/internal/platform/obs"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
)

// Fields requested from the Place Details API unless overridden.
var DefaultDetailFields = []string{
	"name",
	"formatted_address",
	"formatted_phone_number",
	"website",
	"user_ratings_total",
	"rating",
	"types",
	"price_level",
}

type detailsResponse struct {
	Status string          `json:"status"`
	Result json.RawMessage `json:"result"`
}

// PlaceDetails looks up the configured field set for one place (/place/details/json).
//
// A missing, null, empty or malformed `result` object yields empty
// PlaceDetails and a nil error. Only transport and HTTP failures are errors.
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (_ domain.PlaceDetails, err error) {
	defer obs.Time(ctx, "maps.PlaceDetails")(&err)

	if placeID == "" {
		return domain.PlaceDetails{}, errors.New("place details: place id must be non-empty")
	}

	params := url.Values{
		"place_id": {placeID},
		"fields":   {strings.Join(c.detailFields, ",")},
	}

	req, err := c.newRequest(ctx, "/place/details/json", params)
	if err != nil {
		return domain.PlaceDetails{}, fmt.Errorf("place details %q: %w", placeID, err)
	}
	resp, err := c.do(req)
	if err != nil {
		return domain.PlaceDetails{}, fmt.Errorf("place details %q: %w", placeID, redactKey(err, c.apiKey))
	}
	defer resp.Body.Close()

	var decoded detailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Printf("req_id=%s place details %q: undecodable response: %v", obs.RequestID(ctx), placeID, err)
		return domain.PlaceDetails{}, nil
	}

	return parseDetailsResult(placeID, decoded.Result), nil
}

// parseDetailsResult decodes each field on its own: a field of the wrong type
// is dropped and logged while the rest of the record is kept.
func parseDetailsResult(placeID string, raw json.RawMessage) domain.PlaceDetails {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || len(fields) == 0 {
		return domain.PlaceDetails{}
	}

	d := domain.PlaceDetails{
		Name:             detailField[string](placeID, fields, "name"),
		FormattedAddress: detailField[string](placeID, fields, "formatted_address"),
		FormattedPhone:   detailField[string](placeID, fields, "formatted_phone_number"),
		Website:          detailField[string](placeID, fields, "website"),
		UserRatingsTotal: detailField[int](placeID, fields, "user_ratings_total"),
		Rating:           detailField[float64](placeID, fields, "rating"),
		PriceLevel:       detailField[int](placeID, fields, "price_level"),
	}
	if types := detailField[[]string](placeID, fields, "types"); types != nil {
		d.Types = *types
	}
	return d
}

func detailField[T any](placeID string, fields map[string]json.RawMessage, key string) *T {
	raw, ok := fields[key]
	if !ok || string(raw) == "null" {
		return nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Printf("place details %q: dropping malformed %s: %v", placeID, key, err)
		return nil
	}
	return &v
}
