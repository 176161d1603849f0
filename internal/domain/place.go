package domain

import "strings"

// Unavailable is displayed for any textual field the provider did not return.
const Unavailable = "N/A"

// A place returned by one nearby-search page.
// It only lives for the duration of a single pagination step.
type PlaceCandidate struct {
	PlaceID  string
	Name     string
	Vicinity string
}

// One page of nearby-search results.
// NextPageToken is empty on the last page.
type SearchPage struct {
	Status        string
	Candidates    []PlaceCandidate
	NextPageToken string
}

// Raw descriptive fields returned by a place-details lookup.
// Every field is optional; nil means the provider omitted it.
type PlaceDetails struct {
	Name             *string
	FormattedAddress *string
	FormattedPhone   *string
	Website          *string
	UserRatingsTotal *int
	Rating           *float64
	Types            []string
	PriceLevel       *int
}

// IsEmpty reports whether the lookup produced no usable fields.
func (d PlaceDetails) IsEmpty() bool {
	return d.Name == nil &&
		d.FormattedAddress == nil &&
		d.FormattedPhone == nil &&
		d.Website == nil &&
		d.UserRatingsTotal == nil &&
		d.Rating == nil &&
		len(d.Types) == 0 &&
		d.PriceLevel == nil
}

// Enriched, display-ready business record.
//
// Textual fields hold Unavailable when the provider omitted them.
// Rating and PriceLevel stay nil when unknown; Reviews defaults to zero.
type PlaceRecord struct {
	PlaceID    string
	Name       string
	Address    string
	Phone      string
	Website    string
	Reviews    int
	Rating     *float64
	Categories string
	PriceLevel *int
}

// Ordered sequence of records, in discovery order across pages.
type ResultSet []PlaceRecord

// NewPlaceRecord applies display defaults to the details of one place.
func NewPlaceRecord(placeID string, d PlaceDetails) PlaceRecord {
	rec := PlaceRecord{
		PlaceID:    placeID,
		Name:       textOrUnavailable(d.Name),
		Address:    textOrUnavailable(d.FormattedAddress),
		Phone:      textOrUnavailable(d.FormattedPhone),
		Website:    textOrUnavailable(d.Website),
		Categories: strings.Join(d.Types, ", "),
		Rating:     d.Rating,
		PriceLevel: d.PriceLevel,
	}
	if d.UserRatingsTotal != nil {
		rec.Reviews = *d.UserRatingsTotal
	}

	return rec
}

// HasWebsite reports whether the record carries a real website URL.
func (r PlaceRecord) HasWebsite() bool {
	return r.Website != "" && r.Website != Unavailable
}

func textOrUnavailable(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return Unavailable
	}
	return *s
}
