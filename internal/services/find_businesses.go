package services

import (
	"business-finder/internal/domain"
	"business-finder/internal/platform/obs"
	"business-finder/internal/ports"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

type FindBusinessesRequest struct {
	Keyword     string
	Location    string
	RadiusMiles float64
	Filter      domain.ReviewFilter
}

// Finder runs the geocode -> nearby search -> details -> filter pipeline.
// Providers and the delay policy are fixed at construction.
type Finder struct {
	geocoder ports.Geocoder
	searcher ports.NearbySearcher
	fetcher  ports.DetailFetcher
	delays   ports.DelayPolicy
	maxPages int
}

func NewFinder(
	geocoder ports.Geocoder,
	searcher ports.NearbySearcher,
	fetcher ports.DetailFetcher,
	delays ports.DelayPolicy,
	maxPages int,
) (*Finder, error) {
	if geocoder == nil || searcher == nil || fetcher == nil || delays == nil {
		return nil, errors.New("new finder: geocoder, searcher, fetcher and delay policy are required")
	}
	return &Finder{
		geocoder: geocoder,
		searcher: searcher,
		fetcher:  fetcher,
		delays:   delays,
		maxPages: maxPages,
	}, nil
}

// Find performs one complete search.
//
// A geocode failure is returned before any place lookup (it satisfies
// errors.Is(err, domain.ErrGeocodeFailed)). An empty search is not an error:
// the report simply has no results and FilterSkipped set.
func (f *Finder) Find(ctx context.Context, req FindBusinessesRequest) (_ *domain.SearchReport, err error) {
	defer obs.Time(ctx, "services.Find")(&err)

	keyword := strings.TrimSpace(req.Keyword)
	location := strings.TrimSpace(req.Location)
	if keyword == "" {
		return nil, errors.New("find businesses: keyword must be non-empty")
	}
	if location == "" {
		return nil, errors.New("find businesses: location must be non-empty")
	}
	if req.RadiusMiles <= 0 {
		return nil, fmt.Errorf("find businesses: radius must be positive, got %v miles", req.RadiusMiles)
	}

	coords, err := f.geocoder.Geocode(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("find businesses: %w", err)
	}

	radius := domain.MilesToMeters(req.RadiusMiles)
	records, stats, err := SearchPlaces(ctx, SearchPlacesRequest{
		Keyword:      keyword,
		Location:     coords,
		RadiusMeters: radius,
		MaxPages:     f.maxPages,
	}, f.searcher, f.fetcher, f.delays)
	if err != nil {
		return nil, fmt.Errorf("find businesses: %w", err)
	}

	report := &domain.SearchReport{
		Keyword:      keyword,
		Location:     location,
		Coordinates:  coords,
		RadiusMeters: radius,
		Filter:       req.Filter,
		Pages:        stats.Pages,
		Candidates:   stats.Candidates,
		Records:      records,
	}

	// Without any record there is no review data to filter on.
	if len(records) == 0 {
		report.FilterSkipped = true
		report.Results = domain.ResultSet{}
	} else {
		report.Results = req.Filter.Apply(records)
	}

	log.Printf(
		"req_id=%s search keyword=%q location=%q pages=%d candidates=%d dropped=%d records=%d results=%d filter=%q",
		obs.RequestID(ctx), keyword, location, stats.Pages, stats.Candidates, stats.Dropped,
		len(records), len(report.Results), req.Filter.String(),
	)

	return report, nil
}
