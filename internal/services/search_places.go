package services

import (
	"business-finder/internal/domain"
	"business-finder/internal/platform/obs"
	"business-finder/internal/ports"
	"context"
	"errors"
	"fmt"
	"log"
)

type SearchPlacesRequest struct {
	Keyword      string
	Location     domain.Coordinates
	RadiusMeters float64
	// Stop after this many pages. Zero follows every continuation token.
	MaxPages int
}

// Counters describing one run of SearchPlaces.
type SearchStats struct {
	Pages      int
	Candidates int
	Dropped    int
}

// SearchPlaces enumerates every nearby-search page and enriches each candidate.
//
// Pages and detail lookups run strictly in sequence. The delay policy is
// consulted after every detail lookup and before each continuation-token
// request. A candidate whose lookup fails or comes back empty is dropped; only
// nearby-search failures and context cancellation abort the search.
// Records are returned in discovery order.
func SearchPlaces(
	ctx context.Context,
	req SearchPlacesRequest,
	searcher ports.NearbySearcher,
	fetcher ports.DetailFetcher,
	delays ports.DelayPolicy,
) (_ domain.ResultSet, stats SearchStats, err error) {
	defer obs.Time(ctx, "services.SearchPlaces")(&err)

	if searcher == nil || fetcher == nil || delays == nil {
		return nil, stats, errors.New("search places: searcher, fetcher and delay policy are required")
	}
	if req.RadiusMeters <= 0 {
		return nil, stats, fmt.Errorf("search places: radius must be positive, got %v", req.RadiusMeters)
	}

	query := ports.NearbyQuery{
		Keyword:      req.Keyword,
		Location:     req.Location,
		RadiusMeters: req.RadiusMeters,
	}

	results := domain.ResultSet{}
	pageToken := ""
	for {
		page, err := searcher.NearbySearch(ctx, query, pageToken)
		if err != nil {
			return nil, stats, fmt.Errorf("search places: page %d: %w", stats.Pages+1, err)
		}
		stats.Pages++

		if page.Status != "" && page.Status != "OK" && page.Status != "ZERO_RESULTS" {
			log.Printf("req_id=%s nearby search page=%d status=%s", obs.RequestID(ctx), stats.Pages, page.Status)
		}

		for _, cand := range page.Candidates {
			stats.Candidates++

			details, err := fetcher.PlaceDetails(ctx, cand.PlaceID)
			switch {
			case err != nil:
				stats.Dropped++
				log.Printf("req_id=%s place details failed place_id=%s err=%v", obs.RequestID(ctx), cand.PlaceID, err)
			case details.IsEmpty():
				stats.Dropped++
				log.Printf("req_id=%s place details empty place_id=%s", obs.RequestID(ctx), cand.PlaceID)
			default:
				results = append(results, domain.NewPlaceRecord(cand.PlaceID, details))
			}

			if err := delays.AfterDetail(ctx); err != nil {
				return nil, stats, fmt.Errorf("search places: rate limit wait: %w", err)
			}
		}

		if page.NextPageToken == "" {
			break
		}
		if req.MaxPages > 0 && stats.Pages >= req.MaxPages {
			log.Printf("req_id=%s nearby search stopped at max_pages=%d", obs.RequestID(ctx), req.MaxPages)
			break
		}

		// Continuation tokens are not valid immediately after they are issued.
		if err := delays.BeforeNextPage(ctx); err != nil {
			return nil, stats, fmt.Errorf("search places: page token wait: %w", err)
		}
		pageToken = page.NextPageToken
	}

	return results, stats, nil
}
