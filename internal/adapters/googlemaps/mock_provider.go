package googlemaps

import (
	"business-finder/internal/domain"
	"business-finder/internal/ports"
	"context"
	"fmt"
)

// MockPage is one canned nearby-search page. Token is the continuation token
// that requests it ("" for the first page); Next links to the following page.
type MockPage struct {
	Token    string
	PlaceIDs []string
	Next     string
	Status   string
}

// MockProvider is a deterministic in-memory Geocoder, NearbySearcher and
// DetailFetcher. It records every call in order.
type MockProvider struct {
	locations   map[string]domain.Coordinates
	geoStatus   map[string]string
	pages       map[string]MockPage
	details     map[string]domain.PlaceDetails
	detailErr   map[string]error
	searchErr   error
	Calls       []string
	PageTokens  []string
	DetailCalls []string
}

func NewMockProvider() *MockProvider {
	return &MockProvider{
		locations: map[string]domain.Coordinates{},
		geoStatus: map[string]string{},
		pages:     map[string]MockPage{},
		details:   map[string]domain.PlaceDetails{},
		detailErr: map[string]error{},
	}
}

func (m *MockProvider) AddLocation(location string, c domain.Coordinates) *MockProvider {
	m.locations[location] = c
	return m
}

// SetGeocodeStatus makes Geocode fail for location with the given provider status.
func (m *MockProvider) SetGeocodeStatus(location, status string) *MockProvider {
	m.geoStatus[location] = status
	return m
}

func (m *MockProvider) AddPages(pages ...MockPage) *MockProvider {
	for _, p := range pages {
		m.pages[p.Token] = p
	}
	return m
}

func (m *MockProvider) AddDetails(placeID string, d domain.PlaceDetails) *MockProvider {
	m.details[placeID] = d
	return m
}

func (m *MockProvider) FailDetails(placeID string, err error) *MockProvider {
	m.detailErr[placeID] = err
	return m
}

func (m *MockProvider) FailSearch(err error) *MockProvider {
	m.searchErr = err
	return m
}

func (m *MockProvider) Geocode(ctx context.Context, location string) (domain.Coordinates, error) {
	m.Calls = append(m.Calls, "geocode:"+location)

	if status, ok := m.geoStatus[location]; ok {
		return domain.Coordinates{}, &domain.GeocodeError{Location: location, Status: status}
	}
	c, ok := m.locations[location]
	if !ok {
		return domain.Coordinates{}, &domain.GeocodeError{Location: location, Status: StatusZeroResults}
	}
	return c, nil
}

func (m *MockProvider) NearbySearch(ctx context.Context, q ports.NearbyQuery, pageToken string) (domain.SearchPage, error) {
	m.Calls = append(m.Calls, "page:"+pageToken)
	m.PageTokens = append(m.PageTokens, pageToken)

	if m.searchErr != nil {
		return domain.SearchPage{}, m.searchErr
	}

	p, ok := m.pages[pageToken]
	if !ok {
		if pageToken == "" {
			return domain.SearchPage{Status: StatusZeroResults}, nil
		}
		return domain.SearchPage{}, fmt.Errorf("unknown page token %q", pageToken)
	}

	status := p.Status
	if status == "" {
		status = StatusOK
	}
	page := domain.SearchPage{Status: status, NextPageToken: p.Next}
	for _, id := range p.PlaceIDs {
		page.Candidates = append(page.Candidates, domain.PlaceCandidate{PlaceID: id})
	}
	return page, nil
}

func (m *MockProvider) PlaceDetails(ctx context.Context, placeID string) (domain.PlaceDetails, error) {
	m.Calls = append(m.Calls, "detail:"+placeID)
	m.DetailCalls = append(m.DetailCalls, placeID)

	if err, ok := m.detailErr[placeID]; ok {
		return domain.PlaceDetails{}, err
	}
	return m.details[placeID], nil
}
