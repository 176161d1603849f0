package googlemaps

import (
	"business-finder/internal/domain"
	"business-finder/internal/ports"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient serves handler and returns a client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient("test-key", Options{BaseURL: srv.URL})
	require.NoError(t, err)
	return c
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient("  ", Options{})
	assert.Error(t, err)
}

func TestGeocodeOK(t *testing.T) {
	var got url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/json", r.URL.Path)
		got = r.URL.Query()
		fmt.Fprint(w, `{"status":"OK","results":[
			{"geometry":{"location":{"lat":42.4390069,"lng":-123.3283925}}},
			{"geometry":{"location":{"lat":1,"lng":2}}}]}`)
	})

	coords, err := c.Geocode(context.Background(), "  Grants Pass,   Oregon ")
	require.NoError(t, err)

	assert.Equal(t, domain.Coordinates{Lat: 42.4390069, Lng: -123.3283925}, coords)
	assert.Equal(t, "Grants Pass, Oregon", got.Get("address"))
	assert.Equal(t, "test-key", got.Get("key"))
}

func TestGeocodeNonOKStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"ZERO_RESULTS","results":[]}`)
	})

	_, err := c.Geocode(context.Background(), "Atlantis")

	require.ErrorIs(t, err, domain.ErrGeocodeFailed)
	var ge *domain.GeocodeError
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, StatusZeroResults, ge.Status)
}

func TestGeocodeOKWithoutResults(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"OK","results":[]}`)
	})

	_, err := c.Geocode(context.Background(), "Atlantis")

	var ge *domain.GeocodeError
	require.True(t, errors.As(err, &ge))
	assert.Contains(t, ge.UserMessage(), "Could not retrieve coordinates")
}

func TestGeocodeEmptyLocationIssuesNoRequest(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { calls++ })

	_, err := c.Geocode(context.Background(), "   ")

	assert.Error(t, err)
	assert.Zero(t, calls)
}

func TestHTTPErrorIsTyped(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := c.Geocode(context.Background(), "Grants Pass")

	assert.NotErrorIs(t, err, domain.ErrGeocodeFailed)
	var he *HTTPStatusError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusBadGateway, he.Code)
	assert.Equal(t, "boom", he.Body)
}

func TestTransportErrorRedactsKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c, err := NewClient("secret-key", Options{BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = c.Geocode(context.Background(), "Grants Pass")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret-key")
}

func TestNearbySearchParamsAndPage(t *testing.T) {
	var got url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/nearbysearch/json", r.URL.Path)
		got = r.URL.Query()
		fmt.Fprint(w, `{"status":"OK","next_page_token":"tok-2","results":[
			{"place_id":"a","name":"Feed Barn","vicinity":"1 Main St"},
			{"name":"no id"},
			{"place_id":"b"}]}`)
	})

	q := ports.NearbyQuery{
		Keyword:      "animal feed",
		Location:     domain.Coordinates{Lat: 42.5, Lng: -123.25},
		RadiusMeters: 8046.7,
	}
	page, err := c.NearbySearch(context.Background(), q, "")
	require.NoError(t, err)

	assert.Equal(t, "42.5,-123.25", got.Get("location"))
	assert.Equal(t, "8046.7", got.Get("radius"))
	assert.Equal(t, "animal feed", got.Get("keyword"))
	assert.False(t, got.Has("pagetoken"))

	assert.Equal(t, "tok-2", page.NextPageToken)
	require.Len(t, page.Candidates, 2)
	assert.Equal(t, domain.PlaceCandidate{PlaceID: "a", Name: "Feed Barn", Vicinity: "1 Main St"}, page.Candidates[0])
	assert.Equal(t, "b", page.Candidates[1].PlaceID)

	_, err = c.NearbySearch(context.Background(), q, "tok-2")
	require.NoError(t, err)
	assert.Equal(t, "tok-2", got.Get("pagetoken"))
	assert.Equal(t, "animal feed", got.Get("keyword"))
}

func TestNearbySearchEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"ZERO_RESULTS","results":[]}`)
	})

	page, err := c.NearbySearch(context.Background(), ports.NearbyQuery{Keyword: "x", RadiusMeters: 1}, "")
	require.NoError(t, err)
	assert.Empty(t, page.Candidates)
	assert.Empty(t, page.NextPageToken)
}

func TestPlaceDetailsFull(t *testing.T) {
	var got url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/details/json", r.URL.Path)
		got = r.URL.Query()
		fmt.Fprint(w, `{"status":"OK","result":{
			"name":"Feed Barn","formatted_address":"1 Main St",
			"formatted_phone_number":"(541) 555-0100","website":"https://feedbarn.example",
			"user_ratings_total":17,"rating":4.4,"types":["store","establishment"],"price_level":1}}`)
	})

	d, err := c.PlaceDetails(context.Background(), "abc")
	require.NoError(t, err)

	assert.Equal(t, "abc", got.Get("place_id"))
	assert.Equal(t, "name,formatted_address,formatted_phone_number,website,user_ratings_total,rating,types,price_level", got.Get("fields"))

	rec := domain.NewPlaceRecord("abc", d)
	assert.Equal(t, "Feed Barn", rec.Name)
	assert.Equal(t, 17, rec.Reviews)
	assert.Equal(t, "store, establishment", rec.Categories)
	require.NotNil(t, rec.PriceLevel)
	assert.Equal(t, 1, *rec.PriceLevel)
}

func TestPlaceDetailsCustomFields(t *testing.T) {
	var fields string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fields = r.URL.Query().Get("fields")
		fmt.Fprint(w, `{"status":"OK","result":{"name":"x"}}`)
	}))
	defer srv.Close()

	c, err := NewClient("k", Options{BaseURL: srv.URL, DetailFields: []string{"name", "rating"}})
	require.NoError(t, err)

	_, err = c.PlaceDetails(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "name,rating", fields)
}

func TestPlaceDetailsEmptyResponses(t *testing.T) {
	bodies := map[string]string{
		"missing result": `{"status":"NOT_FOUND"}`,
		"null result":    `{"status":"OK","result":null}`,
		"empty result":   `{"status":"OK","result":{}}`,
		"only bad field": `{"status":"OK","result":{"name":7}}`,
		"not json":       `<html>`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, body)
			})

			d, err := c.PlaceDetails(context.Background(), "abc")
			require.NoError(t, err)
			assert.True(t, d.IsEmpty())
		})
	}
}

func TestPlaceDetailsKeepsWellTypedFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status":"OK","result":{"name":7,"rating":4.2,"types":"store","user_ratings_total":31}}`)
	})

	d, err := c.PlaceDetails(context.Background(), "abc")
	require.NoError(t, err)

	assert.Nil(t, d.Name)
	assert.Empty(t, d.Types)
	require.NotNil(t, d.Rating)
	assert.Equal(t, 4.2, *d.Rating)
	require.NotNil(t, d.UserRatingsTotal)
	assert.Equal(t, 31, *d.UserRatingsTotal)

	rec := domain.NewPlaceRecord("abc", d)
	assert.Equal(t, domain.Unavailable, rec.Name)
	assert.Equal(t, 31, rec.Reviews)
}

func TestMockProviderFollowsPages(t *testing.T) {
	m := NewMockProvider().AddPages(
		MockPage{PlaceIDs: []string{"a"}, Next: "t2"},
		MockPage{Token: "t2", PlaceIDs: []string{"b"}},
	)

	first, err := m.NearbySearch(context.Background(), ports.NearbyQuery{}, "")
	require.NoError(t, err)
	assert.Equal(t, "t2", first.NextPageToken)

	second, err := m.NearbySearch(context.Background(), ports.NearbyQuery{}, "t2")
	require.NoError(t, err)
	assert.Empty(t, second.NextPageToken)
	assert.Equal(t, []string{"", "t2"}, m.PageTokens)
}
