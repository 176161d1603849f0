package main

import (
	"bytes"
	"business-finder/internal/adapters/googlemaps"
	"business-finder/internal/domain"
	"business-finder/internal/platform/pacing"
	"business-finder/internal/services"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, m *googlemaps.MockProvider, input string, policy domain.ReviewPolicy) (*session, *bytes.Buffer) {
	t.Helper()
	finder, err := services.NewFinder(m, m, m, pacing.None{}, 0)
	require.NoError(t, err)

	var out bytes.Buffer
	return &session{in: strings.NewReader(input), out: &out, finder: finder, policy: policy}, &out
}

func provider() *googlemaps.MockProvider {
	name := "Feed Barn"
	reviews := 12
	return googlemaps.NewMockProvider().
		AddLocation("Grants Pass, Oregon", domain.Coordinates{Lat: 42.44, Lng: -123.33}).
		AddPages(googlemaps.MockPage{PlaceIDs: []string{"a"}}).
		AddDetails("a", domain.PlaceDetails{Name: &name, UserRatingsTotal: &reviews})
}

func TestSessionUsesDefaults(t *testing.T) {
	m := provider()
	s, out := newSession(t, m, "", domain.ReviewPolicyMin)

	require.NoError(t, s.run(context.Background()))

	assert.Equal(t, []string{"geocode:Grants Pass, Oregon", "page:", "detail:a"}, m.Calls)
	assert.Contains(t, out.String(), domain.NoticeBusinessFound)
	assert.Contains(t, out.String(), "Feed Barn")
}

func TestSessionRepromptsInvalidRadius(t *testing.T) {
	s, out := newSession(t, provider(), "\n\n45\n3\n20\n\n", domain.ReviewPolicyMin)

	require.NoError(t, s.run(context.Background()))

	assert.Contains(t, out.String(), `Invalid value "45": enter a number from 1 to 30.`)
	assert.NotContains(t, out.String(), "gte=")
	assert.Contains(t, out.String(), domain.NoticeNoBusinesses)
}

func TestSessionRejectsFractionalThreshold(t *testing.T) {
	name := "Hay Loft"
	reviews := 10
	m := googlemaps.NewMockProvider().
		AddLocation("Grants Pass, Oregon", domain.Coordinates{Lat: 42.44, Lng: -123.33}).
		AddPages(googlemaps.MockPage{PlaceIDs: []string{"a"}}).
		AddDetails("a", domain.PlaceDetails{Name: &name, UserRatingsTotal: &reviews})
	s, out := newSession(t, m, "\n\n\n10.5\n11\n\n", domain.ReviewPolicyMin)

	require.NoError(t, s.run(context.Background()))

	assert.Contains(t, out.String(), `Invalid value "10.5": enter a whole number 0 or greater.`)
	assert.Contains(t, out.String(), domain.NoticeNoBusinesses)
	assert.NotContains(t, out.String(), "Hay Loft")
}

func TestNumberRuleParse(t *testing.T) {
	tests := map[string]struct {
		rule    numberRule
		answer  string
		want    float64
		wantErr bool
	}{
		"radius decimal":      {rule: radiusRule, answer: "2.5", want: 2.5},
		"radius too large":    {rule: radiusRule, answer: "31", wantErr: true},
		"radius zero":         {rule: radiusRule, answer: "0", wantErr: true},
		"threshold whole":     {rule: thresholdRule, answer: "0", want: 0},
		"threshold fraction":  {rule: thresholdRule, answer: "10.5", wantErr: true},
		"threshold negative":  {rule: thresholdRule, answer: "-1", wantErr: true},
		"threshold not a num": {rule: thresholdRule, answer: "ten", wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := tc.rule.parse(tc.answer)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSessionMaximumPolicyPrompt(t *testing.T) {
	s, out := newSession(t, provider(), "\n\n\n20\n\n", domain.ReviewPolicyMax)

	require.NoError(t, s.run(context.Background()))

	assert.Contains(t, out.String(), "Maximum number of reviews")
	assert.Contains(t, out.String(), "Feed Barn")
}

func TestSessionGeocodeFailureIsAMessage(t *testing.T) {
	m := googlemaps.NewMockProvider().SetGeocodeStatus("Atlantis", googlemaps.StatusZeroResults)
	s, out := newSession(t, m, "feed\nAtlantis\n\n\n\n", domain.ReviewPolicyMin)

	require.NoError(t, s.run(context.Background()))

	assert.Contains(t, out.String(), domain.MessageNoCoordinates)
	assert.Empty(t, m.PageTokens)
}

func TestSessionExportsWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	s, out := newSession(t, provider(), "\n\n\n\n"+path+"\n", domain.ReviewPolicyMin)

	require.NoError(t, s.run(context.Background()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Saved 1 businesses")
}
