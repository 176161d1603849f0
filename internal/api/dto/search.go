package dto

import (
	"business-finder/internal/domain"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultRadiusMiles     = 5
	DefaultReviewThreshold = 10
)

var validate = validator.New()

type SearchRequest struct {
	Keyword         string   `json:"keyword" validate:"required,max=200"`
	Location        string   `json:"location" validate:"required,max=200"`
	RadiusMiles     *float64 `json:"radius_miles" validate:"required,gte=1,lte=30"`
	ReviewThreshold *int     `json:"review_threshold" validate:"omitempty,gte=0"`
	ReviewPolicy    string   `json:"review_policy" validate:"omitempty,oneof=min max minimum maximum"`
}

// Normalize trims text fields and fills defaults for omitted values.
// An explicit radius of 0 is kept so Validate rejects it.
func (r *SearchRequest) Normalize() {
	r.Keyword = strings.TrimSpace(r.Keyword)
	r.Location = strings.TrimSpace(r.Location)
	r.ReviewPolicy = strings.ToLower(strings.TrimSpace(r.ReviewPolicy))
	if r.RadiusMiles == nil {
		m := float64(DefaultRadiusMiles)
		r.RadiusMiles = &m
	}
	if r.ReviewThreshold == nil {
		t := DefaultReviewThreshold
		r.ReviewThreshold = &t
	}
}

// FieldError describes one failed validation rule.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// Validate checks the request against its struct tags.
func (r *SearchRequest) Validate() []FieldError {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "request", Rule: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field: jsonName(fe.StructField()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// Radius returns the requested radius in miles, or the default when omitted.
func (r *SearchRequest) Radius() float64 {
	if r.RadiusMiles == nil {
		return DefaultRadiusMiles
	}
	return *r.RadiusMiles
}

// Filter builds the review filter, falling back to def when no policy was given.
func (r *SearchRequest) Filter(def domain.ReviewPolicy) (domain.ReviewFilter, error) {
	policy := def
	if r.ReviewPolicy != "" {
		p, err := domain.ParseReviewPolicy(r.ReviewPolicy)
		if err != nil {
			return domain.ReviewFilter{}, fmt.Errorf("search request: %w", err)
		}
		policy = p
	}

	threshold := DefaultReviewThreshold
	if r.ReviewThreshold != nil {
		threshold = *r.ReviewThreshold
	}
	return domain.ReviewFilter{Policy: policy, Threshold: threshold}, nil
}

func jsonName(field string) string {
	switch field {
	case "Keyword":
		return "keyword"
	case "Location":
		return "location"
	case "RadiusMiles":
		return "radius_miles"
	case "ReviewThreshold":
		return "review_threshold"
	case "ReviewPolicy":
		return "review_policy"
	}
	return field
}

type PlaceResponse struct {
	PlaceID    string   `json:"place_id"`
	Name       string   `json:"name"`
	Website    string   `json:"website"`
	Address    string   `json:"address"`
	Phone      string   `json:"phone"`
	Reviews    int      `json:"reviews"`
	Rating     *float64 `json:"rating"`
	Categories string   `json:"categories"`
	PriceLevel *int     `json:"price_level"`
}

type FilterResponse struct {
	Policy    domain.ReviewPolicy `json:"policy"`
	Threshold int                 `json:"threshold"`
	Skipped   bool                `json:"skipped"`
}

type SearchResponse struct {
	Keyword      string          `json:"keyword"`
	Location     string          `json:"location"`
	Lat          float64         `json:"lat"`
	Lng          float64         `json:"lng"`
	RadiusMeters float64         `json:"radius_meters"`
	Pages        int             `json:"pages"`
	Candidates   int             `json:"candidates"`
	Total        int             `json:"total"`
	Filter       FilterResponse  `json:"filter"`
	Notices      []string        `json:"notices"`
	Results      []PlaceResponse `json:"results"`
}

// NewSearchResponse maps a report onto its JSON shape.
func NewSearchResponse(report *domain.SearchReport) SearchResponse {
	res := SearchResponse{
		Keyword:      report.Keyword,
		Location:     report.Location,
		Lat:          report.Coordinates.Lat,
		Lng:          report.Coordinates.Lng,
		RadiusMeters: report.RadiusMeters,
		Pages:        report.Pages,
		Candidates:   report.Candidates,
		Total:        len(report.Records),
		Filter: FilterResponse{
			Policy:    report.Filter.Policy,
			Threshold: report.Filter.Threshold,
			Skipped:   report.FilterSkipped,
		},
		Notices: report.Notices(),
		Results: make([]PlaceResponse, 0, len(report.Results)),
	}
	for _, r := range report.Results {
		res.Results = append(res.Results, PlaceResponse{
			PlaceID:    r.PlaceID,
			Name:       r.Name,
			Website:    r.Website,
			Address:    r.Address,
			Phone:      r.Phone,
			Reviews:    r.Reviews,
			Rating:     r.Rating,
			Categories: r.Categories,
			PriceLevel: r.PriceLevel,
		})
	}
	return res
}
