package domain

import (
	"fmt"
	"strings"
)

// Direction of the review-count bound.
type ReviewPolicy string

const (
	// Keep records with at least Threshold reviews.
	ReviewPolicyMin ReviewPolicy = "min"
	// Keep records with at most Threshold reviews.
	ReviewPolicyMax ReviewPolicy = "max"
)

// ParseReviewPolicy accepts "min"/"max" (and the "minimum"/"maximum" spellings).
func ParseReviewPolicy(s string) (ReviewPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min", "minimum":
		return ReviewPolicyMin, nil
	case "max", "maximum":
		return ReviewPolicyMax, nil
	}
	return "", fmt.Errorf("parse review policy: unknown policy %q (want min or max)", s)
}

// Single numeric bound applied to a ResultSet after the search.
type ReviewFilter struct {
	Policy    ReviewPolicy
	Threshold int
}

// Keep reports whether a record passes the bound.
func (f ReviewFilter) Keep(r PlaceRecord) bool {
	if f.Policy == ReviewPolicyMax {
		return r.Reviews <= f.Threshold
	}
	return r.Reviews >= f.Threshold
}

// Apply returns the records passing the bound, preserving order.
// The input is never modified.
func (f ReviewFilter) Apply(rs ResultSet) ResultSet {
	out := make(ResultSet, 0, len(rs))
	for _, r := range rs {
		if f.Keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f ReviewFilter) String() string {
	if f.Policy == ReviewPolicyMax {
		return fmt.Sprintf("reviews <= %d", f.Threshold)
	}
	return fmt.Sprintf("reviews >= %d", f.Threshold)
}
