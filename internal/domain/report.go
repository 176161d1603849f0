package domain

const (
	NoticeNoReviewData  = "No review data available for filtering."
	NoticeNoBusinesses  = "No businesses found for this search term, location, and review threshold."
	NoticeBusinessFound = "Businesses found:"
)

// Outcome of one complete search.
//
// Records is the unfiltered result set; Results is what survives the review
// filter. When Records is empty the filter is skipped and FilterSkipped is set.
type SearchReport struct {
	Keyword       string
	Location      string
	Coordinates   Coordinates
	RadiusMeters  float64
	Filter        ReviewFilter
	Pages         int
	Candidates    int
	Records       ResultSet
	Results       ResultSet
	FilterSkipped bool
}

// Notices returns the user-facing messages for the report, in display order.
func (r *SearchReport) Notices() []string {
	var out []string
	if r.FilterSkipped {
		out = append(out, NoticeNoReviewData)
	}
	if len(r.Results) == 0 {
		out = append(out, NoticeNoBusinesses)
	} else {
		out = append(out, NoticeBusinessFound)
	}
	return out
}
