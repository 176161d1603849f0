// Package render turns a ResultSet into display formats.
package render

import (
	"business-finder/internal/domain"
	"strconv"
)

// Column headers, in display order.
var Columns = []string{
	"Name",
	"Website",
	"Address",
	"Phone",
	"Reviews",
	"Rating",
	"Categories",
	"Price Level",
}

const websiteColumn = 1

func ratingText(r *float64) string {
	if r == nil {
		return domain.Unavailable
	}
	return strconv.FormatFloat(*r, 'f', -1, 64)
}

func priceLevelText(p *int) string {
	if p == nil {
		return domain.Unavailable
	}
	return strconv.Itoa(*p)
}

// row returns the display cells of a record, aligned with Columns.
func row(r domain.PlaceRecord) []string {
	return []string{
		r.Name,
		r.Website,
		r.Address,
		r.Phone,
		strconv.Itoa(r.Reviews),
		ratingText(r.Rating),
		r.Categories,
		priceLevelText(r.PriceLevel),
	}
}
