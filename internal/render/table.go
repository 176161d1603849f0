package render

import (
	"business-finder/internal/domain"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table writes the records as an aligned, tab-separated text table.
func Table(w io.Writer, rs domain.ResultSet) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, strings.Join(Columns, "\t")); err != nil {
		return fmt.Errorf("render table: header: %w", err)
	}
	for i, r := range rs {
		cells := row(r)
		for j, c := range cells {
			// Tabs and newlines would break the column layout.
			cells[j] = strings.Join(strings.Fields(c), " ")
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return fmt.Errorf("render table: row %d: %w", i+1, err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("render table: flush: %w", err)
	}
	return nil
}

// Report writes the notices of a search followed by its table when there are results.
func Report(w io.Writer, report *domain.SearchReport) error {
	for _, n := range report.Notices() {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return fmt.Errorf("render report: %w", err)
		}
	}
	if len(report.Results) == 0 {
		return nil
	}
	return Table(w, report.Results)
}
