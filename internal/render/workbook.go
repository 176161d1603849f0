package render

import (
	"business-finder/internal/domain"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Businesses"

// WriteWorkbook writes the records as an XLSX workbook with a single sheet.
// Website cells that hold a URL are written as external hyperlinks.
func WriteWorkbook(w io.Writer, rs domain.ResultSet) error {
	f, err := buildWorkbook(rs)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// SaveWorkbook writes the workbook to path.
func SaveWorkbook(path string, rs domain.ResultSet) error {
	f, err := buildWorkbook(rs)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %q: %w", path, err)
	}
	return nil
}

func buildWorkbook(rs domain.ResultSet) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("build workbook: rename sheet: %w", err)
	}

	header := make([]interface{}, 0, len(Columns))
	for _, c := range Columns {
		header = append(header, c)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("build workbook: header: %w", err)
	}

	linkStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "1265BE", Underline: "single"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("build workbook: link style: %w", err)
	}

	for i, r := range rs {
		rowNum := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, rowNum)

		values := []interface{}{
			r.Name, r.Website, r.Address, r.Phone,
			r.Reviews, ratingCell(r.Rating), r.Categories, priceLevelCell(r.PriceLevel),
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			f.Close()
			return nil, fmt.Errorf("build workbook: row %d: %w", i+1, err)
		}

		if !r.HasWebsite() {
			continue
		}
		linkCell, _ := excelize.CoordinatesToCellName(websiteColumn+1, rowNum)
		if err := f.SetCellHyperLink(SheetName, linkCell, r.Website, "External"); err != nil {
			f.Close()
			return nil, fmt.Errorf("build workbook: hyperlink row %d: %w", i+1, err)
		}
		if err := f.SetCellStyle(SheetName, linkCell, linkCell, linkStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("build workbook: link style row %d: %w", i+1, err)
		}
	}

	return f, nil
}

func ratingCell(r *float64) interface{} {
	if r == nil {
		return domain.Unavailable
	}
	return *r
}

func priceLevelCell(p *int) interface{} {
	if p == nil {
		return domain.Unavailable
	}
	return *p
}
