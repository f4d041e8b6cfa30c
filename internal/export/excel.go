package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/shreemathi-1/dsrfinal-sub001/internal/report"
)

// Sheet is one report's worth of data for the day-sheet workbook.
type Sheet struct {
	Descriptor *report.Descriptor
	Values     report.Row
}

// BuildDaySheet assembles an Excel workbook with one worksheet per report
// type: the report title, the officer and date header, then one row per
// declared metric leaf. Unsaved reports render with all zeros, matching the
// empty-document contract.
func BuildDaySheet(officerName string, date time.Time, sheets []Sheet) (*excelize.File, error) {
	f := excelize.NewFile()

	for i, s := range sheets {
		name := sheetName(s.Descriptor.ID)
		if i == 0 {
			f.SetSheetName("Sheet1", name)
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, fmt.Errorf("creating sheet %s: %w", name, err)
			}
		}

		if err := f.SetCellValue(name, "A1", s.Descriptor.Title); err != nil {
			return nil, fmt.Errorf("writing sheet %s: %w", name, err)
		}
		f.SetCellValue(name, "A2", fmt.Sprintf("Officer: %s", officerName))
		f.SetCellValue(name, "B2", fmt.Sprintf("Date: %s", date.Format("2006-01-02")))
		f.SetCellValue(name, "A3", "Metric")
		f.SetCellValue(name, "B3", "Value")

		for rowIdx, field := range s.Descriptor.Fields {
			var v float64
			if s.Values != nil {
				v = s.Values[field.Column]
			}
			cellRow := rowIdx + 4
			f.SetCellValue(name, fmt.Sprintf("A%d", cellRow), label(field.Path))
			f.SetCellValue(name, fmt.Sprintf("B%d", cellRow), v)
		}
	}

	return f, nil
}

// sheetName fits a report id into Excel's 31-character sheet name limit.
func sheetName(id string) string {
	if len(id) > 31 {
		return id[:31]
	}
	return id
}

// label renders a dot path as a readable metric label,
// e.g. "financial.onDate.complaints" -> "financial / onDate / complaints".
func label(path string) string {
	return strings.Join(strings.Split(path, "."), " / ")
}
