package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/bellatrix11176/customer-support-text-mining/pkg/textmining/freq"
)

// writeWorkbook exports both tables as one xlsx workbook with a sheet per
// table, mirroring the CSV exports.
func (e *Emitter) writeWorkbook(path string, all, thresholded freq.Table) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name  string
		table freq.Table
	}{
		{"all_tokens", all},
		{fmt.Sprintf("tokens_ge_%d", e.threshold), thresholded},
	}

	for i, sheet := range sheets {
		if i == 0 {
			// Rename the default sheet rather than leaving it empty.
			if err := f.SetSheetName("Sheet1", sheet.name); err != nil {
				return path, fmt.Errorf("write %s: %w", path, err)
			}
		} else {
			if _, err := f.NewSheet(sheet.name); err != nil {
				return path, fmt.Errorf("write %s: %w", path, err)
			}
		}
		if err := writeSheet(f, sheet.name, sheet.table); err != nil {
			return path, fmt.Errorf("write %s: %w", path, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return path, fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func writeSheet(f *excelize.File, sheet string, table freq.Table) error {
	if err := f.SetSheetRow(sheet, "A1", &[]any{"word", "total"}); err != nil {
		return err
	}
	for i, row := range table {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &[]any{row.Word, row.Total}); err != nil {
			return err
		}
	}
	return nil
}
