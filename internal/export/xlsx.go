// Package export writes a parsed table out as an XLSX workbook.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ToXLSX writes headers and rows to a single-sheet workbook at
// outputFile, header in row 1. Cell values stay opaque text.
func ToXLSX(headers []string, rows [][]string, outputFile string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	if err := writeRow(f, sheet, 1, headers); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}
	for i, row := range rows {
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(outputFile); err != nil {
		return fmt.Errorf("save %s: %w", outputFile, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	values := make([]interface{}, len(fields))
	for i, v := range fields {
		values[i] = v
	}
	return f.SetSheetRow(sheet, cell, &values)
}
