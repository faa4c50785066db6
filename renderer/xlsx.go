package renderer

import (
	"fmt"
	"io"

	"github.com/gguidi/costbasis"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Cost Basis"

// GainsXLSX writes the report as a spreadsheet, same columns as the
// canonical table but with numeric cells so totals can be recomputed in the
// sheet.
func GainsXLSX(w io.Writer, report *costbasis.GainsReport) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if _, err := f.NewSheet(sheetName); err != nil {
		return fmt.Errorf("cannot create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("cannot drop default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return fmt.Errorf("cannot create header style: %w", err)
	}
	for i, label := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, label); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	for i, row := range report.Rows {
		values := xlsxRow(row)
		for j, v := range values {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("cannot write spreadsheet: %w", err)
	}
	return nil
}

// xlsxRow mirrors reportRow with typed cells; nil marks an absent field.
func xlsxRow(row costbasis.Row) []any {
	var granted, disposed, issued, gain any
	switch row.Kind {
	case costbasis.Acquire:
		granted = row.Granted.InexactFloat64()
		issued = row.Units.InexactFloat64()
	case costbasis.Dispose:
		disposed = row.Units.InexactFloat64()
		gain = row.Gain.InexactFloat64()
	}
	return []any{
		row.Kind.String(),
		row.Date.String(),
		granted,
		disposed,
		issued,
		row.PriceForeign.InexactFloat64(),
		row.FxRate.InexactFloat64(),
		row.Pool.Cost.InexactFloat64(),
		gain,
	}
}
