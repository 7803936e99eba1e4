package parser

import (
	"github.com/ukaji3/exscan-go/pkg/exscan/models"
	"github.com/xuri/excelize/v2"
)

// Accessor reads single cells from an open workbook, preserving formula text.
type Accessor struct {
	file   *excelize.File
	sheet  string
	maxRow int
	maxCol int
}

// NewAccessor wraps an open workbook sheet. The extent comes from the sheet dimension,
// or from the data bounds when the dimension is missing or degenerate.
func NewAccessor(f *excelize.File, sheetName string) (*Accessor, error) {
	a := &Accessor{file: f, sheet: sheetName}

	if dim, err := f.GetSheetDimension(sheetName); err == nil && dim != "" {
		if area, err := ParseRange(dim); err == nil && (area.R2 > 1 || area.C2 > 1) {
			a.maxRow, a.maxCol = area.R2, area.C2
			return a, nil
		}
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if area, ok := DataBounds(rows); ok {
		a.maxRow, a.maxCol = area.R2, area.C2
	}
	return a, nil
}

// Sheet returns the sheet name.
func (a *Accessor) Sheet() string { return a.sheet }

// MaxRow returns the last row of the sheet extent.
func (a *Accessor) MaxRow() int { return a.maxRow }

// MaxCol returns the last column of the sheet extent.
func (a *Accessor) MaxCol() int { return a.maxCol }

// Cell returns the computed value at (row, col). Text cells stay text even when they
// look numeric.
func (a *Accessor) Cell(row, col int) (models.Value, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return models.Empty, err
	}
	raw, err := a.file.GetCellValue(a.sheet, name, excelize.Options{RawCellValue: true})
	if err != nil {
		return models.Empty, err
	}
	return typedValue(a.file, a.sheet, name, raw)
}

// Formula returns the formula at (row, col) with a leading "=", or "" when the cell
// holds a plain value.
func (a *Accessor) Formula(row, col int) (string, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	formula, err := a.file.GetCellFormula(a.sheet, name)
	if err != nil || formula == "" {
		return "", err
	}
	return "=" + formula, nil
}

// PrintArea returns the first print area defined for the sheet.
func (a *Accessor) PrintArea() (models.Area, bool) {
	areas := ExtractPrintAreas(a.file)[a.sheet]
	if len(areas) == 0 {
		return models.Area{}, false
	}
	return areas[0], true
}

// Close releases the workbook file handle.
func (a *Accessor) Close() error {
	return a.file.Close()
}
