package parser

import (
	"github.com/ukaji3/exscan-go/pkg/exscan/models"
	"github.com/xuri/excelize/v2"
)

// ReadTable reads a sheet into a rectangular bulk table.
// Every row is data; no header row is inferred. Cached formula results are read, never
// the formula text. Cells keep their stored type, so text such as "00123" stays text.
func ReadTable(f *excelize.File, sheetName string) (*models.Grid, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	values := make([][]models.Value, len(rows))
	for rowIdx, row := range rows {
		cells := make([]models.Value, len(row))
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			name, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			if cells[colIdx], err = typedValue(f, sheetName, name, cellValue); err != nil {
				return nil, err
			}
		}
		values[rowIdx] = cells
	}
	return models.NewGrid(values), nil
}
