// Package parser loads spreadsheet grids from xlsx files.
package parser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ukaji3/exscan-go/pkg/exscan/models"
	"github.com/xuri/excelize/v2"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the requested sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ExcelizeLoader loads grids with excelize. The zero value is ready to use.
type ExcelizeLoader struct{}

// LoadTable reads the whole sheet into a bulk table and releases the file.
// An empty sheet name selects the workbook's active sheet.
func (ExcelizeLoader) LoadTable(path, sheet string) (*models.Grid, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name, err := resolveSheet(f, sheet)
	if err != nil {
		return nil, err
	}
	return ReadTable(f, name)
}

// OpenCells opens the file for cell-by-cell access. The returned Accessor holds the
// file open until Close is called.
func (ExcelizeLoader) OpenCells(path, sheet string) (*Accessor, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	name, err := resolveSheet(f, sheet)
	if err != nil {
		f.Close()
		return nil, err
	}
	a, err := NewAccessor(f, name)
	if err != nil {
		f.Close()
		return nil, err
	}
	return a, nil
}

func openFile(path string) (*excelize.File, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return f, nil
}

// resolveSheet returns sheet if the workbook has it, or the active sheet when sheet is empty.
func resolveSheet(f *excelize.File, sheet string) (string, error) {
	if sheet == "" {
		name := f.GetSheetName(f.GetActiveSheetIndex())
		if name == "" {
			return "", fmt.Errorf("%w: no active sheet", ErrSheetNotFound)
		}
		return name, nil
	}
	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return "", fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}
	return sheet, nil
}
