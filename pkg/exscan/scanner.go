package exscan

import (
	"github.com/sirupsen/logrus"
	"github.com/ukaji3/exscan-go/pkg/exscan/models"
	"github.com/ukaji3/exscan-go/pkg/exscan/parser"
)

// Coordinate is a 1-based (row, col) cell location.
type Coordinate = models.Coordinate

// NoAnchor is returned by consensus resolution when no anchor can be derived.
const NoAnchor = 0

// Loader materializes the two grid representations of a spreadsheet file.
type Loader interface {
	// LoadTable reads the whole sheet into a bulk table.
	LoadTable(path, sheet string) (*models.Grid, error)
	// OpenCells opens the sheet for cell-by-cell, formula-aware access.
	OpenCells(path, sheet string) (CellAccessor, error)
}

// CellAccessor is the formula-preserving representation of a sheet.
type CellAccessor interface {
	// Cell returns the computed value at a 1-based position.
	Cell(row, col int) (models.Value, error)
	// Formula returns the formula text at a 1-based position, or "" for plain values.
	Formula(row, col int) (string, error)
	MaxRow() int
	MaxCol() int
	// PrintArea returns the sheet's print area when one is defined.
	PrintArea() (models.Area, bool)
	Close() error
}

// excelizeLoader adapts parser.ExcelizeLoader to Loader.
type excelizeLoader struct {
	parser.ExcelizeLoader
}

func (l excelizeLoader) OpenCells(path, sheet string) (CellAccessor, error) {
	a, err := l.ExcelizeLoader.OpenCells(path, sheet)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Scanner answers keyword and cell queries against one spreadsheet file.
//
// The bulk table and the cell accessor are loaded lazily, each at most once, and cached
// for the Scanner's lifetime. A failed load is cached as well. A Scanner is not safe for
// concurrent use; give each goroutine its own.
type Scanner struct {
	path   string
	sheet  string
	loader Loader
	logger *logrus.Logger

	table    *models.Grid
	tableErr error

	cells    CellAccessor
	cellsErr error
}

// New creates a Scanner for the file at path. Nothing is read until the first query.
func New(path string, opts ...Option) *Scanner {
	s := &Scanner{
		path:   path,
		loader: excelizeLoader{},
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the file path.
func (s *Scanner) Path() string { return s.path }

// Sheet returns the requested sheet name ("" for the active sheet).
func (s *Scanner) Sheet() string { return s.sheet }

func (s *Scanner) log() *logrus.Entry {
	return s.logger.WithFields(logrus.Fields{"path": s.path, "sheet": s.sheet})
}

// Table returns the bulk table, loading it on first use.
func (s *Scanner) Table() (*models.Grid, error) {
	if s.table != nil || s.tableErr != nil {
		return s.table, s.tableErr
	}
	table, err := s.loader.LoadTable(s.path, s.sheet)
	if err != nil {
		s.tableErr = &LoadError{Path: s.path, Backend: BackendBulk, Err: err}
		return nil, s.tableErr
	}
	s.table = table
	s.log().WithFields(logrus.Fields{"rows": table.Rows(), "cols": table.Cols()}).Debug("loaded bulk table")
	return s.table, nil
}

// Cells returns the cell accessor, opening it on first use.
func (s *Scanner) Cells() (CellAccessor, error) {
	if s.cells != nil || s.cellsErr != nil {
		return s.cells, s.cellsErr
	}
	cells, err := s.loader.OpenCells(s.path, s.sheet)
	if err != nil {
		s.cellsErr = &LoadError{Path: s.path, Backend: BackendCells, Err: err}
		return nil, s.cellsErr
	}
	s.cells = cells
	s.log().WithFields(logrus.Fields{"max_row": cells.MaxRow(), "max_col": cells.MaxCol()}).Debug("opened cell accessor")
	return s.cells, nil
}

// Close releases the file handle held by the cell accessor, if one was opened.
// The cached bulk table stays usable.
func (s *Scanner) Close() error {
	if s.cells == nil {
		return nil
	}
	err := s.cells.Close()
	s.cells = nil
	s.cellsErr = ErrClosed
	return err
}
