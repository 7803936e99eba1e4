// Package exscan locates and extracts keyword-anchored data from spreadsheet grids.
package exscan

import "github.com/sirupsen/logrus"

// Option configures a Scanner.
type Option func(*Scanner)

// WithSheet selects the sheet to scan (default: the workbook's active sheet).
func WithSheet(name string) Option {
	return func(s *Scanner) { s.sheet = name }
}

// WithLoader replaces the excelize-backed grid loader.
func WithLoader(l Loader) Option {
	return func(s *Scanner) { s.loader = l }
}

// WithLogger sets the logger (default: logrus' standard logger).
func WithLogger(l *logrus.Logger) Option {
	return func(s *Scanner) { s.logger = l }
}

// Bound limits a keyword scan to rows <= EndRow and columns <= EndCol.
// A zero component means unbounded on that axis; negative components are rejected.
type Bound struct {
	EndRow int
	EndCol int
}

// Unbounded scans the whole grid.
var Unbounded = Bound{}

// cellQuery holds the resolved arguments of a cell lookup.
type cellQuery struct {
	baseRow   int
	baseCol   int
	rowOffset int
	colOffset int
	formula   bool
	bulk      bool
	debug     bool
}

func defaultCellQuery() cellQuery {
	return cellQuery{baseRow: 1, baseCol: 1, bulk: true}
}

// CellOption configures a cell lookup.
type CellOption func(*cellQuery)

// At sets the base position (default: row 1, column 1).
func At(row, col int) CellOption {
	return func(q *cellQuery) {
		q.baseRow = row
		q.baseCol = col
	}
}

// AtCoordinate sets the base position from a coordinate.
func AtCoordinate(c Coordinate) CellOption {
	return At(c.Row, c.Col)
}

// Offset sets both offsets from the base position (default: 0, 0).
func Offset(rows, cols int) CellOption {
	return func(q *cellQuery) {
		q.rowOffset = rows
		q.colOffset = cols
	}
}

// WithRowOffset sets the row offset from the base position.
func WithRowOffset(rows int) CellOption {
	return func(q *cellQuery) { q.rowOffset = rows }
}

// WithColOffset sets the column offset from the base position.
func WithColOffset(cols int) CellOption {
	return func(q *cellQuery) { q.colOffset = cols }
}

// WithFormula returns formula text where the target holds a formula.
// Formulas are only visible to the cell backend, so this implies WithCellBackend.
func WithFormula() CellOption {
	return func(q *cellQuery) { q.formula = true }
}

// WithCellBackend reads through the cell accessor instead of the bulk table.
func WithCellBackend() CellOption {
	return func(q *cellQuery) { q.bulk = false }
}

// WithDebug logs how the lookup was resolved.
func WithDebug() CellOption {
	return func(q *cellQuery) { q.debug = true }
}

// RangeQuery selects an inclusive rectangle. Zero fields are omitted bounds and default
// to the first or last row/column of the grid.
type RangeQuery struct {
	StartRow int
	EndRow   int
	StartCol int
	EndCol   int
}
