package exscan

import (
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exscan-go/pkg/exscan/models"
	"github.com/xuri/excelize/v2"
)

type cells map[models.Coordinate]models.Value

func at(row, col int) models.Coordinate {
	return models.Coordinate{Row: row, Col: col}
}

// rowsOf lays out sparse cells as dense rows sized to the largest coordinate.
func rowsOf(c cells) [][]models.Value {
	maxRow, maxCol := 0, 0
	for pos := range c {
		maxRow = max(maxRow, pos.Row)
		maxCol = max(maxCol, pos.Col)
	}
	rows := make([][]models.Value, maxRow)
	for i := range rows {
		rows[i] = make([]models.Value, maxCol)
	}
	for pos, v := range c {
		rows[pos.Row-1][pos.Col-1] = v
	}
	return rows
}

// memLoader serves grids from memory and counts loads.
type memLoader struct {
	rows      [][]models.Value
	formulas  map[models.Coordinate]string
	printArea *models.Area
	tableErr  error
	cellsErr  error
	panicAt   *models.Coordinate

	tableLoads int
	cellLoads  int
	closed     bool
}

func newMemLoader(c cells) *memLoader {
	return &memLoader{rows: rowsOf(c), formulas: map[models.Coordinate]string{}}
}

func (l *memLoader) LoadTable(path, sheet string) (*models.Grid, error) {
	l.tableLoads++
	if l.tableErr != nil {
		return nil, l.tableErr
	}
	return models.NewGrid(l.rows), nil
}

func (l *memLoader) OpenCells(path, sheet string) (CellAccessor, error) {
	l.cellLoads++
	if l.cellsErr != nil {
		return nil, l.cellsErr
	}
	return &memCells{loader: l, grid: models.NewGrid(l.rows)}, nil
}

type memCells struct {
	loader *memLoader
	grid   *models.Grid
}

func (c *memCells) Cell(row, col int) (models.Value, error) {
	if p := c.loader.panicAt; p != nil && p.Row == row && p.Col == col {
		panic("corrupt cell")
	}
	return c.grid.Cell(row, col), nil
}

func (c *memCells) Formula(row, col int) (string, error) {
	return c.loader.formulas[at(row, col)], nil
}

func (c *memCells) MaxRow() int { return c.grid.Rows() }
func (c *memCells) MaxCol() int { return c.grid.Cols() }

func (c *memCells) PrintArea() (models.Area, bool) {
	if c.loader.printArea == nil {
		return models.Area{}, false
	}
	return *c.loader.printArea, true
}

func (c *memCells) Close() error {
	c.loader.closed = true
	return nil
}

// quietLogger returns a logger whose entries are captured instead of printed.
func quietLogger() (*logrus.Logger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logger, hook
}

func newMemScanner(t *testing.T, c cells) (*Scanner, *memLoader) {
	t.Helper()
	l := newMemLoader(c)
	logger, _ := quietLogger()
	return New("mem.xlsx", WithLoader(l), WithLogger(logger)), l
}

// quotationCells is a quotation sheet: header block, a line-item table anchored on
// row 10 and totals starting at row 57.
func quotationCells() cells {
	return cells{
		at(6, 10):  models.Text("QUOTATION"),
		at(6, 2):   models.Text("Acme Pte Ltd"),
		at(7, 2):   models.Text("1 Harbour Road"),
		at(9, 11):  models.Text("ST-2025-03-002"),
		at(12, 11): models.Text("SGD"),
		at(10, 2):  models.Text("Product Description"),
		at(10, 9):  models.Text("Quantity"),
		at(10, 13): models.Text("Price ($)"),
		at(11, 2):  models.Text("Load Cell"),
		at(11, 9):  models.Number(2),
		at(11, 13): models.Number(150),
		at(12, 2):  models.Text("Model: LC-200"),
		at(13, 2):  models.Text("S/N: 88123"),
		at(14, 2):  models.Text("Indicator"),
		at(14, 9):  models.Number(1),
		at(14, 13): models.Number(300),
		at(57, 1):  models.Text("E. & O.E."),
		at(57, 2):  models.Text("SUB-TOTAL"),
		at(57, 4):  models.Number(600),
		at(58, 2):  models.Text("9% GST"),
		at(58, 4):  models.Number(54),
		at(59, 2):  models.Text("TOTAL AMOUNT"),
		at(59, 4):  models.Number(654),
		at(60, 16): models.Text("outside print width"),
	}
}

// writeXLSX saves c to an xlsx file and returns its path. formulas are written after
// values.
func writeXLSX(t *testing.T, c cells, formulas map[models.Coordinate]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	for pos, v := range c {
		name, err := excelize.CoordinatesToCellName(pos.Col, pos.Row)
		require.NoError(t, err)
		switch v.Kind {
		case models.KindText:
			require.NoError(t, f.SetCellValue(sheet, name, v.Text))
		case models.KindNumber:
			require.NoError(t, f.SetCellValue(sheet, name, v.Number))
		}
	}
	for pos, formula := range formulas {
		name, err := excelize.CoordinatesToCellName(pos.Col, pos.Row)
		require.NoError(t, err)
		require.NoError(t, f.SetCellFormula(sheet, name, formula))
	}

	path := filepath.Join(t.TempDir(), "quotation.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}
