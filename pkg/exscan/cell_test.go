package exscan

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/exscan-go/pkg/exscan/models"
)

func TestGetCell_SummaryOffset(t *testing.T) {
	s, _ := newMemScanner(t, quotationCells())

	v, err := s.GetCell(At(57, 2), WithColOffset(2))
	require.NoError(t, err)
	assert.Equal(t, models.Number(600), v)

	v, err = s.GetCell(At(57, 2), Offset(1, 2))
	require.NoError(t, err)
	assert.Equal(t, models.Number(54), v)

	text, err := s.GetCellString(At(57, 2), WithColOffset(2))
	require.NoError(t, err)
	assert.Equal(t, "600", text)
}

func TestGetCell_Defaults(t *testing.T) {
	s, _ := newMemScanner(t, cells{at(1, 1): models.Text("A1"), at(2, 3): models.Text("C2")})

	v, err := s.GetCell()
	require.NoError(t, err)
	assert.Equal(t, models.Text("A1"), v)

	v, err = s.GetCell(WithRowOffset(1), WithColOffset(2))
	require.NoError(t, err)
	assert.Equal(t, models.Text("C2"), v)
}

func TestGetCell_InvalidArguments(t *testing.T) {
	s, l := newMemScanner(t, quotationCells())

	tests := []struct {
		name string
		opts []CellOption
		want error
	}{
		{"Negative offsets", []CellOption{At(5, 5), Offset(-1, -1)}, ErrInvalidOffset},
		{"Negative column offset", []CellOption{At(5, 5), WithColOffset(-1)}, ErrInvalidOffset},
		{"Zero base row", []CellOption{At(0, 3)}, ErrInvalidPosition},
		{"Negative base column", []CellOption{At(3, -2)}, ErrInvalidPosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.GetCell(tt.opts...)
			assert.ErrorIs(t, err, tt.want)

			_, err = s.GetCellString(tt.opts...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Equal(t, 0, l.tableLoads, "arguments are rejected before any load")
}

func TestGetCell_OutOfRange(t *testing.T) {
	s, _ := newMemScanner(t, quotationCells())

	for _, opts := range [][]CellOption{
		{At(1000, 1)},
		{At(1, 1000)},
		{At(60, 16), Offset(1, 1)},
		{At(60, 16), WithCellBackend(), Offset(1, 0)},
	} {
		v, err := s.GetCell(opts...)
		require.NoError(t, err)
		assert.True(t, v.IsEmpty())

		text, err := s.GetCellString(opts...)
		require.NoError(t, err)
		assert.Equal(t, "", text)
	}
}

func TestGetCell_EmptyCell(t *testing.T) {
	s, _ := newMemScanner(t, quotationCells())

	v, err := s.GetCell(At(1, 1))
	require.NoError(t, err)
	assert.Equal(t, models.Empty, v)
}

func TestGetCell_FormulaBackend(t *testing.T) {
	c := quotationCells()
	c[at(60, 4)] = models.Number(654)
	s, l := newMemScanner(t, c)
	l.formulas[at(60, 4)] = "=SUM(D57:D58)"

	v, err := s.GetCell(At(60, 4), WithFormula())
	require.NoError(t, err)
	assert.Equal(t, models.Text("=SUM(D57:D58)"), v)

	// without formula text, the cell backend returns the computed value
	v, err = s.GetCell(At(60, 4), WithCellBackend())
	require.NoError(t, err)
	assert.Equal(t, models.Number(654), v)

	// a plain cell asked for its formula yields its value
	v, err = s.GetCell(At(57, 2), WithFormula())
	require.NoError(t, err)
	assert.Equal(t, models.Text("SUB-TOTAL"), v)

	assert.Equal(t, 1, l.cellLoads)
	assert.Equal(t, 0, l.tableLoads, "formula reads never touch the bulk table")
}

func TestGetCell_DegradesToEmpty(t *testing.T) {
	c := quotationCells()
	s, l := newMemScanner(t, c)
	l.panicAt = &models.Coordinate{Row: 57, Col: 4}

	v, err := s.GetCell(At(57, 4), WithCellBackend())
	require.NoError(t, err)
	assert.True(t, v.IsEmpty())

	s2, l2 := newMemScanner(t, c)
	l2.tableErr = errors.New("unreadable")
	l2.cellsErr = errors.New("locked")

	v, err = s2.GetCell(At(57, 4))
	require.NoError(t, err)
	assert.True(t, v.IsEmpty())

	text, err := s2.GetCellString(At(57, 4), WithFormula())
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestGetCell_Debug(t *testing.T) {
	logger, hook := quietLogger()
	s := New("mem.xlsx", WithLoader(newMemLoader(quotationCells())), WithLogger(logger))

	_, err := s.GetCell(At(57, 2), WithColOffset(2), WithDebug())
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "resolved cell", entry.Message)
	assert.Equal(t, Coordinate{Row: 57, Col: 4}, entry.Data["target"])
	assert.Equal(t, "600", entry.Data["value"])
}

func TestClose(t *testing.T) {
	c := quotationCells()
	s, l := newMemScanner(t, c)

	// closing before anything was opened is a no-op
	require.NoError(t, s.Close())

	v, err := s.GetCell(At(57, 4), WithCellBackend())
	require.NoError(t, err)
	assert.Equal(t, models.Number(600), v)

	require.NoError(t, s.Close())
	assert.True(t, l.closed)

	// the accessor is not reopened after Close; the bulk table still answers
	v, err = s.GetCell(At(57, 4), WithCellBackend())
	require.NoError(t, err)
	assert.True(t, v.IsEmpty())
	assert.Equal(t, 1, l.cellLoads)

	v, err = s.GetCell(At(57, 4))
	require.NoError(t, err)
	assert.Equal(t, models.Number(600), v)
}

func TestGetCell_NumericLookingTextXLSX(t *testing.T) {
	path := writeXLSX(t, cells{
		at(1, 1): models.Text("018956"),
		at(1, 2): models.Text("1.50"),
		at(2, 1): models.Number(18956),
	}, nil)
	logger, _ := quietLogger()
	s := New(path, WithLogger(logger))
	defer s.Close()

	coords, err := s.LocateKeyword("018956", true, Unbounded)
	require.NoError(t, err)
	assert.Equal(t, []Coordinate{at(1, 1)}, coords)

	coords, err = s.LocateKeyword("1.50", true, Unbounded)
	require.NoError(t, err)
	assert.Equal(t, []Coordinate{at(1, 2)}, coords)

	text, err := s.GetCellString(At(1, 1))
	require.NoError(t, err)
	assert.Equal(t, "018956", text)

	bulk, err := s.GetCell(At(1, 1))
	require.NoError(t, err)
	cell, err := s.GetCell(At(1, 1), WithCellBackend())
	require.NoError(t, err)
	assert.Equal(t, models.Text("018956"), bulk)
	assert.Equal(t, bulk, cell, "both backends agree")

	grid, err := s.GetRange(RangeQuery{})
	require.NoError(t, err)
	assert.Equal(t, models.Text("1.50"), grid.Cell(1, 2))
	assert.Equal(t, models.Number(18956), grid.Cell(2, 1))
}
