package models

// Grid is a rectangular, read-only table of cell values.
// Row and column arguments of its methods are 1-based and relative to the grid itself;
// Origin records where the grid's first cell sits in the sheet it was copied from.
type Grid struct {
	// Origin is the sheet coordinate of the grid's top-left cell.
	Origin Coordinate
	cells  [][]Value
	cols   int
}

// NewGrid builds a grid from rows of values. Short rows are padded with Empty so that
// every row is as wide as the widest one.
func NewGrid(rows [][]Value) *Grid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	cells := make([][]Value, len(rows))
	for i, row := range rows {
		padded := make([]Value, width)
		copy(padded, row)
		cells[i] = padded
	}
	return &Grid{Origin: Coordinate{Row: 1, Col: 1}, cells: cells, cols: width}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	if g == nil {
		return 0
	}
	return len(g.cells)
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	if g == nil {
		return 0
	}
	return g.cols
}

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 1 && col >= 1 && row <= g.Rows() && col <= g.Cols()
}

// Cell returns the value at (row, col), or Empty outside the grid.
func (g *Grid) Cell(row, col int) Value {
	if !g.InBounds(row, col) {
		return Empty
	}
	return g.cells[row-1][col-1]
}

// Slice returns an independent copy of the inclusive rectangle [r1,r2]x[c1,c2].
// Bounds are clipped to the grid; an inverted rectangle yields an empty grid.
func (g *Grid) Slice(r1, r2, c1, c2 int) *Grid {
	r1, c1 = max(r1, 1), max(c1, 1)
	r2, c2 = min(r2, g.Rows()), min(c2, g.Cols())

	out := &Grid{Origin: Coordinate{Row: g.Origin.Row + r1 - 1, Col: g.Origin.Col + c1 - 1}}
	if r1 > r2 || c1 > c2 {
		return out
	}
	out.cols = c2 - c1 + 1
	out.cells = make([][]Value, 0, r2-r1+1)
	for r := r1; r <= r2; r++ {
		row := make([]Value, out.cols)
		copy(row, g.cells[r-1][c1-1:c2])
		out.cells = append(out.cells, row)
	}
	return out
}

// Values returns a copy of the grid as rows of values.
func (g *Grid) Values() [][]Value {
	out := make([][]Value, g.Rows())
	for i, row := range g.cells {
		out[i] = append([]Value(nil), row...)
	}
	return out
}

// CellRows returns the non-empty rows of the grid in sparse form, using sheet coordinates.
func (g *Grid) CellRows() []CellRow {
	var result []CellRow
	for i, row := range g.cells {
		cellMap := make(map[string]Value)
		for j, v := range row {
			if v.IsEmpty() {
				continue
			}
			cellMap[colKey(g.Origin.Col+j)] = v
		}
		if len(cellMap) > 0 {
			result = append(result, CellRow{R: g.Origin.Row + i, C: cellMap})
		}
	}
	return result
}
