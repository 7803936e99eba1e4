package exscan

import (
	"fmt"

	"github.com/ukaji3/exscan-go/pkg/exscan/models"
)

// GetRange returns an independent copy of the inclusive rectangle selected by q.
// Omitted bounds default to the grid's first or last row/column, ends past the grid are
// clipped, and an inverted rectangle yields an empty grid. Per-cell types are preserved.
func (s *Scanner) GetRange(q RangeQuery) (*models.Grid, error) {
	if q.StartRow < 0 || q.EndRow < 0 || q.StartCol < 0 || q.EndCol < 0 {
		return nil, fmt.Errorf("%w: range bounds must be >= 1 or omitted", ErrInvalidPosition)
	}
	table, err := s.Table()
	if err != nil {
		return nil, err
	}

	r1, r2 := orDefault(q.StartRow, 1), orDefault(q.EndRow, table.Rows())
	c1, c2 := orDefault(q.StartCol, 1), orDefault(q.EndCol, table.Cols())
	return table.Slice(r1, r2, c1, c2), nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
