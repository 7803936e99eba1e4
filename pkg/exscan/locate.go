package exscan

import (
	"fmt"
	"strings"
)

// LocateKeyword returns every cell whose normalized text equals keyword (exact) or
// contains it (partial), scanning the bulk table in row-major order within bound.
// No match is an empty result, not an error. A negative bound is ErrInvalidPosition.
func (s *Scanner) LocateKeyword(keyword string, exact bool, bound Bound) ([]Coordinate, error) {
	if bound.EndRow < 0 || bound.EndCol < 0 {
		return nil, fmt.Errorf("%w: bound (%d, %d) must be >= 1 or 0 for unbounded",
			ErrInvalidPosition, bound.EndRow, bound.EndCol)
	}
	table, err := s.Table()
	if err != nil {
		return nil, err
	}

	endRow, endCol := table.Rows(), table.Cols()
	if bound.EndRow > 0 {
		endRow = min(endRow, bound.EndRow)
	}
	if bound.EndCol > 0 {
		endCol = min(endCol, bound.EndCol)
	}

	want := NormalizeText(keyword)
	var matches []Coordinate
	for row := 1; row <= endRow; row++ {
		for col := 1; col <= endCol; col++ {
			v := table.Cell(row, col)
			if v.IsEmpty() {
				continue
			}
			got := NormalizeText(v.String())
			if (exact && got == want) || (!exact && strings.Contains(got, want)) {
				matches = append(matches, Coordinate{Row: row, Col: col})
			}
		}
	}
	return matches, nil
}
