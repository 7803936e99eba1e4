package models

import "strconv"

// CellRow represents a single row of non-empty cells.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (string) to cell value.
	C map[string]Value `json:"c"`
}

// colKey formats a 1-based column index as a CellRow key.
func colKey(col int) string {
	return strconv.Itoa(col)
}
