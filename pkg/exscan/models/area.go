package models

import "fmt"

// Coordinate is a 1-based cell location.
type Coordinate struct {
	// Row is the row number (1-based).
	Row int `json:"row"`
	// Col is the column number (1-based).
	Col int `json:"col"`
}

// String renders the coordinate as R<row>C<col>.
func (c Coordinate) String() string {
	return fmt.Sprintf("R%dC%d", c.Row, c.Col)
}

// Area represents inclusive cell coordinate bounds.
type Area struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}
