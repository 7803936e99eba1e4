// Package output serializes extraction results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/exscan-go/pkg/exscan/models"
)

// ToJSON serializes a document.
func ToJSON(doc *models.Document, pretty bool) ([]byte, error) {
	return Marshal(doc, pretty)
}

// GridView is the JSON shape of a grid: its bounds in sheet coordinates plus the
// non-empty rows.
type GridView struct {
	Area models.Area      `json:"area"`
	Rows []models.CellRow `json:"rows"`
}

// GridToJSON serializes a grid as sparse rows.
func GridToJSON(g *models.Grid, pretty bool) ([]byte, error) {
	view := GridView{
		Area: models.Area{
			R1: g.Origin.Row,
			C1: g.Origin.Col,
			R2: g.Origin.Row + g.Rows() - 1,
			C2: g.Origin.Col + g.Cols() - 1,
		},
		Rows: g.CellRows(),
	}
	if view.Rows == nil {
		view.Rows = []models.CellRow{}
	}
	return Marshal(view, pretty)
}

// CoordinatesToJSON serializes keyword matches.
func CoordinatesToJSON(coords []models.Coordinate, pretty bool) ([]byte, error) {
	if coords == nil {
		coords = []models.Coordinate{}
	}
	return Marshal(coords, pretty)
}

// ValueToJSON serializes a single cell value.
func ValueToJSON(v models.Value, pretty bool) ([]byte, error) {
	return Marshal(v, pretty)
}

// Marshal serializes any result as compact or indented JSON.
func Marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
