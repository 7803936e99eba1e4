package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected Value
	}{
		{"123", Number(123)},
		{"123.45", Number(123.45)},
		{"-100", Number(-100)},
		{"hello", Text("hello")},
		{"NaN", Text("NaN")},
		{"Inf", Text("Inf")},
		{"", Empty},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseValue(tt.input), "ParseValue(%q)", tt.input)
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "100", Number(100).String())
	assert.Equal(t, "200.5", Number(200.5).String())
	assert.Equal(t, "SUB-TOTAL", Text("SUB-TOTAL").String())
	assert.Equal(t, "", Empty.String())
	assert.Equal(t, "number", KindNumber.String())
}

func TestValueJSON(t *testing.T) {
	data, err := json.Marshal(map[string]Value{"a": Text("x"), "b": Number(1.5), "c": Empty})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": "x", "b": 1.5, "c": null}`, string(data))
}

func TestGrid(t *testing.T) {
	g := NewGrid([][]Value{
		{Text("a")},
		{},
		{Number(1), Empty, Text("c")},
	})

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, Text("a"), g.Cell(1, 1))
	assert.Equal(t, Empty, g.Cell(1, 3), "short rows are padded")
	assert.Equal(t, Empty, g.Cell(0, 1))
	assert.Equal(t, Empty, g.Cell(4, 1))

	sub := g.Slice(2, 3, 2, 5)
	assert.Equal(t, Coordinate{Row: 2, Col: 2}, sub.Origin)
	assert.Equal(t, 2, sub.Rows())
	assert.Equal(t, 2, sub.Cols())
	assert.Equal(t, Text("c"), sub.Cell(2, 2))

	assert.Equal(t, []CellRow{{R: 3, C: map[string]Value{"3": Text("c")}}}, sub.CellRows())

	nested := sub.Slice(2, 2, 2, 2)
	assert.Equal(t, Coordinate{Row: 3, Col: 3}, nested.Origin)
	assert.Equal(t, Text("c"), nested.Cell(1, 1))

	inverted := g.Slice(3, 1, 1, 3)
	assert.Equal(t, 0, inverted.Rows())
	assert.Equal(t, 0, inverted.Cols())
}

func TestCoordinateString(t *testing.T) {
	assert.Equal(t, "R57C2", Coordinate{Row: 57, Col: 2}.String())
}
