// Package models defines data structures for keyword-anchored extraction.
package models

import (
	"encoding/json"
	"math"
	"strconv"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	// KindEmpty marks a blank cell or a position outside the grid.
	KindEmpty Kind = iota
	// KindText marks a text value.
	KindText
	// KindNumber marks a numeric value.
	KindNumber
)

// String returns a human-readable name for the Kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Value is a cell value: Text, Number or Empty.
type Value struct {
	Kind   Kind
	Text   string
	Number float64
}

// Empty is the absent value.
var Empty = Value{}

// Text returns a text Value.
func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// Number returns a numeric Value.
func Number(f float64) Value {
	return Value{Kind: KindNumber, Number: f}
}

// IsEmpty reports whether v is the absent value.
func (v Value) IsEmpty() bool {
	return v.Kind == KindEmpty
}

// String returns the string form used for keyword comparison and string-mode output.
// Empty values render as "".
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	default:
		return ""
	}
}

// MarshalJSON encodes text as a JSON string, numbers as JSON numbers and Empty as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindText:
		return json.Marshal(v.Text)
	case KindNumber:
		return json.Marshal(v.Number)
	default:
		return []byte("null"), nil
	}
}

// ParseValue converts raw cell text into a Value.
// Numeric text becomes a Number, blank text becomes Empty, everything else stays Text.
func ParseValue(s string) Value {
	if s == "" {
		return Empty
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return Number(f)
	}
	return Text(s)
}
