package exscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/exscan-go/pkg/exscan/models"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain", "Quantity", "quantity"},
		{"Surrounding whitespace", "  Price ($) \t", "price ($)"},
		{"Inner whitespace kept", "Product  Description", "product  description"},
		{"Already normalized", "sub-total", "sub-total"},
		{"Full case folding", "STRASSE Straße", "strasse strasse"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeText(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, NormalizeText(got), "normalization must be idempotent")
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, models.Text("total"), Normalize(models.Text(" TOTAL ")))
	assert.Equal(t, models.Number(12.5), Normalize(models.Number(12.5)))
	assert.Equal(t, models.Empty, Normalize(models.Empty))

	v := Normalize(models.Text("Mixed Case"))
	assert.Equal(t, v, Normalize(v))
}
