package exscan

import (
	"strings"

	"github.com/ukaji3/exscan-go/pkg/exscan/models"
	"golang.org/x/text/cases"
)

// NormalizeText trims surrounding whitespace and case-folds s.
func NormalizeText(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Normalize canonicalizes a text value for comparison. Numbers and Empty pass through.
func Normalize(v models.Value) models.Value {
	if v.Kind != models.KindText {
		return v
	}
	return models.Text(NormalizeText(v.Text))
}
