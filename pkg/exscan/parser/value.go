package parser

import (
	"github.com/ukaji3/exscan-go/pkg/exscan/models"
	"github.com/xuri/excelize/v2"
)

// typedValue converts the raw value of the named cell using its stored type.
// String-typed cells stay text even when they look numeric; booleans render as TRUE/FALSE.
func typedValue(f *excelize.File, sheet, name, raw string) (models.Value, error) {
	if raw == "" {
		return models.Empty, nil
	}
	typ, err := f.GetCellType(sheet, name)
	if err != nil {
		return models.Empty, err
	}
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError, excelize.CellTypeDate:
		return models.Text(raw), nil
	case excelize.CellTypeBool:
		if raw == "1" || raw == "TRUE" {
			return models.Text("TRUE"), nil
		}
		return models.Text("FALSE"), nil
	default:
		return models.ParseValue(raw), nil
	}
}
