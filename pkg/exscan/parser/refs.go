package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/exscan-go/pkg/exscan/models"
	"github.com/xuri/excelize/v2"
)

// ParseCell parses an A1-style address such as "K9" or "$K$9".
func ParseCell(ref string) (models.Coordinate, error) {
	name := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(ref), "$", ""))
	col, row, err := excelize.CellNameToCoordinates(name)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("invalid cell reference %q: %w", ref, err)
	}
	return models.Coordinate{Row: row, Col: col}, nil
}

// ParseRange parses a range such as "$A$1:$D$10". A single cell parses as a one-cell area.
func ParseRange(ref string) (models.Area, error) {
	parts := strings.Split(strings.TrimSpace(ref), ":")
	if len(parts) > 2 {
		return models.Area{}, fmt.Errorf("invalid range reference %q", ref)
	}

	start, err := ParseCell(parts[0])
	if err != nil {
		return models.Area{}, err
	}
	end := start
	if len(parts) == 2 {
		if end, err = ParseCell(parts[1]); err != nil {
			return models.Area{}, err
		}
	}

	return models.Area{
		R1: min(start.Row, end.Row),
		C1: min(start.Col, end.Col),
		R2: max(start.Row, end.Row),
		C2: max(start.Col, end.Col),
	}, nil
}

// ExtractPrintAreas extracts print areas from a workbook.
// Returns a map of sheet name to list of print areas.
func ExtractPrintAreas(f *excelize.File) map[string][]models.Area {
	result := make(map[string][]models.Area)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, "_xlnm.Print_Area") {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName == "" && dn.Scope != "" && dn.Scope != "Workbook" {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result
}

// parsePrintAreaReference parses a print area reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10, comma separated.
func parsePrintAreaReference(ref string) (string, []models.Area) {
	var areas []models.Area
	var sheetName string

	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(part), "="))
		if part == "" {
			continue
		}

		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		if sheetName == "" {
			sheetName = strings.Trim(part[:idx], "'")
		}
		if area, err := ParseRange(part[idx+1:]); err == nil {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}
