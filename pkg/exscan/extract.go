package exscan

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/exscan-go/pkg/exscan/mapping"
	"github.com/ukaji3/exscan-go/pkg/exscan/models"
	"github.com/ukaji3/exscan-go/pkg/exscan/parser"
)

// Extract pulls a structured document out of the scanner's sheet using m.
//
// Header fields come from fixed addresses, the line-item table runs from the row anchored
// by the first-row keywords to the first row below it holding any end-row keyword, and each summary value is read at an
// offset from its label. A missing anchor leaves the corresponding part empty; an
// ambiguous one aborts with *ExtractionError.
func Extract(s *Scanner, m mapping.Mapping) (*models.Document, error) {
	doc := &models.Document{
		BookName: filepath.Base(s.Path()),
		Sheet:    s.Sheet(),
	}
	bound := searchBound(s, m)

	header, err := extractHeader(s, m.Header)
	if err != nil {
		return nil, NewExtractionError("header", err)
	}
	doc.Header = header

	table, err := extractLineItems(s, m.Content, bound)
	if err != nil {
		return nil, NewExtractionError("line_items", err)
	}
	doc.LineItems = table

	if table != nil {
		details, err := extractDetails(s, m.Content.ItemKeywords, table, bound)
		if err != nil {
			return nil, NewExtractionError("details", err)
		}
		doc.Details = details
	}

	summary, err := extractSummary(s, m.Summary, bound)
	if err != nil {
		return nil, NewExtractionError("summary", err)
	}
	doc.Summary = summary

	return doc, nil
}

// searchBound bounds keyword scans by the mapping's end column, or by the sheet's print
// area when the mapping leaves it unset.
func searchBound(s *Scanner, m mapping.Mapping) Bound {
	if m.SearchEndCol > 0 {
		return Bound{EndCol: m.SearchEndCol}
	}
	cells, err := s.Cells()
	if err != nil {
		return Unbounded
	}
	if area, ok := cells.PrintArea(); ok {
		return Bound{EndRow: area.R2, EndCol: area.C2}
	}
	return Unbounded
}

func extractHeader(s *Scanner, h mapping.Header) ([]models.HeaderField, error) {
	fields := h.Fields()
	result := make([]models.HeaderField, 0, len(fields))
	for _, f := range fields {
		coord, err := parser.ParseCell(f.Cell)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		value, err := s.GetCellString(AtCoordinate(coord))
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		result = append(result, models.HeaderField{Name: f.Name, Cell: f.Cell, Value: value})
	}
	return result, nil
}

func extractLineItems(s *Scanner, c mapping.Content, bound Bound) (*models.LineItemTable, error) {
	headerRow, err := s.ConsensusRow(c.FirstRowKeywords, true, bound)
	if err != nil {
		return nil, fmt.Errorf("header row: %w", err)
	}
	if headerRow == NoAnchor {
		s.log().WithField("keywords", c.FirstRowKeywords).Warn("line-item header row not found")
		return nil, nil
	}

	endRow, err := firstRowBelow(s, c.EndRowKeywords, headerRow, bound)
	if err != nil {
		return nil, fmt.Errorf("end row: %w", err)
	}
	if endRow == NoAnchor {
		table, err := s.Table()
		if err != nil {
			return nil, err
		}
		endRow = table.Rows() + 1
	}

	labels, err := s.GetRange(RangeQuery{StartRow: headerRow, EndRow: headerRow, EndCol: bound.EndCol})
	if err != nil {
		return nil, err
	}
	table := &models.LineItemTable{HeaderRow: headerRow, EndRow: endRow}
	seen := make(map[string]bool)
	for col := 1; col <= labels.Cols(); col++ {
		v := labels.Cell(1, col)
		if v.IsEmpty() {
			continue
		}
		label := v.String()
		if seen[label] {
			label = fmt.Sprintf("%s#%d", label, col)
		}
		seen[label] = true
		table.Columns = append(table.Columns, models.Column{Col: col, Label: label})
	}

	body, err := s.GetRange(RangeQuery{StartRow: headerRow + 1, EndRow: endRow - 1, EndCol: bound.EndCol})
	if err != nil {
		return nil, err
	}
	for r := 1; r <= body.Rows(); r++ {
		item := models.LineItem{Row: body.Origin.Row + r - 1, Values: make(map[string]models.Value)}
		for _, column := range table.Columns {
			if v := body.Cell(r, column.Col); !v.IsEmpty() {
				item.Values[column.Label] = v
			}
		}
		if len(item.Values) > 0 {
			table.Items = append(table.Items, item)
		}
	}

	s.log().WithFields(logrus.Fields{
		"header_row": headerRow,
		"end_row":    endRow,
		"items":      len(table.Items),
	}).Debug("extracted line items")
	return table, nil
}

// firstRowBelow returns the first row after the given one on which any keyword matches
// exactly, or NoAnchor.
func firstRowBelow(s *Scanner, keywords []string, after int, bound Bound) (int, error) {
	row := NoAnchor
	for _, kw := range keywords {
		matches, err := s.LocateKeyword(kw, true, bound)
		if err != nil {
			return NoAnchor, err
		}
		for _, m := range matches {
			if m.Row > after && (row == NoAnchor || m.Row < row) {
				row = m.Row
			}
		}
	}
	return row, nil
}

func extractDetails(s *Scanner, keywords []string, table *models.LineItemTable, bound Bound) ([]models.ItemDetail, error) {
	var details []models.ItemDetail
	inner := Bound{EndRow: table.EndRow - 1, EndCol: bound.EndCol}
	for _, kw := range keywords {
		matches, err := s.LocateKeyword(kw, false, inner)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if m.Row <= table.HeaderRow {
				continue
			}
			text, err := s.GetCellString(AtCoordinate(m))
			if err != nil {
				return nil, err
			}
			details = append(details, models.ItemDetail{Keyword: kw, Row: m.Row, Col: m.Col, Text: text})
		}
	}
	return details, nil
}

func extractSummary(s *Scanner, sm mapping.Summary, bound Bound) ([]models.SummaryValue, error) {
	var result []models.SummaryValue
	for _, nr := range sm.Rules() {
		label := nr.Rule.Label
		entry := models.SummaryValue{Label: label}

		row, err := s.ConsensusRow([]string{label}, true, bound)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", nr.Key, err)
		}
		col, err := s.ConsensusCol([]string{label}, true, bound)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", nr.Key, err)
		}
		if row == NoAnchor || col == NoAnchor {
			result = append(result, entry)
			continue
		}

		dr, dc := nr.Rule.RowCol()
		v, err := s.GetCell(At(row, col), Offset(dr, dc))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", nr.Key, err)
		}
		entry.Found = true
		entry.Anchor = &models.Coordinate{Row: row, Col: col}
		entry.Value = v
		result = append(result, entry)
	}
	return result, nil
}
