package models

// Document is the structured content extracted from a quotation or invoice sheet.
type Document struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheet is the name of the sheet that was scanned.
	Sheet string `json:"sheet,omitempty"`
	// Header holds the fixed-address fields in mapping order.
	Header []HeaderField `json:"header"`
	// LineItems is the keyword-anchored line-item table.
	LineItems *LineItemTable `json:"line_items,omitempty"`
	// Details holds cells inside the line-item block matching an item keyword.
	Details []ItemDetail `json:"details,omitempty"`
	// Summary holds the label-anchored totals.
	Summary []SummaryValue `json:"summary,omitempty"`
}

// HeaderField is a field read from a fixed cell address.
type HeaderField struct {
	// Name is the human-readable field name.
	Name string `json:"name"`
	// Cell is the A1-style address the value was read from.
	Cell string `json:"cell"`
	// Value is the cell content in string form.
	Value string `json:"value"`
}

// LineItemTable is the block of rows between the header row and the end row.
type LineItemTable struct {
	// HeaderRow is the row holding the column labels (1-based).
	HeaderRow int `json:"header_row"`
	// EndRow is the row closing the table (1-based, exclusive).
	EndRow int `json:"end_row"`
	// Columns lists the labelled columns of the header row.
	Columns []Column `json:"columns"`
	// Items lists the non-empty rows of the table.
	Items []LineItem `json:"items"`
}

// Column is a labelled column of a line-item table.
type Column struct {
	// Col is the column number (1-based).
	Col int `json:"col"`
	// Label is the header text as it appears in the sheet.
	Label string `json:"label"`
}

// LineItem is one row of a line-item table, keyed by column label.
type LineItem struct {
	// Row is the row number (1-based).
	Row int `json:"row"`
	// Values maps column label to cell value.
	Values map[string]Value `json:"values"`
}

// ItemDetail is a cell inside the line-item block that contains an item keyword.
type ItemDetail struct {
	// Keyword is the item keyword that matched.
	Keyword string `json:"keyword"`
	// Row is the row number (1-based).
	Row int `json:"row"`
	// Col is the column number (1-based).
	Col int `json:"col"`
	// Text is the cell content in string form.
	Text string `json:"text"`
}

// SummaryValue is a total read relative to its label.
type SummaryValue struct {
	// Label is the summary label searched for.
	Label string `json:"label"`
	// Found reports whether the label was anchored.
	Found bool `json:"found"`
	// Anchor is the label's position when found.
	Anchor *Coordinate `json:"anchor,omitempty"`
	// Value is the cell read at the anchor plus offset.
	Value Value `json:"value"`
}
