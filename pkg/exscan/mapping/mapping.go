// Package mapping describes where document fields live in a quotation or invoice sheet.
package mapping

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Mapping is the field-mapping configuration of one document layout.
type Mapping struct {
	// Header maps each header field to a fixed cell address.
	Header Header `yaml:"header"`
	// Summary anchors each total on its label.
	Summary Summary `yaml:"summary"`
	// Content holds the keyword lists that anchor the line-item table.
	Content Content `yaml:"content"`
	// SearchEndCol bounds keyword scans to columns <= SearchEndCol (0: the sheet's
	// print area if any, else unbounded).
	SearchEndCol int `yaml:"search_end_col,omitempty"`
}

// Header lists the fixed-address header fields. Every field is required.
type Header struct {
	Quotation        string `yaml:"quotation"`
	BillCompany      string `yaml:"bill_company"`
	BillAddress1     string `yaml:"bill_address_1"`
	BillAddress2     string `yaml:"bill_address_2"`
	BillAddress3     string `yaml:"bill_address_3"`
	BillAttention    string `yaml:"bill_attention"`
	BillTel          string `yaml:"bill_tel"`
	DeliverCompany   string `yaml:"deliver_company"`
	DeliverAddress1  string `yaml:"deliver_address_1"`
	DeliverAddress2  string `yaml:"deliver_address_2"`
	DeliverAddress3  string `yaml:"deliver_address_3"`
	DeliverAttention string `yaml:"deliver_attention"`
	DeliverTel       string `yaml:"deliver_tel"`
	QuotationNo      string `yaml:"quotation_no"`
	Date             string `yaml:"date"`
	Currency         string `yaml:"currency"`
	PaymentTerm      string `yaml:"payment_term"`
	SalesPerson      string `yaml:"sales_person"`
	EmailAddress     string `yaml:"email_address"`
}

// Field is a named header field and its cell address.
type Field struct {
	// Key is the configuration key.
	Key string
	// Name is the human-readable field name.
	Name string
	// Cell is the A1-style address.
	Cell string
}

// Fields returns the header fields in document order.
func (h Header) Fields() []Field {
	return []Field{
		{"quotation", "Quotation", h.Quotation},
		{"bill_company", "Bill Company", h.BillCompany},
		{"bill_address_1", "Bill Address 1", h.BillAddress1},
		{"bill_address_2", "Bill Address 2", h.BillAddress2},
		{"bill_address_3", "Bill Address 3", h.BillAddress3},
		{"bill_attention", "Bill Attention", h.BillAttention},
		{"bill_tel", "Bill Tel", h.BillTel},
		{"deliver_company", "Deliver Company", h.DeliverCompany},
		{"deliver_address_1", "Deliver Address 1", h.DeliverAddress1},
		{"deliver_address_2", "Deliver Address 2", h.DeliverAddress2},
		{"deliver_address_3", "Deliver Address 3", h.DeliverAddress3},
		{"deliver_attention", "Deliver Attention", h.DeliverAttention},
		{"deliver_tel", "Deliver Tel", h.DeliverTel},
		{"quotation_no", "Quotation No", h.QuotationNo},
		{"date", "Date", h.Date},
		{"currency", "Currency", h.Currency},
		{"payment_term", "Payment Term", h.PaymentTerm},
		{"sales_person", "Sales Person", h.SalesPerson},
		{"email_address", "Email Address", h.EmailAddress},
	}
}

// Summary lists the label-anchored totals. Every rule is required.
type Summary struct {
	SubTotal    SummaryRule `yaml:"sub_total"`
	GST         SummaryRule `yaml:"gst"`
	TotalAmount SummaryRule `yaml:"total_amount"`
}

// Rules returns the summary rules keyed by configuration key, in document order.
func (s Summary) Rules() []NamedRule {
	return []NamedRule{
		{"sub_total", s.SubTotal},
		{"gst", s.GST},
		{"total_amount", s.TotalAmount},
	}
}

// NamedRule pairs a summary rule with its configuration key.
type NamedRule struct {
	Key  string
	Rule SummaryRule
}

// SummaryRule locates a total relative to its label.
type SummaryRule struct {
	// Label is the keyword marking the total (exact match).
	Label string `yaml:"label"`
	// Direction is where the value sits relative to the label (default: right).
	Direction Direction `yaml:"direction,omitempty"`
	// Offset is the distance from the label along Direction.
	Offset int `yaml:"offset"`
}

// RowCol returns the rule as a (row, column) offset pair.
func (r SummaryRule) RowCol() (int, int) {
	if r.Direction == DirectionBelow {
		return r.Offset, 0
	}
	return 0, r.Offset
}

// Direction is the axis along which a summary offset is applied.
type Direction string

const (
	// DirectionRight applies the offset to the column.
	DirectionRight Direction = "right"
	// DirectionBelow applies the offset to the row.
	DirectionBelow Direction = "below"
)

// UnmarshalYAML accepts only the known directions.
func (d *Direction) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case DirectionRight, "":
		*d = DirectionRight
	case DirectionBelow:
		*d = DirectionBelow
	default:
		return fmt.Errorf("line %d: invalid direction %q (must be right or below)", node.Line, s)
	}
	return nil
}

// Content holds the keyword lists for the line-item table.
type Content struct {
	// FirstRowKeywords anchor the table's header row.
	FirstRowKeywords []string `yaml:"first_row_keywords"`
	// EndRowKeywords close the table at the first row below the header holding any of them.
	EndRowKeywords []string `yaml:"end_row_keywords"`
	// ItemKeywords mark detail lines inside the table (partial match).
	ItemKeywords []string `yaml:"item_keywords,omitempty"`
}

// Default returns the built-in quotation layout.
func Default() Mapping {
	return Mapping{
		Header: Header{
			Quotation:        "J6",
			BillCompany:      "B6",
			BillAddress1:     "B7",
			BillAddress2:     "B8",
			BillAddress3:     "B9",
			BillAttention:    "B10",
			BillTel:          "G10",
			DeliverCompany:   "B12",
			DeliverAddress1:  "B13",
			DeliverAddress2:  "B14",
			DeliverAddress3:  "B15",
			DeliverAttention: "B16",
			DeliverTel:       "G16",
			QuotationNo:      "K9",
			Date:             "K11",
			Currency:         "K12",
			PaymentTerm:      "K13",
			SalesPerson:      "K14",
			EmailAddress:     "K15",
		},
		Summary: Summary{
			SubTotal:    SummaryRule{Label: "SUB-TOTAL", Direction: DirectionRight, Offset: 2},
			GST:         SummaryRule{Label: "9% GST", Direction: DirectionRight, Offset: 2},
			TotalAmount: SummaryRule{Label: "TOTAL AMOUNT", Direction: DirectionRight, Offset: 2},
		},
		Content: Content{
			FirstRowKeywords: []string{"Product Description", "Quantity", "Price ($)"},
			EndRowKeywords:   []string{"SUB-TOTAL"},
			ItemKeywords:     []string{"product", "model", "brand", "capacity", "s/n"},
		},
		SearchEndCol: 14,
	}
}
