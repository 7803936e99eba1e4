package mapping

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ukaji3/exscan-go/pkg/exscan/parser"
	"gopkg.in/yaml.v3"
)

// ValidationError lists every problem found in a mapping.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid mapping: " + strings.Join(e.Problems, "; ")
}

// Load reads and validates a YAML mapping file.
func Load(path string) (Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return Mapping{}, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a YAML mapping, rejecting unknown keys, and validates it.
func Parse(r io.Reader) (Mapping, error) {
	var m Mapping
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return Mapping{}, &ValidationError{Problems: []string{"empty mapping"}}
		}
		return Mapping{}, fmt.Errorf("decode mapping: %w", err)
	}
	m.applyDefaults()
	if err := m.Validate(); err != nil {
		return Mapping{}, err
	}
	return m, nil
}

// Marshal encodes the mapping as YAML.
func Marshal(m Mapping) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (m *Mapping) applyDefaults() {
	for _, r := range []*SummaryRule{&m.Summary.SubTotal, &m.Summary.GST, &m.Summary.TotalAmount} {
		if r.Direction == "" {
			r.Direction = DirectionRight
		}
	}
}

// Validate checks the mapping against the required key set.
func (m Mapping) Validate() error {
	var problems []string

	for _, f := range m.Header.Fields() {
		if strings.TrimSpace(f.Cell) == "" {
			problems = append(problems, fmt.Sprintf("header.%s is required", f.Key))
			continue
		}
		if _, err := parser.ParseCell(f.Cell); err != nil {
			problems = append(problems, fmt.Sprintf("header.%s: %v", f.Key, err))
		}
	}

	for _, nr := range m.Summary.Rules() {
		if strings.TrimSpace(nr.Rule.Label) == "" {
			problems = append(problems, fmt.Sprintf("summary.%s.label is required", nr.Key))
		}
		if nr.Rule.Offset < 0 {
			problems = append(problems, fmt.Sprintf("summary.%s.offset must be >= 0", nr.Key))
		}
		switch nr.Rule.Direction {
		case DirectionRight, DirectionBelow:
		default:
			problems = append(problems, fmt.Sprintf("summary.%s.direction %q is invalid", nr.Key, nr.Rule.Direction))
		}
	}

	if len(m.Content.FirstRowKeywords) == 0 {
		problems = append(problems, "content.first_row_keywords is required")
	}
	if len(m.Content.EndRowKeywords) == 0 {
		problems = append(problems, "content.end_row_keywords is required")
	}
	if m.SearchEndCol < 0 {
		problems = append(problems, "search_end_col must be >= 0")
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
