package exscan

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/exscan-go/pkg/exscan/models"
)

// GetCell resolves the cell at base + offset and returns its native value.
//
// Out-of-range targets, blank cells and any failure inside the lookup all yield
// models.Empty. Only invalid arguments are reported: a base row or column below 1
// (ErrInvalidPosition) or a negative offset (ErrInvalidOffset).
func (s *Scanner) GetCell(opts ...CellOption) (models.Value, error) {
	q := defaultCellQuery()
	for _, opt := range opts {
		opt(&q)
	}
	if err := q.validate(); err != nil {
		return models.Empty, err
	}
	return s.resolveCell(q), nil
}

// GetCellString is GetCell in string mode: Empty becomes "".
func (s *Scanner) GetCellString(opts ...CellOption) (string, error) {
	v, err := s.GetCell(opts...)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func (q cellQuery) validate() error {
	if q.baseRow <= 0 || q.baseCol <= 0 {
		return fmt.Errorf("%w: base (%d, %d) must be >= 1", ErrInvalidPosition, q.baseRow, q.baseCol)
	}
	if q.rowOffset < 0 || q.colOffset < 0 {
		return fmt.Errorf("%w: offset (%d, %d) must be >= 0", ErrInvalidOffset, q.rowOffset, q.colOffset)
	}
	return nil
}

func (s *Scanner) resolveCell(q cellQuery) models.Value {
	row, col := q.baseRow+q.rowOffset, q.baseCol+q.colOffset
	backend := BackendBulk
	if q.formula || !q.bulk {
		backend = BackendCells
	}

	entry := s.log().WithFields(logrus.Fields{
		"base":    Coordinate{Row: q.baseRow, Col: q.baseCol},
		"offset":  Coordinate{Row: q.rowOffset, Col: q.colOffset},
		"target":  Coordinate{Row: row, Col: col},
		"backend": backend,
	})

	v, err := s.lookup(backend, row, col, q.formula)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			entry.WithError(err).Warn("backend unavailable, returning empty")
		} else {
			entry.WithError(err).Debug("cell lookup failed, returning empty")
		}
		v = models.Empty
	}

	if q.debug {
		entry.WithField("value", v.String()).Info("resolved cell")
	}
	return v
}

// lookup reads one cell from the chosen backend. A panic inside a backend is turned
// into an error so that cell resolution degrades to Empty.
func (s *Scanner) lookup(backend Backend, row, col int, formula bool) (v models.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = models.Empty, fmt.Errorf("%s backend panicked: %v", backend, r)
		}
	}()
	if backend == BackendCells {
		return s.cellFromAccessor(row, col, formula)
	}
	return s.cellFromTable(row, col)
}

func (s *Scanner) cellFromTable(row, col int) (models.Value, error) {
	table, err := s.Table()
	if err != nil {
		return models.Empty, err
	}
	return table.Cell(row, col), nil
}

func (s *Scanner) cellFromAccessor(row, col int, formula bool) (models.Value, error) {
	cells, err := s.Cells()
	if err != nil {
		return models.Empty, err
	}
	if row > cells.MaxRow() || col > cells.MaxCol() {
		return models.Empty, nil
	}
	if formula {
		text, err := cells.Formula(row, col)
		if err != nil {
			return models.Empty, err
		}
		if text != "" {
			return models.Text(text), nil
		}
	}
	return cells.Cell(row, col)
}
