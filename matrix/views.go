// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/matrixviews/grid"
	"github.com/katalvlaran/matrixviews/ranges"
	"github.com/katalvlaran/matrixviews/storage"
)

// Read-only views over a Dense, one type per direction.
//
// Rows and Columns of a range report the extents it was built with. For
// RowRange the column extent is shifted by the start row, and for
// ColumnRange the row extent is shifted by the start column (see RowView
// and ColumnView), so they can exceed the matrix shape. Use Dense.Rows and
// Dense.Cols for the shape.
type (
	RowRange          = ranges.Range[float64, grid.Row, storage.ConstProxy[float64], grid.Dynamic, grid.Dynamic]
	ColumnRange       = ranges.Range[float64, grid.Column, storage.ConstProxy[float64], grid.Dynamic, grid.Dynamic]
	DiagonalRange     = ranges.Range[float64, grid.Diagonal, storage.ConstProxy[float64], grid.Dynamic, grid.Dynamic]
	AntidiagonalRange = ranges.Range[float64, grid.Antidiagonal, storage.ConstProxy[float64], grid.Dynamic, grid.Dynamic]
)

// Entry is one visited cell of a walk.
type Entry struct {
	At    grid.Index
	Value float64
}

// Directions lists the names Walk and ParseDirection accept.
var Directions = []string{"row", "column", "diagonal", "antidiagonal"}

// ParseDirection normalizes a direction name or returns ErrUnknownDirection.
func ParseDirection(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, d := range Directions {
		if n == d {
			return d, nil
		}
	}

	return "", fmt.Errorf("ParseDirection(%q): %w", name, ErrUnknownDirection)
}

// Proxy exposes the storage for writing: elements are *float64.
func (m *Dense) Proxy() storage.Proxy[*float64] {
	return storage.New(m.Ref)
}

// ConstProxy exposes the storage read-only.
func (m *Dense) ConstProxy() storage.ConstProxy[float64] {
	return storage.Const(m.Proxy())
}

// checkStart rejects a view start outside the matrix.
func (m *Dense) checkStart(method string, start grid.Index) error {
	if !m.Contains(start) {
		return denseErrorf(method, start.Row, start.Column, ErrOutOfRange)
	}

	return nil
}

// RowView walks row start.Row from start.Column to the last column.
//
// A row range measures its length as columnExtent − start.Row, so the
// column extent handed to the range is shifted by start.Row to land on
// the right edge. The range's Columns() therefore reports
// Cols − start.Column + start.Row, e.g. 5 for RowView((2,1)) on a 3×4 matrix.
// Complexity: O(1).
func (m *Dense) RowView(start grid.Index) (RowRange, error) {
	if err := m.checkStart("RowView", start); err != nil {
		return RowRange{}, err
	}
	columns := m.c - start.Column + start.Row

	return ranges.New[float64](grid.Row{}, start, m.ConstProxy(), m.r, columns), nil
}

// ColumnView walks column start.Column from start.Row to the last row.
// The row extent is shifted by start.Column, mirroring RowView, so the
// range's Rows() reports Rows − start.Row + start.Column.
// Complexity: O(1).
func (m *Dense) ColumnView(start grid.Index) (ColumnRange, error) {
	if err := m.checkStart("ColumnView", start); err != nil {
		return ColumnRange{}, err
	}
	rows := m.r - start.Row + start.Column

	return ranges.New[float64](grid.Column{}, start, m.ConstProxy(), rows, m.c), nil
}

// DiagonalView walks down-right from start until an edge.
// Complexity: O(1).
func (m *Dense) DiagonalView(start grid.Index) (DiagonalRange, error) {
	if err := m.checkStart("DiagonalView", start); err != nil {
		return DiagonalRange{}, err
	}

	return ranges.New[float64](grid.Diagonal{}, start, m.ConstProxy(), m.r, m.c), nil
}

// AntidiagonalView walks down-left from start until an edge.
// Complexity: O(1).
func (m *Dense) AntidiagonalView(start grid.Index) (AntidiagonalRange, error) {
	if err := m.checkStart("AntidiagonalView", start); err != nil {
		return AntidiagonalRange{}, err
	}

	return ranges.New[float64](grid.Antidiagonal{}, start, m.ConstProxy(), m.r, m.c), nil
}

// Walk visits the cells of the named direction from start, optionally in
// reverse, and returns them with their coordinates.
// Stage 1 (Validate): parse the direction, check start.
// Stage 2 (Execute): build the typed view and drain it.
// Complexity: O(length of the walk).
func (m *Dense) Walk(direction string, start grid.Index, reverse bool) ([]Entry, error) {
	dir, err := ParseDirection(direction)
	if err != nil {
		return nil, err
	}

	switch dir {
	case "row":
		rng, err := m.RowView(start)
		if err != nil {
			return nil, err
		}
		return drain(rng, reverse)
	case "column":
		rng, err := m.ColumnView(start)
		if err != nil {
			return nil, err
		}
		return drain(rng, reverse)
	case "diagonal":
		rng, err := m.DiagonalView(start)
		if err != nil {
			return nil, err
		}
		return drain(rng, reverse)
	default:
		rng, err := m.AntidiagonalView(start)
		if err != nil {
			return nil, err
		}
		return drain(rng, reverse)
	}
}

// drain reads every cell of rng, front to back or back to front.
func drain[D grid.Direction](rng ranges.Range[float64, D, storage.ConstProxy[float64], grid.Dynamic, grid.Dynamic], reverse bool) ([]Entry, error) {
	out := make([]Entry, 0, max(rng.SSize(), 0))

	if reverse {
		rend := rng.REnd()
		for it := rng.RBegin(); it.Less(rend); it.Inc() {
			v, err := it.Value()
			if err != nil {
				return nil, err
			}
			out = append(out, Entry{At: it.Base().Sub(1).Position(), Value: v})
		}

		return out, nil
	}

	end := rng.End()
	for it := rng.Begin(); it.Less(end); it.Inc() {
		v, err := it.Value()
		if err != nil {
			return nil, err
		}
		out = append(out, Entry{At: it.Position(), Value: v})
	}

	return out, nil
}
