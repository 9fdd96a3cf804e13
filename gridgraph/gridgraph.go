package gridgraph

import (
	"iter"

	"github.com/katalvlaran/matrixviews/grid"
	"github.com/katalvlaran/matrixviews/matrix"
)

// New constructs a GridGraph over a private copy of m.
// Returns ErrEmptyGrid if m is nil.
// Complexity: O(W×H) time and memory.
func New(m *matrix.Dense, opts Options) (*GridGraph, error) {
	if m == nil {
		return nil, ErrEmptyGrid
	}
	steps := []step{grid.Row{}.Advance, grid.Column{}.Advance}
	if opts.Conn == Conn8 {
		steps = append(steps, grid.Diagonal{}.Advance, grid.Antidiagonal{}.Advance)
	}

	return &GridGraph{
		cells:     m.Clone(),
		conn:      opts.Conn,
		threshold: opts.Threshold,
		steps:     steps,
	}, nil
}

// From2D builds a GridGraph from row-major values.
// Errors from matrix.NewFromRows are returned unchanged.
func From2D(rows [][]float64, opts Options) (*GridGraph, error) {
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, err
	}

	return New(m, opts)
}

// Rows returns the number of rows.
func (gg *GridGraph) Rows() int { return gg.cells.Rows() }

// Cols returns the number of columns.
func (gg *GridGraph) Cols() int { return gg.cells.Cols() }

// Conn returns the connectivity the graph was built with.
func (gg *GridGraph) Conn() Connectivity { return gg.conn }

// IsLand reports whether i is inside the grid and at or above the threshold.
// Complexity: O(1).
func (gg *GridGraph) IsLand(i grid.Index) bool {
	v, err := gg.cells.At(i.Row, i.Column)

	return err == nil && v >= gg.threshold
}

// Neighbors yields every in-bounds cell one step away from i, in both
// senses of each direction.
// Complexity: O(d).
func (gg *GridGraph) Neighbors(i grid.Index) iter.Seq[grid.Index] {
	return func(yield func(grid.Index) bool) {
		for _, s := range gg.steps {
			for _, n := range [2]int{1, -1} {
				j := s(i, n)
				if !gg.cells.Contains(j) {
					continue
				}
				if !yield(j) {
					return
				}
			}
		}
	}
}

// Cells yields every cell index in row-major order.
// Complexity: O(W×H).
func (gg *GridGraph) Cells() iter.Seq[grid.Index] {
	return func(yield func(grid.Index) bool) {
		for r := 0; r < gg.cells.Rows(); r++ {
			row, err := gg.cells.RowView(grid.At(r, 0))
			if err != nil {
				return
			}
			for i := range row.Indices() {
				if !yield(i) {
					return
				}
			}
		}
	}
}

// key maps i to a row-major offset.
func (gg *GridGraph) key(i grid.Index) int {
	return i.Row*gg.cells.Cols() + i.Column
}
