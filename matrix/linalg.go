// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/matrixviews/grid"
	"github.com/katalvlaran/matrixviews/iterators"
	"github.com/katalvlaran/matrixviews/ranges"
	"github.com/katalvlaran/matrixviews/storage"
)

// Iterator types of the read-only views, spelled out for ranges.Reduce.
type (
	rowIter      = iterators.Iterator[float64, grid.Row, storage.ConstProxy[float64]]
	columnIter   = iterators.Iterator[float64, grid.Column, storage.ConstProxy[float64]]
	diagonalIter = iterators.Iterator[float64, grid.Diagonal, storage.ConstProxy[float64]]
)

func sum(acc, v float64) float64 { return acc + v }

// MatVec returns y = m·x, one RowView dot product per row.
// Stage 1 (Validate): len(x) must equal Cols.
// Stage 2 (Execute): y[i] = Σ_j m(i,j)·x[j].
// Complexity: O(r*c).
func (m *Dense) MatVec(x []float64) ([]float64, error) {
	if len(x) != m.c {
		return nil, opErrorf("MatVec", fmt.Errorf("len(x)=%d, cols=%d: %w", len(x), m.c, ErrDimensionMismatch))
	}

	y := make([]float64, m.r)
	for i := range y {
		row, err := m.RowView(grid.At(i, 0))
		if err != nil {
			return nil, opErrorf("MatVec", err)
		}
		var j int
		for v, err := range row.Values() {
			if err != nil {
				return nil, opErrorf("MatVec", err)
			}
			y[i] += v * x[j]
			j++
		}
	}

	return y, nil
}

// Transpose returns a new c×r matrix whose row j is column j of m.
// Complexity: O(r*c).
func (m *Dense) Transpose() (*Dense, error) {
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, opErrorf("Transpose", err)
	}
	for j := 0; j < m.c; j++ {
		col, err := m.ColumnView(grid.At(0, j))
		if err != nil {
			return nil, opErrorf("Transpose", err)
		}
		vals, err := col.Collect()
		if err != nil {
			return nil, opErrorf("Transpose", err)
		}
		copy(res.data[j*m.r:(j+1)*m.r], vals)
	}

	return res, nil
}

// Trace returns the sum of the main diagonal.
// Returns ErrNotSquare unless rows == cols.
// Complexity: O(n).
func (m *Dense) Trace() (float64, error) {
	if m.r != m.c {
		return 0, opErrorf("Trace", ErrNotSquare)
	}
	diag, err := m.DiagonalView(grid.At(0, 0))
	if err != nil {
		return 0, opErrorf("Trace", err)
	}

	return ranges.Reduce[float64, float64, diagonalIter](diag, 0, sum)
}

// IsZeroOffDiagonal reports whether every element off the main diagonal
// has |v| ≤ tol. A negative tol is taken by absolute value.
//
// The off-diagonal cells are exactly the diagonals starting at (0,k) and
// (k,0) for k ≥ 1, so each is scanned with a DiagonalView.
// Complexity: O(n²).
func (m *Dense) IsZeroOffDiagonal(tol float64) (bool, error) {
	if m.r != m.c {
		return false, opErrorf("IsZeroOffDiagonal", ErrNotSquare)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return false, opErrorf("IsZeroOffDiagonal", ErrNaNInf)
	}
	tol = math.Abs(tol)
	nonZero := func(v float64) bool { return math.Abs(v) > tol }

	for k := 1; k < m.r; k++ {
		for _, start := range [2]grid.Index{grid.At(0, k), grid.At(k, 0)} {
			diag, err := m.DiagonalView(start)
			if err != nil {
				return false, opErrorf("IsZeroOffDiagonal", err)
			}
			at, err := diag.Find(nonZero)
			if err != nil {
				return false, opErrorf("IsZeroOffDiagonal", err)
			}
			if at >= 0 {
				return false, nil
			}
		}
	}

	return true, nil
}
