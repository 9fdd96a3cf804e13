// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/matrixviews/grid"
	"github.com/katalvlaran/matrixviews/ranges"
)

// ColumnMeans returns the mean of each column, reduced over ColumnView.
// Complexity: O(r*c).
func (m *Dense) ColumnMeans() ([]float64, error) {
	means := make([]float64, m.c)
	for j := range means {
		col, err := m.ColumnView(grid.At(0, j))
		if err != nil {
			return nil, opErrorf("ColumnMeans", err)
		}
		s, err := ranges.Reduce[float64, float64, columnIter](col, 0, sum)
		if err != nil {
			return nil, opErrorf("ColumnMeans", err)
		}
		means[j] = s / float64(m.r)
	}

	return means, nil
}

// RowMeans returns the mean of each row, reduced over RowView.
// Complexity: O(r*c).
func (m *Dense) RowMeans() ([]float64, error) {
	means := make([]float64, m.r)
	for i := range means {
		row, err := m.RowView(grid.At(i, 0))
		if err != nil {
			return nil, opErrorf("RowMeans", err)
		}
		s, err := ranges.Reduce[float64, float64, rowIter](row, 0, sum)
		if err != nil {
			return nil, opErrorf("RowMeans", err)
		}
		means[i] = s / float64(m.c)
	}

	return means, nil
}

// CenterColumns returns a copy of m with each column's mean subtracted,
// and the means.
// Stage 1 (Prepare): column means over read-only views.
// Stage 2 (Execute): subtract through writable column views of the copy.
// Complexity: O(r*c).
func (m *Dense) CenterColumns() (*Dense, []float64, error) {
	means, err := m.ColumnMeans()
	if err != nil {
		return nil, nil, err
	}
	out := m.Clone()
	for j, mean := range means {
		// column extent shifted by j, as in ColumnView
		col := ranges.New[*float64](grid.Column{}, grid.At(0, j), out.Proxy(), out.r+j, out.c)
		for p, err := range col.Values() {
			if err != nil {
				return nil, nil, opErrorf("CenterColumns", err)
			}
			*p -= mean
		}
	}

	return out, means, nil
}

// CenterRows returns a copy of m with each row's mean subtracted, and the means.
// Complexity: O(r*c).
func (m *Dense) CenterRows() (*Dense, []float64, error) {
	means, err := m.RowMeans()
	if err != nil {
		return nil, nil, err
	}
	out := m.Clone()
	for i, mean := range means {
		row := ranges.New[*float64](grid.Row{}, grid.At(i, 0), out.Proxy(), out.r, out.c+i)
		for p, err := range row.Values() {
			if err != nil {
				return nil, nil, opErrorf("CenterRows", err)
			}
			*p -= mean
		}
	}

	return out, means, nil
}
