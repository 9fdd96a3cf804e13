// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/matrixviews/grid"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewFromRows copies a rectangular [][]float64 into a new Dense.
// Stage 1 (Validate): non-empty, every row the same length.
// Stage 2 (Execute): copy row by row into the flat slice.
// Complexity: O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d: %w", i, len(row), cols, ErrNonRectangular)
		}
	}

	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// Contains reports whether (row, col) lies inside the matrix.
func (m *Dense) Contains(i grid.Index) bool {
	return i.Row >= 0 && i.Row < m.r && i.Column >= 0 && i.Column < m.c
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// wrapped with the calling method.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if !m.Contains(grid.At(row, col)) {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Ref returns a pointer to the element at i, or nil when i is outside the
// matrix. The pointer stays valid for the lifetime of m.
// Complexity: O(1).
func (m *Dense) Ref(i grid.Index) *float64 {
	if !m.Contains(i) {
		return nil
	}

	return &m.data[i.Row*m.c+i.Column]
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// String implements fmt.Stringer for easy debugging: one bracketed,
// comma-separated line per row.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// Fill sets every element to v.
// Complexity: O(r*c).
func (m *Dense) Fill(v float64) {
	for i := range m.data {
		m.data[i] = v
	}
}
