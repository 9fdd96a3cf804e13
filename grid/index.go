// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Index is a 2D coordinate. Negative values are legal: views never
// validate positions against real storage.
type Index struct {
	Row    int // row coordinate
	Column int // column coordinate
}

// At is shorthand for Index{Row: row, Column: column}.
func At(row, column int) Index {
	return Index{Row: row, Column: column}
}

// Add returns i shifted by (dr, dc). The receiver is not modified.
// Complexity: O(1).
func (i Index) Add(dr, dc int) Index {
	return Index{Row: i.Row + dr, Column: i.Column + dc}
}

// String implements fmt.Stringer as "(row,column)".
func (i Index) String() string {
	return fmt.Sprintf("(%d,%d)", i.Row, i.Column)
}
