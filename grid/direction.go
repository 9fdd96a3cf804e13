// SPDX-License-Identifier: MIT

package grid

// Direction is the closed set of traversal tags. It is usable only as a
// type constraint: the union admits exactly the four tags below, and the
// method set is what iterators and ranges call on a zero value of the tag.
type Direction interface {
	Row | Column | Diagonal | Antidiagonal

	// Advance returns i moved by n unit steps.
	Advance(i Index, n int) Index
	// Distance returns the signed number of unit steps from b to a.
	Distance(a, b Index) int
	// Length returns the number of positions a range starting at start
	// covers under the given extents.
	Length(start Index, rows, columns int) int

	String() string
}

// Row walks a horizontal stripe from left to right.
type Row struct{}

// Column walks a vertical stripe from top to bottom.
type Column struct{}

// Diagonal walks from the top-left corner towards the bottom-right corner.
type Diagonal struct{}

// Antidiagonal walks from the top-right corner towards the bottom-left corner.
type Antidiagonal struct{}

// Advance moves the column by n.
func (Row) Advance(i Index, n int) Index {
	i.Column += n
	return i
}

// Distance compares columns only.
func (Row) Distance(a, b Index) int {
	return a.Column - b.Column
}

// Length is columns − start.Row.
//
// The row coordinate is measured against the column extent. This mirrors the
// established behaviour of row views and is kept as is; see DESIGN.md.
func (Row) Length(start Index, rows, columns int) int {
	return columns - start.Row
}

func (Row) String() string { return "row" }

// Advance moves the row by n.
func (Column) Advance(i Index, n int) Index {
	i.Row += n
	return i
}

// Distance compares rows only.
func (Column) Distance(a, b Index) int {
	return a.Row - b.Row
}

// Length is rows − start.Column (the mirror image of Row.Length).
func (Column) Length(start Index, rows, columns int) int {
	return rows - start.Column
}

func (Column) String() string { return "column" }

// Advance moves both coordinates by n.
func (Diagonal) Advance(i Index, n int) Index {
	i.Row += n
	i.Column += n
	return i
}

// Distance compares rows; columns move in lockstep.
func (Diagonal) Distance(a, b Index) int {
	return a.Row - b.Row
}

// Length stops at whichever edge, bottom or right, comes first.
func (Diagonal) Length(start Index, rows, columns int) int {
	return min(rows-start.Row, columns-start.Column)
}

func (Diagonal) String() string { return "diagonal" }

// Advance moves the row by n and the column by −n.
func (Antidiagonal) Advance(i Index, n int) Index {
	i.Row += n
	i.Column -= n
	return i
}

// Distance compares rows; the column mirrors the row.
func (Antidiagonal) Distance(a, b Index) int {
	return a.Row - b.Row
}

// Length stops at the bottom edge or after column 0, whichever comes first.
func (Antidiagonal) Length(start Index, rows, columns int) int {
	return min(rows-start.Row, start.Column+1)
}

func (Antidiagonal) String() string { return "antidiagonal" }
