// Package grid defines the leaf primitives shared by every view in
// github.com/katalvlaran/matrixviews.
//
// What:
//
//   - Index is a signed (row, column) coordinate, the unit of position.
//   - Row, Column, Diagonal and Antidiagonal are zero-size direction tags.
//     The Direction constraint closes the set: any other type is rejected
//     at compile time, and the per-direction arithmetic is resolved by
//     instantiation rather than by a runtime switch.
//   - Cell is a value holder that is either a zero-size compile-time
//     constant or a runtime value behind the same Get accessor. Extent is
//     the int-valued Cell used for row and column bounds.
//
// Why:
//
//   - Iterators and ranges stay plain values: copying one never allocates.
//   - Fixed extents are part of the type and cost no bytes.
//
// Direction arithmetic (a unit step moves the iteration axis by 1):
//
//	Row           column += n            a.Column − b.Column
//	Column        row += n               a.Row − b.Row
//	Diagonal      row += n, column += n  a.Row − b.Row
//	Antidiagonal  row += n, column −= n  a.Row − b.Row
//
// Complexity:
//
//   - Every operation in this package is O(1) and allocation free.
package grid
