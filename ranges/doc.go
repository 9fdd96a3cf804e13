// Package ranges implements bounded, direction-tagged views over 2D storage.
//
// What:
//
//   - The skeleton in base.go derives size, emptiness and reverse
//     iteration from any type with matching Begin/End positions.
//   - Range is the tagged view: a start coordinate, a storage proxy and a
//     row and column extent. End is Begin advanced by the direction's
//     length formula.
//   - seq.go adapts any bounded view to iter.Seq/iter.Seq2 and provides
//     Collect, Reduce, Find and Search, so views compose with ordinary Go
//     loops and algorithms without direction-specific code.
//
// Extents:
//
//   - Each axis is either fixed in the type (a zero-size grid.Extent such
//     as `type Four struct{}` with `Get() int { return 4 }`) or dynamic
//     (grid.Dynamic). Fixed axes take no constructor argument and add no
//     bytes to the Range.
//
//     New              both axes dynamic
//     NewFixed         both axes fixed
//     NewFixedRows     rows fixed, columns dynamic
//     NewFixedColumns  columns fixed, rows dynamic
//
// Length per direction:
//
//	Row           columns − start.Row
//	Column        rows − start.Column
//	Diagonal      min(rows − start.Row, columns − start.Column)
//	Antidiagonal  min(rows − start.Row, start.Column + 1)
//
// No bounds checking:
//
//   - Lengths are computed from the extents alone. A start coordinate that
//     is inconsistent with the extents yields positions outside the real
//     storage; detecting that is the accessor's job. A start past the
//     extents gives a negative SSize; such a range iterates nothing.
//
// Complexity:
//
//   - Begin, End, SSize, Size, Empty, RBegin, REnd, At: O(1).
//   - Collect, Reduce, Find: O(n) dereferences. Search: O(log n).
package ranges
