// Package matrix provides a dense, row-major backing store for the
// direction views in github.com/katalvlaran/matrixviews.
//
// What:
//
//   - Dense stores rows×cols float64 values in one flat slice.
//   - At/Set are bounds checked and return ErrOutOfRange instead of
//     panicking; Ref returns nil for an out-of-range coordinate.
//   - Proxy and ConstProxy expose the storage to iterators and ranges as
//     storage.Proxy[*float64] and storage.ConstProxy[float64].
//   - RowView, ColumnView, DiagonalView and AntidiagonalView build ranges
//     sized from the matrix shape; Walk does the same from a runtime
//     direction name.
//
// Why:
//
//   - The view core trusts its extents and never checks bounds. Dense is
//     where bounds live: a view over a Dense can step outside the matrix
//     only by returning storage.ErrNilReference, never by reading foreign
//     memory.
//
// Complexity:
//
//   - NewDense, NewFromRows, Clone, String: O(rows·cols).
//   - At, Set, Ref, view construction: O(1).
//   - Walk: O(length of the walk).
//
// Errors:
//
//   - ErrInvalidDimensions: rows or cols is not positive.
//   - ErrNonRectangular: input rows have differing lengths.
//   - ErrOutOfRange: a coordinate is outside the matrix.
//   - ErrUnknownDirection: Walk/ParseDirection got an unknown name.
package matrix
