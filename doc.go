// Package matrixviews walks two-dimensional storage along rows, columns,
// diagonals and anti-diagonals without copying it.
//
// 🚀 What is matrixviews?
//
//	A small set of generic packages that layer on top of each other:
//		• grid:      Index, the four direction tags and compile-time or runtime extents
//		• storage:   proxies that turn an Index into a value or a reference
//		• iterators: random-access iterators tagged with a direction, plus a reverse adapter
//		• ranges:    [begin, end) views with sizes, reverse iteration and iter.Seq adapters
//		• matrix:    a row-major Dense matrix exposing all four views
//
// Built on the views:
//
//	gridgraph/      islands and 0-1 BFS expansions over a Dense, stepping by direction tags
//	dtw/            Dynamic Time Warping filled one anti-diagonal wave at a time
//	cmd/matrixwalk  CLI printing any view of a matrix loaded from YAML or JSON
//
// Quick ASCII example, anti-diagonal from (0,2) in a 3×3 matrix:
//
//	. . x
//	. x .
//	x . .
//
// Fixed extents are zero-size types, so a fixed range costs exactly an
// Index plus its proxy.
package matrixviews
