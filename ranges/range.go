// SPDX-License-Identifier: MIT

package ranges

import (
	"iter"

	"github.com/katalvlaran/matrixviews/grid"
	"github.com/katalvlaran/matrixviews/iterators"
	"github.com/katalvlaran/matrixviews/storage"
)

// Range is a bounded walk along direction D.
//
// Fields holding extents come first: a zero-size extent at the end of a
// struct would be padded, at the front it costs nothing.
type Range[T any, D grid.Direction, P storage.Reader[T], R grid.Extent, C grid.Extent] struct {
	rows    R          // row extent, fixed or dynamic
	columns C          // column extent, fixed or dynamic
	start   grid.Index // first position
	proxy   P          // storage capability handed to every iterator
}

// Compile-time check that Range satisfies the skeleton's constraints.
var _ = RBegin[int, iterators.Iterator[int, grid.Row, storage.Proxy[int]],
	Range[int, grid.Row, storage.Proxy[int], grid.Dynamic, grid.Dynamic],
	*iterators.Iterator[int, grid.Row, storage.Proxy[int]]]

// New returns a range whose extents are both supplied at runtime.
//
//	rng := ranges.New[float64](grid.Row{}, grid.At(0, 0), proxy, 3, 4)
func New[T any, D grid.Direction, P storage.Reader[T]](_ D, start grid.Index, proxy P, rows, columns int) Range[T, D, P, grid.Dynamic, grid.Dynamic] {
	return build[T, D, P, grid.Dynamic, grid.Dynamic](start, proxy, rows, columns)
}

// NewFixed returns a range whose extents are both carried by R and C.
//
//	rng := ranges.NewFixed[float64, Three, Four](grid.Row{}, grid.At(0, 0), proxy)
func NewFixed[T any, R grid.Extent, C grid.Extent, D grid.Direction, P storage.Reader[T]](_ D, start grid.Index, proxy P) Range[T, D, P, R, C] {
	return build[T, D, P, R, C](start, proxy, 0, 0)
}

// NewFixedRows returns a range with a type-level row extent and a runtime
// column extent.
func NewFixedRows[T any, R grid.Extent, D grid.Direction, P storage.Reader[T]](_ D, start grid.Index, proxy P, columns int) Range[T, D, P, R, grid.Dynamic] {
	return build[T, D, P, R, grid.Dynamic](start, proxy, 0, columns)
}

// NewFixedColumns returns a range with a runtime row extent and a
// type-level column extent.
func NewFixedColumns[T any, C grid.Extent, D grid.Direction, P storage.Reader[T]](_ D, start grid.Index, proxy P, rows int) Range[T, D, P, grid.Dynamic, C] {
	return build[T, D, P, grid.Dynamic, C](start, proxy, rows, 0)
}

// build is the single construction path. Fixed extents ignore their
// argument (see grid.Make).
func build[T any, D grid.Direction, P storage.Reader[T], R grid.Extent, C grid.Extent](start grid.Index, proxy P, rows, columns int) Range[T, D, P, R, C] {
	return Range[T, D, P, R, C]{
		rows:    grid.Make[R](rows),
		columns: grid.Make[C](columns),
		start:   start,
		proxy:   proxy,
	}
}

// Begin returns an iterator at the start coordinate.
// Complexity: O(1).
func (r Range[T, D, P, R, C]) Begin() iterators.Iterator[T, D, P] {
	var d D
	return iterators.New[T](d, r.start, r.proxy)
}

// End returns Begin advanced by the direction's length.
// Complexity: O(1).
func (r Range[T, D, P, R, C]) End() iterators.Iterator[T, D, P] {
	var d D
	return r.Begin().Add(d.Length(r.start, r.rows.Get(), r.columns.Get()))
}

// SSize is the signed element count.
func (r Range[T, D, P, R, C]) SSize() int {
	return SSize[iterators.Iterator[T, D, P]](r)
}

// Size is the unsigned element count.
func (r Range[T, D, P, R, C]) Size() uint {
	return Size[iterators.Iterator[T, D, P]](r)
}

// Empty reports whether the range has no elements.
func (r Range[T, D, P, R, C]) Empty() bool {
	return Empty[iterators.Iterator[T, D, P]](r)
}

// RBegin returns a reverse iterator reading the last element.
func (r Range[T, D, P, R, C]) RBegin() iterators.Reverse[T, iterators.Iterator[T, D, P], *iterators.Iterator[T, D, P]] {
	return RBegin[T, iterators.Iterator[T, D, P]](r)
}

// REnd returns the reverse past-the-end iterator.
func (r Range[T, D, P, R, C]) REnd() iterators.Reverse[T, iterators.Iterator[T, D, P], *iterators.Iterator[T, D, P]] {
	return REnd[T, iterators.Iterator[T, D, P]](r)
}

// At reads the i-th element. i is not checked against SSize.
func (r Range[T, D, P, R, C]) At(i int) (T, error) {
	return r.Begin().At(i)
}

// Start returns the first coordinate.
func (r Range[T, D, P, R, C]) Start() grid.Index {
	return r.start
}

// Rows returns the row extent.
func (r Range[T, D, P, R, C]) Rows() int {
	return r.rows.Get()
}

// Columns returns the column extent.
func (r Range[T, D, P, R, C]) Columns() int {
	return r.columns.Get()
}

// Proxy returns the range's copy of the storage proxy.
func (r Range[T, D, P, R, C]) Proxy() P {
	return r.proxy
}

// Values yields every element front to back.
func (r Range[T, D, P, R, C]) Values() iter.Seq2[T, error] {
	return Values[T, iterators.Iterator[T, D, P]](r)
}

// Backward yields every element back to front.
func (r Range[T, D, P, R, C]) Backward() iter.Seq2[T, error] {
	return Backward[T, iterators.Iterator[T, D, P]](r)
}

// Indices yields every coordinate front to back without dereferencing.
func (r Range[T, D, P, R, C]) Indices() iter.Seq[grid.Index] {
	return Indices[iterators.Iterator[T, D, P]](r)
}

// Collect reads every element into a new slice.
func (r Range[T, D, P, R, C]) Collect() ([]T, error) {
	return Collect[T, iterators.Iterator[T, D, P]](r)
}

// Find returns the offset of the first element satisfying pred, or -1.
func (r Range[T, D, P, R, C]) Find(pred func(T) bool) (int, error) {
	return Find[T, iterators.Iterator[T, D, P]](r, pred)
}

// Search binary-searches an ordered range; see the package-level Search.
func (r Range[T, D, P, R, C]) Search(pred func(T) bool) (int, error) {
	return Search[T, iterators.Iterator[T, D, P]](r, pred)
}
