// SPDX-License-Identifier: MIT

package iterators

import (
	"github.com/katalvlaran/matrixviews/grid"
	"github.com/katalvlaran/matrixviews/storage"
)

// Iterator is a position on the one-dimensional walk that direction D
// induces over 2D storage. It holds the current coordinate and a copy of
// the storage proxy, and is freely copyable.
//
// The zero Iterator sits at (0,0) with an empty proxy: it moves and
// compares normally, and Deref returns storage.ErrMissingAccessor.
type Iterator[T any, D grid.Direction, P storage.Reader[T]] struct {
	index grid.Index // current coordinate
	proxy P          // storage capability, copied by value
}

// Compile-time checks that Iterator satisfies the skeleton's constraints.
var (
	_ = At[int, Iterator[int, grid.Row, storage.Proxy[int]], *Iterator[int, grid.Row, storage.Proxy[int]]]
	_ = At[int, Iterator[int, grid.Antidiagonal, storage.ConstProxy[int]], *Iterator[int, grid.Antidiagonal, storage.ConstProxy[int]]]
)

// New returns an iterator at index. The tag only selects D.
//
//	it := iterators.New[float64](grid.Diagonal{}, grid.At(0, 0), proxy)
func New[T any, D grid.Direction, P storage.Reader[T]](_ D, index grid.Index, proxy P) Iterator[T, D, P] {
	return Iterator[T, D, P]{index: index, proxy: proxy}
}

// Advance moves the iterator n unit steps along D.
// Complexity: O(1).
func (it *Iterator[T, D, P]) Advance(n int) {
	var d D
	it.index = d.Advance(it.index, n)
}

// Distance returns it − other in unit steps along D.
// Complexity: O(1).
func (it Iterator[T, D, P]) Distance(other Iterator[T, D, P]) int {
	var d D
	return d.Distance(it.index, other.index)
}

// Deref reads the element at the current coordinate through the proxy.
func (it Iterator[T, D, P]) Deref() (T, error) {
	return it.proxy.Access(it.index)
}

// Position returns the current coordinate.
func (it Iterator[T, D, P]) Position() grid.Index {
	return it.index
}

// Proxy returns the iterator's copy of the storage proxy.
func (it Iterator[T, D, P]) Proxy() P {
	return it.proxy
}

// Inc is ++it.
func (it *Iterator[T, D, P]) Inc() *Iterator[T, D, P] { return Increment(it) }

// Dec is --it.
func (it *Iterator[T, D, P]) Dec() *Iterator[T, D, P] { return Decrement(it) }

// PostInc is it++.
func (it *Iterator[T, D, P]) PostInc() Iterator[T, D, P] { return PostIncrement(it) }

// PostDec is it--.
func (it *Iterator[T, D, P]) PostDec() Iterator[T, D, P] { return PostDecrement(it) }

// Equal reports whether both sit on the same coordinate.
func (it Iterator[T, D, P]) Equal(other Iterator[T, D, P]) bool {
	return Equal(it, other)
}

// NotEqual is !Equal.
func (it Iterator[T, D, P]) NotEqual(other Iterator[T, D, P]) bool {
	return NotEqual(it, other)
}

// Less reports whether it comes before other along the direction.
func (it Iterator[T, D, P]) Less(other Iterator[T, D, P]) bool {
	return Less(it, other)
}

// Greater is other.Less(it).
func (it Iterator[T, D, P]) Greater(other Iterator[T, D, P]) bool {
	return Greater(it, other)
}

// LessEqual is !Greater.
func (it Iterator[T, D, P]) LessEqual(other Iterator[T, D, P]) bool {
	return LessEqual(it, other)
}

// GreaterEqual is !Less.
func (it Iterator[T, D, P]) GreaterEqual(other Iterator[T, D, P]) bool {
	return GreaterEqual(it, other)
}

// Add returns it + n.
func (it Iterator[T, D, P]) Add(n int) Iterator[T, D, P] { return Add(it, n) }

// Sub returns it − n.
func (it Iterator[T, D, P]) Sub(n int) Iterator[T, D, P] { return Sub(it, n) }

// Diff returns it − other.
func (it Iterator[T, D, P]) Diff(other Iterator[T, D, P]) int { return Diff(it, other) }

// Value is *it.
func (it Iterator[T, D, P]) Value() (T, error) { return it.Deref() }

// At is it[n].
func (it Iterator[T, D, P]) At(n int) (T, error) { return At[T](it, n) }

// Pointer is it.operator->: the address of a copy of *it.
func (it Iterator[T, D, P]) Pointer() (*T, error) { return Pointer[T](it) }
