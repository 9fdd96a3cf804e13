// SPDX-License-Identifier: MIT

package storage

import "github.com/katalvlaran/matrixviews/grid"

// Accessor maps a coordinate to an element, or to a pointer to one when
// the storage should be writable through the view.
type Accessor[T any] func(grid.Index) T

// Reader is the capability iterators and ranges dereference through.
type Reader[T any] interface {
	Access(i grid.Index) (T, error)
}

// Proxy wraps an optional Accessor. The zero Proxy holds none.
type Proxy[T any] struct {
	fn Accessor[T]
}

var (
	_ Reader[int]  = Proxy[int]{}
	_ Reader[*int] = Proxy[*int]{}
)

// New wraps fn. A nil fn yields the same Proxy as the zero value.
func New[T any](fn Accessor[T]) Proxy[T] {
	return Proxy[T]{fn: fn}
}

// Access returns fn(i), or ErrMissingAccessor when no accessor is set.
// Complexity: O(1) plus the accessor's own cost.
func (p Proxy[T]) Access(i grid.Index) (T, error) {
	if p.fn == nil {
		var zero T
		return zero, accessErrorf("Proxy", i, ErrMissingAccessor)
	}

	return p.fn(i), nil
}

// Valid reports whether an accessor is set.
func (p Proxy[T]) Valid() bool {
	return p.fn != nil
}
