// SPDX-License-Identifier: MIT

package storage

import "github.com/katalvlaran/matrixviews/grid"

// ConstProxy is the read-only projection of a Proxy[*E].
//
// The inner accessor hands out pointers into mutable storage; ConstProxy
// copies the pointed-to element out, so nothing reached through it can
// write back. Accessors that already return values need no projection:
// use ConstOf, which keeps the value result as is.
type ConstProxy[E any] struct {
	inner Proxy[*E]
}

var _ Reader[int] = ConstProxy[int]{}

// NewConst wraps a pointer-returning accessor read-only.
func NewConst[E any](fn Accessor[*E]) ConstProxy[E] {
	return ConstProxy[E]{inner: New(fn)}
}

// Const projects an existing mutable proxy. Both share the same accessor.
func Const[E any](p Proxy[*E]) ConstProxy[E] {
	return ConstProxy[E]{inner: p}
}

// ConstOf returns p unchanged: a value-returning proxy is already read-only.
func ConstOf[T any](p Proxy[T]) Proxy[T] {
	return p
}

// Access dereferences the inner result and returns a copy of the element.
// Stage 1 (Forward): delegate to the inner proxy.
// Stage 2 (Project): reject nil, copy the element out.
// Complexity: O(1) plus the accessor's own cost.
func (p ConstProxy[E]) Access(i grid.Index) (E, error) {
	var zero E
	ref, err := p.inner.Access(i)
	if err != nil {
		return zero, err
	}
	if ref == nil {
		return zero, accessErrorf("ConstProxy", i, ErrNilReference)
	}

	return *ref, nil
}

// Valid reports whether the inner proxy has an accessor.
func (p ConstProxy[E]) Valid() bool {
	return p.inner.Valid()
}

// Inner returns the wrapped mutable proxy.
func (p ConstProxy[E]) Inner() Proxy[*E] {
	return p.inner
}
