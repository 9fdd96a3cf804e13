// SPDX-License-Identifier: MIT

package iterators

import "github.com/katalvlaran/matrixviews/grid"

// Reverse walks a base position backwards. It dereferences the element
// just before its base, so Reverse(end) reads the last element and
// Reverse(begin) is the past-the-end position.
type Reverse[T any, S any, PS Dereferencer[S, T]] struct {
	base S
}

// MakeReverse wraps base.
//
//	rit := iterators.MakeReverse[float64](end)
func MakeReverse[T any, S any, PS Dereferencer[S, T]](base S) Reverse[T, S, PS] {
	return Reverse[T, S, PS]{base: base}
}

// Base returns the wrapped position.
func (r Reverse[T, S, PS]) Base() S {
	return r.base
}

// Advance moves the base by −n.
func (r *Reverse[T, S, PS]) Advance(n int) {
	PS(&r.base).Advance(-n)
}

// Distance is the negated base distance.
func (r Reverse[T, S, PS]) Distance(other Reverse[T, S, PS]) int {
	return PS(&other.base).Distance(r.base)
}

// Position returns the base coordinate, so equality matches the base.
func (r Reverse[T, S, PS]) Position() grid.Index {
	return PS(&r.base).Position()
}

// Deref reads *(base − 1).
func (r Reverse[T, S, PS]) Deref() (T, error) {
	prev := r.base
	PS(&prev).Advance(-1)

	return PS(&prev).Deref()
}

// Inc is ++r.
func (r *Reverse[T, S, PS]) Inc() *Reverse[T, S, PS] { return Increment(r) }

// Dec is --r.
func (r *Reverse[T, S, PS]) Dec() *Reverse[T, S, PS] { return Decrement(r) }

// PostInc is r++.
func (r *Reverse[T, S, PS]) PostInc() Reverse[T, S, PS] { return PostIncrement(r) }

// PostDec is r--.
func (r *Reverse[T, S, PS]) PostDec() Reverse[T, S, PS] { return PostDecrement(r) }

// Equal reports whether both wrap the same base position.
func (r Reverse[T, S, PS]) Equal(other Reverse[T, S, PS]) bool { return Equal(r, other) }

// NotEqual is !Equal.
func (r Reverse[T, S, PS]) NotEqual(other Reverse[T, S, PS]) bool { return NotEqual(r, other) }

// Less reports whether r comes before other in reverse order.
func (r Reverse[T, S, PS]) Less(other Reverse[T, S, PS]) bool { return Less(r, other) }

// Greater is other.Less(r).
func (r Reverse[T, S, PS]) Greater(other Reverse[T, S, PS]) bool { return Greater(r, other) }

// LessEqual is !Greater.
func (r Reverse[T, S, PS]) LessEqual(other Reverse[T, S, PS]) bool { return LessEqual(r, other) }

// GreaterEqual is !Less.
func (r Reverse[T, S, PS]) GreaterEqual(other Reverse[T, S, PS]) bool { return GreaterEqual(r, other) }

// Add returns r + n.
func (r Reverse[T, S, PS]) Add(n int) Reverse[T, S, PS] { return Add(r, n) }

// Sub returns r − n.
func (r Reverse[T, S, PS]) Sub(n int) Reverse[T, S, PS] { return Sub(r, n) }

// Diff returns r − other.
func (r Reverse[T, S, PS]) Diff(other Reverse[T, S, PS]) int { return Diff(r, other) }

// Value is *r.
func (r Reverse[T, S, PS]) Value() (T, error) { return r.Deref() }

// At is r[n].
func (r Reverse[T, S, PS]) At(n int) (T, error) { return At[T](r, n) }

// Pointer is the address of a copy of *r.
func (r Reverse[T, S, PS]) Pointer() (*T, error) { return Pointer[T](r) }
