// SPDX-License-Identifier: MIT

package iterators

import "github.com/katalvlaran/matrixviews/grid"

// Stepper is the movement half of a position: the pointer type *S must
// advance in place, measure distance and report its coordinate.
type Stepper[S any] interface {
	*S
	Advance(n int)
	Distance(other S) int
	Position() grid.Index
}

// Dereferencer is a Stepper that can also read its element.
type Dereferencer[S any, T any] interface {
	Stepper[S]
	Deref() (T, error)
}

// Increment advances it by one and returns it.
func Increment[S any, PS Stepper[S]](it *S) *S {
	PS(it).Advance(1)
	return it
}

// Decrement moves it back by one and returns it.
func Decrement[S any, PS Stepper[S]](it *S) *S {
	PS(it).Advance(-1)
	return it
}

// PostIncrement advances it by one and returns the position it held before.
func PostIncrement[S any, PS Stepper[S]](it *S) S {
	snapshot := *it
	PS(it).Advance(1)

	return snapshot
}

// PostDecrement moves it back by one and returns the position it held before.
func PostDecrement[S any, PS Stepper[S]](it *S) S {
	snapshot := *it
	PS(it).Advance(-1)

	return snapshot
}

// Equal compares coordinates only; storage proxies are ignored.
func Equal[S any, PS Stepper[S]](a, b S) bool {
	return PS(&a).Position() == PS(&b).Position()
}

// NotEqual is !Equal.
func NotEqual[S any, PS Stepper[S]](a, b S) bool {
	return !Equal[S, PS](a, b)
}

// Less reports a < b, defined as a.Distance(b) < 0.
func Less[S any, PS Stepper[S]](a, b S) bool {
	return PS(&a).Distance(b) < 0
}

// Greater reports a > b, i.e. b < a.
func Greater[S any, PS Stepper[S]](a, b S) bool {
	return Less[S, PS](b, a)
}

// LessEqual reports a <= b, i.e. !(a > b).
func LessEqual[S any, PS Stepper[S]](a, b S) bool {
	return !Greater[S, PS](a, b)
}

// GreaterEqual reports a >= b, i.e. !(a < b).
func GreaterEqual[S any, PS Stepper[S]](a, b S) bool {
	return !Less[S, PS](a, b)
}

// Add returns a copy of a advanced by n. a itself is not modified.
func Add[S any, PS Stepper[S]](a S, n int) S {
	PS(&a).Advance(n)
	return a
}

// Sub returns a copy of a moved back by n.
func Sub[S any, PS Stepper[S]](a S, n int) S {
	return Add[S, PS](a, -n)
}

// AddTo is the scalar-first form n + a.
func AddTo[S any, PS Stepper[S]](n int, a S) S {
	return Add[S, PS](a, n)
}

// Diff returns a − b in unit steps.
func Diff[S any, PS Stepper[S]](a, b S) int {
	return PS(&a).Distance(b)
}

// Value reads the element at a.
func Value[T any, S any, PS Dereferencer[S, T]](a S) (T, error) {
	return PS(&a).Deref()
}

// At reads the element n steps away from a: a[n] == *(a + n).
func At[T any, S any, PS Dereferencer[S, T]](a S, n int) (T, error) {
	moved := Add[S, PS](a, n)
	return PS(&moved).Deref()
}

// Pointer returns the address of the element read at a. The element is a
// copy; when T is itself a pointer the copy still refers to storage.
func Pointer[T any, S any, PS Dereferencer[S, T]](a S) (*T, error) {
	v, err := PS(&a).Deref()
	if err != nil {
		return nil, err
	}

	return &v, nil
}
