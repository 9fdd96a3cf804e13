// SPDX-License-Identifier: MIT

package grid

// Cell is a read accessor over a value that is stored either in the type
// or in the value.
//
// A compile-time cell is any zero-size type whose Get returns a constant:
//
//	type Four struct{}
//	func (Four) Get() int { return 4 }
//
// A runtime cell is Runtime[T]. Both are read through Get, so generic code
// never needs to know which one it holds.
type Cell[T any] interface {
	Get() T
}

// Runtime holds its value at runtime. The zero value holds the zero T.
type Runtime[T any] struct {
	value T
}

// NewRuntime returns a Runtime holding v.
func NewRuntime[T any](v T) Runtime[T] {
	return Runtime[T]{value: v}
}

// Get returns the held value.
// Complexity: O(1).
func (r Runtime[T]) Get() T {
	return r.value
}

// Set replaces the held value.
func (r *Runtime[T]) Set(v T) {
	r.value = v
}

// Make materializes a cell of type C from v.
// A Runtime[T] receives v; a compile-time cell keeps its own constant and
// v is ignored. This lets generic constructors accept one argument shape
// for both kinds of cell.
func Make[C Cell[T], T any](v T) C {
	var c C
	if r, ok := any(&c).(*Runtime[T]); ok {
		r.Set(v)
	}

	return c
}

// IsRuntime reports whether C stores its value at runtime.
func IsRuntime[C Cell[T], T any]() bool {
	var c C
	_, ok := any(c).(Runtime[T])

	return ok
}

// Extent bounds a row count or a column count.
type Extent = Cell[int]

// Dynamic is an extent supplied at construction time.
type Dynamic = Runtime[int]

// NewDynamic returns a runtime extent of n.
func NewDynamic(n int) Dynamic {
	return NewRuntime(n)
}
