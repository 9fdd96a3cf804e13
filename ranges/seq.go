// SPDX-License-Identifier: MIT

package ranges

import (
	"iter"
	"sort"

	"github.com/katalvlaran/matrixviews/grid"
	"github.com/katalvlaran/matrixviews/iterators"
)

// Values yields (element, nil) for each position from Begin to End. If a
// dereference fails it yields (zero, err) once and stops.
func Values[T any, I any, R Bounded[I], PI iterators.Dereferencer[I, T]](r R) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		end := r.End()
		for it := r.Begin(); iterators.Less[I, PI](it, end); iterators.Increment[I, PI](&it) {
			v, err := PI(&it).Deref()
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// Backward is Values walked from RBegin to REnd.
func Backward[T any, I any, R Bounded[I], PI iterators.Dereferencer[I, T]](r R) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		rend := REnd[T, I, R, PI](r)
		for it := RBegin[T, I, R, PI](r); it.Less(rend); it.Inc() {
			v, err := it.Value()
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// Indices yields each coordinate from Begin to End.
func Indices[I any, R Bounded[I], PI iterators.Stepper[I]](r R) iter.Seq[grid.Index] {
	return func(yield func(grid.Index) bool) {
		end := r.End()
		for it := r.Begin(); iterators.Less[I, PI](it, end); iterators.Increment[I, PI](&it) {
			if !yield(PI(&it).Position()) {
				return
			}
		}
	}
}

// Collect reads every element into a new slice.
// Complexity: O(n) dereferences, one allocation.
func Collect[T any, I any, R Bounded[I], PI iterators.Dereferencer[I, T]](r R) ([]T, error) {
	out := make([]T, 0, max(SSize[I, R, PI](r), 0))
	for v, err := range Values[T, I, R, PI](r) {
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// Reduce folds fn over the elements front to back.
func Reduce[A any, T any, I any, R Bounded[I], PI iterators.Dereferencer[I, T]](r R, init A, fn func(A, T) A) (A, error) {
	acc := init
	for v, err := range Values[T, I, R, PI](r) {
		if err != nil {
			return init, err
		}
		acc = fn(acc, v)
	}

	return acc, nil
}

// Find returns the offset of the first element satisfying pred, or -1.
func Find[T any, I any, R Bounded[I], PI iterators.Dereferencer[I, T]](r R, pred func(T) bool) (int, error) {
	i := 0
	for v, err := range Values[T, I, R, PI](r) {
		if err != nil {
			return -1, err
		}
		if pred(v) {
			return i, nil
		}
		i++
	}

	return -1, nil
}

// Search returns the smallest offset in [0, SSize) at which pred is true,
// assuming pred is false then true along the range (sort.Search
// semantics). It returns SSize when pred is never true.
// Complexity: O(log n) dereferences.
func Search[T any, I any, R Bounded[I], PI iterators.Dereferencer[I, T]](r R, pred func(T) bool) (int, error) {
	begin := r.Begin()
	var firstErr error
	idx := sort.Search(max(SSize[I, R, PI](r), 0), func(k int) bool {
		if firstErr != nil {
			return true
		}
		v, err := iterators.At[T, I, PI](begin, k)
		if err != nil {
			firstErr = err
			return true
		}
		return pred(v)
	})
	if firstErr != nil {
		return -1, firstErr
	}

	return idx, nil
}
