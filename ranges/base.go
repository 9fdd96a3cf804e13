// SPDX-License-Identifier: MIT

package ranges

import "github.com/katalvlaran/matrixviews/iterators"

// Bounded is the minimal range capability: a matching pair of positions.
type Bounded[I any] interface {
	Begin() I
	End() I
}

// SSize returns End − Begin as a signed count.
func SSize[I any, R Bounded[I], PI iterators.Stepper[I]](r R) int {
	return iterators.Diff[I, PI](r.End(), r.Begin())
}

// Size returns SSize as an unsigned count.
func Size[I any, R Bounded[I], PI iterators.Stepper[I]](r R) uint {
	return uint(SSize[I, R, PI](r))
}

// Empty reports Size == 0.
func Empty[I any, R Bounded[I], PI iterators.Stepper[I]](r R) bool {
	return Size[I, R, PI](r) == 0
}

// RBegin is the reverse of End: it reads the last element.
func RBegin[T any, I any, R Bounded[I], PI iterators.Dereferencer[I, T]](r R) iterators.Reverse[T, I, PI] {
	return iterators.MakeReverse[T, I, PI](r.End())
}

// REnd is the reverse of Begin: the position before the first element.
func REnd[T any, I any, R Bounded[I], PI iterators.Dereferencer[I, T]](r R) iterators.Reverse[T, I, PI] {
	return iterators.MakeReverse[T, I, PI](r.Begin())
}
