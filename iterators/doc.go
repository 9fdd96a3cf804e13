// Package iterators implements random-access positions over 2D storage.
//
// A concrete position type supplies three primitives:
//
//	Advance(n int)          move in place by n unit steps
//	Distance(other S) int   signed unit steps from other to the receiver
//	Deref() (T, error)      read the element at the current position
//
// plus Position() for coordinate equality. The generic skeleton in base.go
// derives the rest of the random-access contract from them: increment and
// decrement (prefix and postfix), equality, a strict total order, scalar
// addition and subtraction, indexing and element addressing. The Stepper
// and Dereferencer constraints reject any type missing a primitive at
// compile time.
//
// Iterator is the direction-tagged position. Reverse adapts any position
// so that it walks backwards; it satisfies the same constraints, so the
// skeleton applies to it unchanged.
//
// Complexity:
//
//   - Every operation is O(1) plus the cost of the storage accessor on
//     dereference. Nothing allocates.
//
// Errors:
//
//   - Deref and the operations built on it return the storage proxy's
//     error, e.g. storage.ErrMissingAccessor for a zero Iterator.
package iterators
