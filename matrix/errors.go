// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ". Methods wrap sentinels with
// their receiver and coordinate via fmt.Errorf("...: %w"); callers match
// with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("matrix: all rows must have the same length")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At, Set and the view constructors return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrUnknownDirection indicates a direction name outside
	// row, column, diagonal, antidiagonal.
	ErrUnknownDirection = errors.New("matrix: unknown direction")

	// ErrDimensionMismatch indicates a vector whose length does not match the matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSquare indicates an operation that requires rows == cols.
	ErrNotSquare = errors.New("matrix: matrix must be square")

	// ErrNaNInf indicates a NaN or infinite tolerance.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// opErrorf wraps an underlying error with a whole-matrix operation name.
func opErrorf(method string, err error) error {
	return fmt.Errorf("Dense.%s: %w", method, err)
}
