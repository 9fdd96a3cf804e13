// SPDX-License-Identifier: MIT

package storage

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matrixviews/grid"
)

var (
	// ErrMissingAccessor is returned when a proxy without an accessor is
	// dereferenced. It is raised at access time, never at construction.
	ErrMissingAccessor = errors.New("storage: missing accessor")

	// ErrNilReference is returned when a ConstProxy's accessor yields a nil
	// pointer, so there is no element to copy out.
	ErrNilReference = errors.New("storage: accessor returned nil reference")
)

// accessErrorf wraps err with the proxy type and coordinate.
func accessErrorf(kind string, i grid.Index, err error) error {
	return fmt.Errorf("%s.Access(%d,%d): %w", kind, i.Row, i.Column, err)
}
