package iterators_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixviews/grid"
	"github.com/katalvlaran/matrixviews/storage"
)

type storageProxy = storage.Proxy[grid.Index]

// echoProxy returns the coordinate it is asked for.
var echoProxy = storage.New(func(i grid.Index) grid.Index { return i })

// echoRef is written by refProxy on every access, mimicking storage that
// hands out references.
var echoRef grid.Index

var refProxy = storage.NewConst(func(i grid.Index) *grid.Index {
	echoRef = i
	return &echoRef
})

// mustIndex unwraps a (grid.Index, error) pair or fails the test.
func mustIndex(t *testing.T) func(grid.Index, error) grid.Index {
	t.Helper()
	return func(v grid.Index, err error) grid.Index {
		t.Helper()
		require.NoError(t, err)
		return v
	}
}
