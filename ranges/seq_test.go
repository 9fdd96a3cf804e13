package ranges_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matrixviews/grid"
	"github.com/katalvlaran/matrixviews/iterators"
	"github.com/katalvlaran/matrixviews/ranges"
	"github.com/katalvlaran/matrixviews/storage"
)

// sorted is a 4×5 grid whose rows, columns and diagonals all increase.
var sorted = [][]int{
	{1, 2, 3, 4, 5},
	{6, 7, 8, 9, 10},
	{11, 12, 13, 14, 15},
	{16, 17, 18, 19, 20},
}

var cells = storage.New(func(i grid.Index) int { return sorted[i.Row][i.Column] })

type rowIter = iterators.Iterator[int, grid.Row, storage.Proxy[int]]

func TestCollect(t *testing.T) {
	got, err := ranges.New[int](grid.Diagonal{}, grid.At(0, 1), cells, 4, 5).Collect()
	require.NoError(t, err)
	if diff := cmp.Diff([]int{2, 8, 14, 20}, got); diff != "" {
		t.Errorf("Collect mismatch (-want +got):\n%s", diff)
	}

	got, err = ranges.New[int](grid.Antidiagonal{}, grid.At(1, 4), cells, 4, 5).Collect()
	require.NoError(t, err)
	require.Equal(t, []int{10, 14, 18}, got)
}

func TestReduce(t *testing.T) {
	// Row length is columns − start.Row, so a row view from (0,0) spans all five columns.
	rng := ranges.New[int](grid.Row{}, grid.At(0, 0), cells, 4, 5)
	sum, err := ranges.Reduce[int, int, rowIter](rng, 0, func(acc, v int) int { return acc + v })
	require.NoError(t, err)
	require.Equal(t, 15, sum)
}

func TestFind(t *testing.T) {
	rng := ranges.New[int](grid.Column{}, grid.At(0, 2), cells, 4, 5)
	// Column length is rows − start.Column = 2.
	require.Equal(t, 2, rng.SSize())

	i, err := rng.Find(func(v int) bool { return v > 5 })
	require.NoError(t, err)
	require.Equal(t, 1, i)

	i, err = rng.Find(func(v int) bool { return v > 100 })
	require.NoError(t, err)
	require.Equal(t, -1, i)
}

func TestSearch(t *testing.T) {
	rng := ranges.New[int](grid.Row{}, grid.At(0, 0), cells, 4, 5)
	i, err := rng.Search(func(v int) bool { return v >= 4 })
	require.NoError(t, err)
	require.Equal(t, 3, i)

	i, err = rng.Search(func(v int) bool { return v >= 99 })
	require.NoError(t, err)
	require.Equal(t, 5, i)
}

func TestValues_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	failing := failingReader{fail: grid.At(0, 2), err: boom, calls: &calls}
	rng := ranges.New[int](grid.Row{}, grid.At(0, 0), failing, 4, 5)

	var got []int
	var gotErr error
	for v, err := range rng.Values() {
		if err != nil {
			gotErr = err
			continue
		}
		got = append(got, v)
	}
	require.ErrorIs(t, gotErr, boom)
	require.Equal(t, []int{0, 1}, got)
	require.Equal(t, 3, calls)

	_, err := rng.Search(func(v int) bool { return v >= 3 })
	require.ErrorIs(t, err, boom)
	_, err = ranges.Reduce[int, int, iterators.Iterator[int, grid.Row, failingReader]](rng, 0, func(a, v int) int { return a + v })
	require.ErrorIs(t, err, boom)
}

// failingReader returns the column number, failing at one coordinate.
type failingReader struct {
	fail  grid.Index
	err   error
	calls *int
}

func (f failingReader) Access(i grid.Index) (int, error) {
	*f.calls++
	if i == f.fail {
		return 0, f.err
	}
	return i.Column, nil
}
