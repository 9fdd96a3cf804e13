// SPDX-License-Identifier: MIT

package dtw

import (
	"math"

	"github.com/katalvlaran/matrixviews/grid"
	"github.com/katalvlaran/matrixviews/matrix"
	"github.com/katalvlaran/matrixviews/storage"
)

// table is the storage behind the cost matrix D.
// Cells are addressed by their (i,j) coordinate in D regardless of layout.
type table interface {
	// reset prepares wave s for writing.
	reset(s int)
	// wave returns a proxy resolving the cells of wave s.
	wave(s int) storage.Proxy[*float64]
	// get reads D[i][j]; i+j must be one of the three most recent waves.
	get(i, j int) float64
}

// fullTable keeps all of D in an (n+1)×(m+1) Dense.
type fullTable struct {
	dp *matrix.Dense
}

func newFullTable(n, m int) (*fullTable, error) {
	dp, err := matrix.NewDense(n+1, m+1)
	if err != nil {
		return nil, err
	}
	dp.Fill(math.Inf(1))
	*dp.Ref(grid.At(0, 0)) = 0

	return &fullTable{dp: dp}, nil
}

func (t *fullTable) reset(int) {}

func (t *fullTable) wave(int) storage.Proxy[*float64] { return t.dp.Proxy() }

func (t *fullTable) get(i, j int) float64 { return *t.dp.Ref(grid.At(i, j)) }

// rollingTable keeps three anti-diagonals of D in a 3×(n+1) Dense.
// Wave s lives in row s%3, cell (i,j) of that wave in column i.
type rollingTable struct {
	waves *matrix.Dense
	n     int
}

func newRollingTable(n int) (*rollingTable, error) {
	waves, err := matrix.NewDense(3, n+1)
	if err != nil {
		return nil, err
	}
	waves.Fill(math.Inf(1))
	*waves.Ref(grid.At(0, 0)) = 0

	return &rollingTable{waves: waves, n: n}, nil
}

func (t *rollingTable) reset(s int) {
	inf := math.Inf(1)
	for i := 0; i <= t.n; i++ {
		*t.waves.Ref(grid.At(s%3, i)) = inf
	}
}

func (t *rollingTable) wave(s int) storage.Proxy[*float64] {
	row := s % 3
	return storage.New(func(idx grid.Index) *float64 {
		return t.waves.Ref(grid.At(row, idx.Row))
	})
}

func (t *rollingTable) get(i, j int) float64 {
	return *t.waves.Ref(grid.At((i+j)%3, i))
}
