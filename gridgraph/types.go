package gridgraph

import (
	"errors"

	"github.com/katalvlaran/matrixviews/grid"
	"github.com/katalvlaran/matrixviews/matrix"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates a nil input matrix.
	ErrEmptyGrid = errors.New("gridgraph: input matrix must not be nil")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 steps along rows and columns.
	Conn4 Connectivity = iota
	// Conn8 also steps along diagonals and anti-diagonals.
	Conn8
)

// Options contains tunable parameters for grid analysis.
type Options struct {
	// Threshold specifies the minimum cell value considered "land".
	Threshold float64
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns Threshold=1 (values ≥1 are land), Conn=Conn4.
func DefaultOptions() Options {
	return Options{
		Threshold: 1,
		Conn:      Conn4,
	}
}

// step moves an index n cells along one direction.
type step func(grid.Index, int) grid.Index

// GridGraph treats a dense matrix as a graph. It is immutable once built.
type GridGraph struct {
	cells     *matrix.Dense
	conn      Connectivity
	threshold float64
	steps     []step
}
