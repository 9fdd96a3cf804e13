// SPDX-License-Identifier: MIT

package dtw

import (
	"math"
	"slices"

	"github.com/katalvlaran/matrixviews/grid"
	"github.com/katalvlaran/matrixviews/ranges"
)

// DTW computes the Dynamic Time Warping distance between a and b.
// Returns (distance, path, error); path is nil unless opts.ReturnPath.
// A nil opts means DefaultOptions.
//
// Algorithm Outline:
//  1. Validate inputs and options.
//  2. Allocate D with +Inf everywhere except D[0][0] = 0: the full
//     (n+1)×(m+1) matrix, or three anti-diagonals in RollingWaves mode.
//  3. For s = 2..n+m, walk the anti-diagonal i+j = s from its top-most
//     interior cell down-left, stopping before column 0:
//     cost    = |a[i-1] - b[j-1]|
//     D[i][j] = cost + min(D[i-1][j]+penalty, D[i][j-1]+penalty, D[i-1][j-1])
//     Cells outside the window keep +Inf.
//  4. distance = D[n][m]; if a path was requested, backtrack from (n,m).
//     A +Inf distance means the window cut (n,m) off and yields ErrNoPath.
//
// Complexity: O(n·m) time; O(n·m) memory, O(min(n,m)) with RollingWaves.
func DTW(a, b []float64, opts *Options) (float64, []Coord, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, nil, ErrEmptyInput
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Window < NoWindow {
		return 0, nil, ErrBadInput
	}

	var (
		t   table
		err error
	)
	switch o.MemoryMode {
	case FullMatrix:
		t, err = newFullTable(len(a), len(b))
	case RollingWaves:
		if o.ReturnPath {
			return 0, nil, ErrPathNeedsFullMatrix
		}
		// the band and penalty are symmetric, so the shorter input can index the waves
		if len(a) > len(b) {
			a, b = b, a
		}
		t, err = newRollingTable(len(a))
	default:
		return 0, nil, ErrBadInput
	}
	if err != nil {
		return 0, nil, err
	}

	if err = fill(t, a, b, o); err != nil {
		return 0, nil, err
	}

	distance := t.get(len(a), len(b))
	if !o.ReturnPath {
		return distance, nil, nil
	}
	if math.IsInf(distance, 1) {
		return distance, nil, ErrNoPath
	}

	return distance, backtrack(t, len(a), len(b), o.SlopePenalty), nil
}

// fill computes every interior cell wave by wave.
func fill(t table, a, b []float64, o Options) error {
	n, m := len(a), len(b)
	for s := 2; s <= n+m; s++ {
		t.reset(s)
		// top-most interior cell of the wave
		i0 := max(1, s-m)
		wave := ranges.New[*float64](grid.Antidiagonal{}, grid.At(i0, s-i0), t.wave(s), n+1, m+1)

		end := wave.End()
		for it := wave.Begin(); it.Less(end); it.Inc() {
			pos := it.Position()
			if pos.Column == 0 {
				break
			}
			if o.Window != NoWindow && abs(pos.Row-pos.Column) > o.Window {
				continue
			}

			cell, err := it.Value()
			if err != nil {
				return err
			}
			i, j := pos.Row, pos.Column
			cost := math.Abs(a[i-1] - b[j-1])
			ins := t.get(i-1, j) + o.SlopePenalty
			del := t.get(i, j-1) + o.SlopePenalty
			match := t.get(i-1, j-1)
			*cell = cost + min(ins, del, match)
		}
	}

	return nil
}

// backtrack follows the cheapest predecessor from (n,m) to (1,1),
// preferring the diagonal on ties. D[n][m] must be finite.
func backtrack(t table, n, m int, penalty float64) []Coord {
	i, j := n, m
	path := []Coord{{I: i - 1, J: j - 1}}
	for i > 1 || j > 1 {
		switch {
		case i == 1:
			j--
		case j == 1:
			i--
		default:
			match := t.get(i-1, j-1)
			ins := t.get(i-1, j) + penalty
			del := t.get(i, j-1) + penalty
			switch {
			case match <= ins && match <= del:
				i, j = i-1, j-1
			case ins <= del:
				i--
			default:
				j--
			}
		}
		path = append(path, Coord{I: i - 1, J: j - 1})
	}
	slices.Reverse(path)

	return path
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
