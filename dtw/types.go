// Package dtw defines options, coordinates and sentinel errors for
// Dynamic Time Warping.
package dtw

import "errors"

var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates an invalid option value (Window < -1 or an
	// unknown MemoryMode).
	ErrBadInput = errors.New("dtw: invalid options")

	// ErrPathNeedsFullMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsFullMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")

	// ErrNoPath indicates that the window leaves cell (n,m) unreachable,
	// so no warping path exists.
	ErrNoPath = errors.New("dtw: no warping path within the window")
)

// NoWindow disables the Sakoe–Chiba constraint.
const NoWindow = -1

// MemoryMode controls how DTW stores its cost matrix.
//
//   - FullMatrix: keep the entire (n+1)x(m+1) matrix; supports ReturnPath.
//   - RollingWaves: keep only the last three anti-diagonals; distance only.
type MemoryMode int

const (
	// FullMatrix stores every cell. Memory: O(N·M).
	FullMatrix MemoryMode = iota
	// RollingWaves stores three anti-diagonals. Memory: O(min(N,M)).
	RollingWaves
)

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window: maximum deviation |i-j| allowed (Sakoe–Chiba band).
//     NoWindow (-1) means no windowing constraint; 0 allows only the
//     main diagonal.
//   - SlopePenalty: penalty added to insertion/deletion steps.
//   - ReturnPath: if true, DTW backtracks and returns the warping path.
//     Requires MemoryMode=FullMatrix.
//   - MemoryMode: FullMatrix or RollingWaves storage.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns Options with no window, no penalty, no path and
// FullMatrix storage.
func DefaultOptions() Options {
	return Options{Window: NoWindow, MemoryMode: FullMatrix}
}

// Coord is one step of a warping path: a[I] is aligned with b[J].
type Coord struct {
	I, J int
}
