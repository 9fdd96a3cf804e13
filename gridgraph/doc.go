// Package gridgraph treats a matrix.Dense as a graph of cells, enabling
// component analysis and minimal-cost "island" expansions.
//
// What:
//
//   - GridGraph wraps a *matrix.Dense with a tunable Threshold.
//   - Identifies connected components ("islands") of cells with value ≥ Threshold.
//   - Computes minimal conversions (0-1 BFS) to connect two islands.
//
// Neighbors are reached by stepping one cell along direction tags:
// Conn4 steps along grid.Row and grid.Column, Conn8 adds grid.Diagonal
// and grid.Antidiagonal. Cells are scanned row by row through
// matrix.Dense.RowView.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = 4 or 8).
//   - ExpandIsland:        O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input matrix is nil.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
package gridgraph
