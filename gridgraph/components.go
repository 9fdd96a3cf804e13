package gridgraph

import "github.com/katalvlaran/matrixviews/grid"

// ConnectedComponents finds all contiguous regions ("islands") of land
// cells according to the graph's connectivity. Components are ordered by
// their first cell in row-major order; cells within a component are in
// BFS order from that first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]grid.Index {
	seen := make([]bool, gg.Rows()*gg.Cols())
	var comps [][]grid.Index

	for start := range gg.Cells() {
		if !gg.IsLand(start) || seen[gg.key(start)] {
			continue
		}
		seen[gg.key(start)] = true
		comp := []grid.Index{start}
		for qi := 0; qi < len(comp); qi++ {
			for v := range gg.Neighbors(comp[qi]) {
				if !gg.IsLand(v) || seen[gg.key(v)] {
					continue
				}
				seen[gg.key(v)] = true
				comp = append(comp, v)
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
