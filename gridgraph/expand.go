package gridgraph

import (
	"container/list"
	"slices"

	"github.com/katalvlaran/matrixviews/grid"
)

// ExpandIsland finds a minimum-conversion path of water cells joining
// component srcComp to component dstComp, as numbered by
// ConnectedComponents. Each water cell on the path costs 1.
// Returns the cells of the path, land endpoints included, and its cost.
//
// Behavior:
//  1. Validate component indices.
//  2. Multi-source 0-1 BFS from all srcComp cells:
//     • moving into a land cell  → cost 0
//     • moving into a water cell → cost 1
//  3. Stop when any dstComp cell is dequeued.
//  4. Reconstruct the path via predecessors.
//
// Complexity: O(W·H·d) time, O(W·H) memory.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []grid.Index, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	dstSet := make(map[grid.Index]struct{}, len(comps[dstComp]))
	for _, i := range comps[dstComp] {
		dstSet[i] = struct{}{}
	}

	n := gg.Rows() * gg.Cols()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make(map[grid.Index]grid.Index, n)
	for i := range dist {
		dist[i] = inf
	}

	// 0-1 BFS: cost-0 moves at the front, cost-1 moves at the back
	dq := list.New()
	for _, i := range comps[srcComp] {
		dist[gg.key(i)] = 0
		dq.PushFront(i)
	}

	found := false
	var target grid.Index
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(grid.Index)
		if _, ok := dstSet[u]; ok {
			target, found = u, true
			break
		}
		for v := range gg.Neighbors(u) {
			w := 0
			if !gg.IsLand(v) {
				w = 1
			}
			nd := dist[gg.key(u)] + w
			if nd >= dist[gg.key(v)] {
				continue
			}
			dist[gg.key(v)] = nd
			prev[v] = u
			if w == 0 {
				dq.PushFront(v)
			} else {
				dq.PushBack(v)
			}
		}
	}

	if !found {
		return nil, 0, ErrNoPath
	}
	for at, ok := target, true; ok; at, ok = prev[at] {
		path = append(path, at)
	}
	slices.Reverse(path)

	return path, dist[gg.key(target)], nil
}
