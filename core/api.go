// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: read-only getters and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// Looped reports whether self-loops are permitted.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Gate loop-emitting fixtures (random generators) on this flag.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	// VertexCount is |V|.
	VertexCount int

	// EdgeCount is |E|.
	EdgeCount int

	// LoopCount counts self-loop edges.
	LoopCount int

	// AttrCounts maps an attribute key to the number of edges where it is present (non-nil).
	AttrCounts map[string]int
}

// Stats returns a snapshot of counts for diagnostics and admissions.
//
// Implementation:
//   - Stage 1: Read vertex count under muVert.
//   - Stage 2: Scan edges once under muEdgeAdj, counting loops and present attributes.
//
// Complexity:
//   - Time O(V + E·A), Space O(K) for K distinct keys.
func (g *Graph) Stats() GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	st := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
		AttrCounts:  make(map[string]int),
	}
	var e *Edge
	for _, e = range g.edges {
		if e.From == e.To {
			st.LoopCount++
		}
		for k, v := range e.Attrs {
			if v != nil {
				st.AttrCounts[k]++
			}
		}
	}

	return st
}
