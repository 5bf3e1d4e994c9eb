// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over nextEdgeID to keep textual edge IDs monotonic on the clone.
// AI-HINT (file):
//   - Clone copies each edge's attribute map, so defaulting on the clone never
//     writes through to the source graph.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices, but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var opts []GraphOption
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone := NewGraph(opts...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	var (
		id string
		v  *Vertex
	)
	for id, v = range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.adjacency[id] = make(map[string]*Edge)
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges,
// adjacency, and a fresh attribute map per edge (values copied shallowly).
// Complexity: O(V + E·A) where A is the attribute count per edge.
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var (
		eid   string
		e, ne *Edge
	)
	for eid, e = range g.edges {
		ne = &Edge{ID: eid, From: e.From, To: e.To, Attrs: make(map[string]interface{}, len(e.Attrs)), seq: e.seq}
		for k, v := range e.Attrs {
			ne.Attrs[k] = v
		}
		clone.edges[eid] = ne
		clone.adjacency[e.From][e.To] = ne
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
// Edge IDs resume from "e1".
// Complexity: O(1).
func (g *Graph) Clear() {
	g.muVert.Lock()
	g.muEdgeAdj.Lock()
	g.vertices = make(map[string]*Vertex)
	g.edges = make(map[string]*Edge)
	g.adjacency = make(map[string]map[string]*Edge)
	atomic.StoreUint64(&g.nextEdgeID, 0)
	g.muEdgeAdj.Unlock()
	g.muVert.Unlock()
}
