// SPDX-License-Identifier: MIT
//
// File: adjacency_list.go
// Role: internal helpers keeping adjacency consistent with the edge catalog.
// Callers must hold muEdgeAdj for writing.

package core

// ensureAdjacency makes sure the outgoing bucket for id exists.
func ensureAdjacency(g *Graph, id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]*Edge)
	}
}

// removeAdjacency unlinks e from its source bucket.
func removeAdjacency(g *Graph, e *Edge) {
	if bucket, ok := g.adjacency[e.From]; ok {
		delete(bucket, e.To)
	}
}

// AdjacencyList returns a snapshot from → successor IDs in edge insertion order.
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make(map[string][]string, len(g.adjacency))
	var (
		from   string
		bucket map[string]*Edge
	)
	for from, bucket = range g.adjacency {
		es := make([]*Edge, 0, len(bucket))
		for _, e := range bucket {
			es = append(es, e)
		}
		sortBySeq(es)
		succ := make([]string, len(es))
		for i, e := range es {
			succ[i] = e.To
		}
		out[from] = succ
	}

	return out
}
