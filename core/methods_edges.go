// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/EdgeBetween/
//       Edges/OutEdges/EdgeCount/FilterEdges, plus nextEdgeID().
// Determinism:
//   - Edges() and OutEdges() return edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.
// AI-HINT (file):
//   - One edge per ordered pair; a second AddEdge(u,v) returns ErrMultiEdgeNotAllowed.
//   - Attributes given through WithEdgeAttr are stored on the edge before it becomes visible.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge creates a directed edge from→to and returns its ID.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject a second edge on the same ordered pair.
//  4. Generate eid, build the Edge, apply opts (attributes).
//  5. Store in the catalog and the adjacency map.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacency[from][to]; exists {
		return "", ErrMultiEdgeNotAllowed
	}

	seq := atomic.AddUint64(&g.nextEdgeID, 1)
	e := &Edge{
		ID:    formatEdgeID(seq),
		From:  from,
		To:    to,
		Attrs: make(map[string]interface{}, 2),
		seq:   seq,
	}
	var opt EdgeOption
	for _, opt = range opts {
		opt(e)
	}

	g.edges[e.ID] = e
	ensureAdjacency(g, from)
	g.adjacency[from][to] = e

	return e.ID, nil
}

// RemoveEdge deletes one edge by ID.
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// HasEdge reports whether an edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
//
// Contract:
//   - The returned *Edge must be treated as read-only by callers.
//
// Complexity: O(1).
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgeBetween returns the edge from→to, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) EdgeBetween(from, to string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.adjacency[from][to]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sortBySeq(out)

	return out
}

// OutEdges returns the outgoing edges of id in insertion order.
// Errors: ErrVertexNotFound.
// Complexity: O(d log d) where d is the out-degree.
func (g *Graph) OutEdges(id string) ([]*Edge, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	bucket := g.adjacency[id]
	out := make([]*Edge, 0, len(bucket))
	var e *Edge
	for _, e = range bucket {
		out = append(out, e)
	}
	sortBySeq(out)

	return out, nil
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// FilterEdges removes all edges failing the predicate.
// pred must not mutate the graph.
// Complexity: O(E).
func (g *Graph) FilterEdges(pred func(*Edge) bool) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	var (
		eid string
		e   *Edge
	)
	for eid, e = range g.edges {
		if !pred(e) {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}
}

// formatEdgeID renders a sequence number as "e<seq>" without fmt allocations.
func formatEdgeID(seq uint64) string {
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, seq, 10)

	return string(buf)
}

// sortBySeq orders edges by insertion sequence.
func sortBySeq(es []*Edge) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}
