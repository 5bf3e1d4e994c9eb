// SPDX-License-Identifier: MIT
//
// File: gonum.go
// Role: core.Graph → gonum simple graphs, cycle enumeration and a
//       Bellman-Ford negative-cycle check.
// Determinism:
//   - Node IDs follow core.Graph.Vertices() order (sorted vertex IDs).
//   - Cycles() output is sorted by (length, node IDs).

package converters

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/cycleratio/core"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Sentinel errors for conversions.
var (
	// ErrNilGraph indicates a nil *core.Graph input.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrNilWeight indicates a nil weight function.
	ErrNilWeight = errors.New("converters: weight function is nil")

	// ErrBadWeight indicates a NaN weight.
	ErrBadWeight = errors.New("converters: weight is NaN")
)

// Gonum is a gonum view of a core.Graph snapshot.
type Gonum struct {
	// Directed holds every non-loop edge of the source graph.
	Directed *simple.DirectedGraph

	// Loops holds the self-loop edges, in insertion order.
	Loops []*core.Edge

	names []string             // node ID → vertex ID
	ids   map[string]int64     // vertex ID → node ID
	pairs map[[2]int64]*core.Edge
	edges []*core.Edge
}

// ToGonum snapshots g into a gonum DirectedGraph.
// Complexity: O(V log V + E).
func ToGonum(g *core.Graph) (*Gonum, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	names := g.Vertices()
	c := &Gonum{
		Directed: simple.NewDirectedGraph(),
		names:    names,
		ids:      make(map[string]int64, len(names)),
		pairs:    make(map[[2]int64]*core.Edge),
		edges:    g.Edges(),
	}
	for i, name := range names {
		c.ids[name] = int64(i)
		c.Directed.AddNode(simple.Node(i))
	}
	for _, e := range c.edges {
		u, v := c.ids[e.From], c.ids[e.To]
		if u == v {
			c.Loops = append(c.Loops, e)
			continue
		}
		c.pairs[[2]int64{u, v}] = e
		c.Directed.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
	}

	return c, nil
}

// NodeID returns the gonum node ID of vertex id.
func (c *Gonum) NodeID(id string) (int64, bool) {
	n, ok := c.ids[id]
	return n, ok
}

// Name returns the vertex ID of gonum node n, or "" if out of range.
func (c *Gonum) Name(n int64) string {
	if n < 0 || n >= int64(len(c.names)) {
		return ""
	}
	return c.names[n]
}

// Edge returns the core edge behind gonum edge u→v, or nil.
func (c *Gonum) Edge(u, v int64) *core.Edge {
	return c.pairs[[2]int64{u, v}]
}

// Cycles enumerates all elementary cycles as forward-ordered edge lists.
// Self-loops come first, then Johnson's cycles, each rotated to start at its
// smallest node and ordered by length and nodes.
// Complexity: O((V + E)(C + 1)) for C cycles; exponential in the worst case.
func (c *Gonum) Cycles() [][]*core.Edge {
	out := make([][]*core.Edge, 0, len(c.Loops))
	for _, e := range c.Loops {
		out = append(out, []*core.Edge{e})
	}

	raw := topo.DirectedCyclesIn(c.Directed)
	sorted := make([][]int64, 0, len(raw))
	for _, cyc := range raw {
		ids := nodeIDs(cyc)
		if len(ids) > 1 && ids[0] == ids[len(ids)-1] {
			ids = ids[:len(ids)-1]
		}
		sorted = append(sorted, rotateMin(ids))
	}
	sort.Slice(sorted, func(i, j int) bool { return lessIDs(sorted[i], sorted[j]) })

	for _, ids := range sorted {
		out = append(out, c.edgeCycle(ids))
	}

	return out
}

// NegativeCycleFree reports whether no cycle has negative total weight,
// using gonum's Bellman-Ford from a virtual source joined to every node by
// zero-weight edges. Self-loops are checked directly.
//
// Errors:
//   - ErrNilWeight, ErrBadWeight.
//
// Complexity: O(V·E).
func (c *Gonum) NegativeCycleFree(weight func(*core.Edge) float64) (bool, error) {
	if weight == nil {
		return false, ErrNilWeight
	}
	for _, e := range c.Loops {
		w := weight(e)
		if math.IsNaN(w) {
			return false, fmt.Errorf("edge %s: %w", e.ID, ErrBadWeight)
		}
		if w < 0 {
			return false, nil
		}
	}

	wg := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i := range c.names {
		wg.AddNode(simple.Node(i))
	}
	for key, e := range c.pairs {
		w := weight(e)
		if math.IsNaN(w) {
			return false, fmt.Errorf("edge %s: %w", e.ID, ErrBadWeight)
		}
		wg.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(key[0]), T: simple.Node(key[1]), W: w})
	}
	source := simple.Node(len(c.names))
	wg.AddNode(source)
	for i := range c.names {
		wg.SetWeightedEdge(simple.WeightedEdge{F: source, T: simple.Node(i)})
	}

	_, ok := path.BellmanFordFrom(source, wg)

	return ok, nil
}

// nodeIDs projects gonum nodes to their IDs.
func nodeIDs(nodes []graph.Node) []int64 {
	ids := make([]int64, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID()
	}
	return ids
}

// rotateMin rotates a cyclic sequence so its smallest ID comes first.
func rotateMin(ids []int64) []int64 {
	if len(ids) == 0 {
		return ids
	}
	m := 0
	for i := range ids {
		if ids[i] < ids[m] {
			m = i
		}
	}
	return append(append(make([]int64, 0, len(ids)), ids[m:]...), ids[:m]...)
}

// lessIDs orders by length, then lexicographically.
func lessIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
