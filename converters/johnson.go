// SPDX-License-Identifier: MIT
//
// File: johnson.go
// Role: bounded elementary-cycle enumeration (Johnson 1975) over a Gonum view.
// Determinism:
//   - Output order matches Cycles(): self-loops, then by (length, node IDs).
// Complexity:
//   - Time:  O((V + E)(C + 1)) plus one Tarjan SCC pass per root, O(V·(V + E)).
//   - Space: O(V + E) for the search state, plus the cycles kept (≤ limit).

package converters

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/cycleratio/core"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// ErrCycleLimit indicates the graph holds more cycles than the requested limit.
var ErrCycleLimit = errors.New("converters: cycle limit exceeded")

// ctxCheckEvery is the number of search steps between context checks.
const ctxCheckEvery = 1024

// CyclesWithin enumerates the same cycles as Cycles, but stops with
// ErrCycleLimit as soon as more than limit cycles have been found (limit 0
// means no limit) and checks ctx while searching. Work done before the stop
// is bounded by the cycles found so far, not by the total cycle count.
//
// Errors:
//   - ErrCycleLimit, or ctx.Err() wrapped.
func (c *Gonum) CyclesWithin(ctx context.Context, limit int) ([][]*core.Edge, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if limit > 0 && len(c.Loops) > limit {
		return nil, fmt.Errorf("%d self-loops, limit %d: %w", len(c.Loops), limit, ErrCycleLimit)
	}

	n := len(c.names)
	j := &johnson{
		ctx:     ctx,
		limit:   limit,
		found:   len(c.Loops),
		adj:     make([][]int64, n),
		inComp:  make([]bool, n),
		blocked: make([]bool, n),
		blockBy: make([]map[int64]struct{}, n),
	}
	for _, e := range c.edges {
		u, v := c.ids[e.From], c.ids[e.To]
		if u != v {
			j.adj[u] = append(j.adj[u], v)
		}
	}

	for s := int64(0); s < int64(n); s++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("cycle enumeration: %w", err)
		}
		if !j.component(s) {
			continue
		}
		j.root = s
		j.circuit(s)
		if j.err != nil {
			return nil, j.err
		}
	}

	sort.Slice(j.cycles, func(a, b int) bool { return lessIDs(j.cycles[a], j.cycles[b]) })
	out := make([][]*core.Edge, 0, len(c.Loops)+len(j.cycles))
	for _, e := range c.Loops {
		out = append(out, []*core.Edge{e})
	}
	for _, ids := range j.cycles {
		out = append(out, c.edgeCycle(ids))
	}

	return out, nil
}

// edgeCycle maps a node cycle to its forward-ordered core edges.
func (c *Gonum) edgeCycle(ids []int64) []*core.Edge {
	cycle := make([]*core.Edge, len(ids))
	for i := range ids {
		cycle[i] = c.Edge(ids[i], ids[(i+1)%len(ids)])
	}
	return cycle
}

// johnson holds the search state of one CyclesWithin call.
type johnson struct {
	ctx   context.Context
	limit int
	found int
	steps int
	err   error

	adj     [][]int64
	root    int64
	inComp  []bool
	blocked []bool
	blockBy []map[int64]struct{}
	stack   []int64
	cycles  [][]int64
}

// component marks the strongly connected component of s within the
// subgraph induced by nodes ≥ s and resets the blocking state on it.
// It reports false when that component has a single node.
func (j *johnson) component(s int64) bool {
	n := int64(len(j.adj))
	sub := simple.NewDirectedGraph()
	for v := s; v < n; v++ {
		sub.AddNode(simple.Node(v))
	}
	for u := s; u < n; u++ {
		for _, v := range j.adj[u] {
			if v >= s {
				sub.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
			}
		}
	}

	for i := range j.inComp {
		j.inComp[i] = false
	}
	for _, scc := range topo.TarjanSCC(sub) {
		if !containsNode(nodeIDs(scc), s) {
			continue
		}
		if len(scc) < 2 {
			return false
		}
		for _, v := range nodeIDs(scc) {
			j.inComp[v] = true
			j.blocked[v] = false
			j.blockBy[v] = nil
		}
		return true
	}

	return false
}

// circuit extends the current path from v and reports whether a cycle back
// to the root was closed through it. It returns early once j.err is set.
func (j *johnson) circuit(v int64) bool {
	j.steps++
	if j.steps%ctxCheckEvery == 0 {
		if err := j.ctx.Err(); err != nil {
			j.err = fmt.Errorf("cycle enumeration: %w", err)
			return false
		}
	}

	closed := false
	j.stack = append(j.stack, v)
	j.blocked[v] = true

	for _, w := range j.adj[v] {
		if !j.inComp[w] {
			continue
		}
		if w == j.root {
			j.emit()
			closed = true
		} else if !j.blocked[w] && j.circuit(w) {
			closed = true
		}
		if j.err != nil {
			return false
		}
	}

	if closed {
		j.unblock(v)
	} else {
		for _, w := range j.adj[v] {
			if !j.inComp[w] {
				continue
			}
			if j.blockBy[w] == nil {
				j.blockBy[w] = make(map[int64]struct{})
			}
			j.blockBy[w][v] = struct{}{}
		}
	}
	j.stack = j.stack[:len(j.stack)-1]

	return closed
}

func (j *johnson) unblock(u int64) {
	j.blocked[u] = false
	for w := range j.blockBy[u] {
		delete(j.blockBy[u], w)
		if j.blocked[w] {
			j.unblock(w)
		}
	}
}

// emit records the stack as a cycle; the root is its smallest node.
func (j *johnson) emit() {
	j.found++
	if j.limit > 0 && j.found > j.limit {
		j.err = fmt.Errorf("more than %d cycles: %w", j.limit, ErrCycleLimit)
		return
	}
	j.cycles = append(j.cycles, append([]int64(nil), j.stack...))
}

func containsNode(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
