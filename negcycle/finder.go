// SPDX-License-Identifier: MIT
// Package negcycle finds negative cycles by relaxing every edge from a
// zero-initialized (or caller-supplied) distance labelling and, after each
// pass, searching the predecessor ("policy") graph for a cycle.
//
// Unlike single-source Bellman-Ford this needs no source vertex, reports a
// cycle as soon as one shows up in the policy graph, and keeps the distance
// labels between calls so a parametric search can warm-start each probe.
//
// Complexity:
//
//   - Time:  O(R·(V + E)) for R relaxation passes.
//   - Space: O(V) for predecessor links and visit marks.
package negcycle

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/cycleratio/core"
)

// Finder holds a snapshot of a graph's topology and the predecessor state of
// the last search. A Finder is not safe for concurrent use.
type Finder struct {
	vertices []string
	edges    []*core.Edge
	options  Options

	pred map[string]string
	edge map[string]*core.Edge
}

// NewFinder snapshots the vertices and edges of g. Attribute values are read
// lazily through the weight function, so later attribute writes are seen;
// later topology changes are not.
func NewFinder(g *core.Graph, opts ...Option) (*Finder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	f := &Finder{
		vertices: g.Vertices(),
		edges:    g.Edges(),
		options:  cfg,
	}
	if f.options.MaxRounds == 0 {
		f.options.MaxRounds = len(f.vertices)*(len(f.edges)+1) + 1
	}

	return f, nil
}

// FindNegCycle relaxes edges against dist until either no label changes
// (returns nil, no cycle) or the policy graph contains a cycle of negative
// total weight (returns it in forward order: cycle[i].To == cycle[i+1].From,
// last.To == first.From).
//
// dist is read and updated in place; vertices missing from it start at 0.
//
// Errors:
//   - ErrNilWeight if weight is nil.
//   - ErrBadWeight if weight yields NaN.
//   - ErrNoConvergence after MaxRounds passes.
//   - ctx.Err() if the context is cancelled between passes.
func (f *Finder) FindNegCycle(ctx context.Context, dist map[string]float64, weight WeightFunc) ([]*core.Edge, error) {
	if weight == nil {
		return nil, ErrNilWeight
	}
	if ctx == nil {
		ctx = context.Background()
	}
	for _, v := range f.vertices {
		if _, ok := dist[v]; !ok {
			dist[v] = 0
		}
	}
	f.pred = make(map[string]string, len(f.vertices))
	f.edge = make(map[string]*core.Edge, len(f.vertices))

	for round := 0; round < f.options.MaxRounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		changed, err := f.relax(dist, weight)
		if err != nil {
			return nil, err
		}
		if !changed {
			return nil, nil
		}
		if handle, ok := f.findCycle(); ok {
			cycle := f.cycleList(handle)
			if f.isNegative(cycle, weight) {
				return cycle, nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %d passes", ErrNoConvergence, f.options.MaxRounds)
}

// relax performs one pass over all edges, recording predecessor links for
// every improvement larger than the relative tolerance.
func (f *Finder) relax(dist map[string]float64, weight WeightFunc) (bool, error) {
	changed := false
	var (
		e    *core.Edge
		w, d float64
	)
	for _, e = range f.edges {
		w = weight(e)
		if math.IsNaN(w) {
			return false, fmt.Errorf("edge %s: %w", e.ID, ErrBadWeight)
		}
		d = dist[e.From] + w
		if dist[e.To]-d > f.options.Tolerance*math.Max(1, math.Abs(d)) {
			dist[e.To] = d
			f.pred[e.To] = e.From
			f.edge[e.To] = e
			changed = true
		}
	}

	return changed, nil
}

// findCycle walks predecessor chains from every vertex, marking each vertex
// with the walk that first reached it. Revisiting a vertex of the current
// walk closes a cycle; that vertex is the handle.
func (f *Finder) findCycle() (string, bool) {
	visited := make(map[string]string, len(f.vertices))
	for _, v := range f.vertices {
		if _, seen := visited[v]; seen {
			continue
		}
		u := v
		for {
			visited[u] = v
			p, ok := f.pred[u]
			if !ok {
				break
			}
			u = p
			if owner, seen := visited[u]; seen {
				if owner == v {
					return u, true
				}
				break
			}
		}
	}

	return "", false
}

// cycleList collects the policy cycle through handle in forward order.
func (f *Finder) cycleList(handle string) []*core.Edge {
	var back []*core.Edge
	v := handle
	for {
		back = append(back, f.edge[v])
		v = f.pred[v]
		if v == handle {
			break
		}
	}
	for i, j := 0, len(back)-1; i < j; i, j = i+1, j-1 {
		back[i], back[j] = back[j], back[i]
	}

	return back
}

// isNegative sums current weights along the cycle. Exact arithmetic makes
// every policy cycle negative; rounding can leave a zero cycle behind.
func (f *Finder) isNegative(cycle []*core.Edge, weight WeightFunc) bool {
	return Weight(cycle, weight) < 0
}

// Weight returns the total weight of a cycle under weight.
func Weight(cycle []*core.Edge, weight WeightFunc) float64 {
	sum := 0.0
	for _, e := range cycle {
		sum += weight(e)
	}

	return sum
}
