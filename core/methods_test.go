// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in deterministic behaviors for vertex/edge lifecycle and query APIs.
//   - Validate constraint enforcement (loops, one edge per ordered pair).

package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/cycleratio/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGraph_AddRemoveVertex verifies AddVertex/HasVertex/RemoveVertex lifecycle rules.
func TestGraph_AddRemoveVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(VertexEmpty), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex(VertexA))
	require.True(t, g.HasVertex(VertexA))

	// idempotent
	require.NoError(t, g.AddVertex(VertexA))
	assert.Equal(t, 1, g.VertexCount())

	require.ErrorIs(t, g.RemoveVertex(VertexEmpty), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.RemoveVertex(VertexX), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex(VertexA))
	assert.False(t, g.HasVertex(VertexA))
	assert.False(t, g.HasVertex(VertexEmpty))
}

// TestGraph_RemoveVertexDropsIncidentEdges checks both in- and out-edges go.
func TestGraph_RemoveVertexDropsIncidentEdges(t *testing.T) {
	g := triangle(t, [3]float64{1, 2, 3})
	require.Equal(t, 3, g.EdgeCount())

	require.NoError(t, g.RemoveVertex(VertexB))
	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge(VertexC, VertexA))
	assert.False(t, g.HasEdge(VertexA, VertexB))
	assert.False(t, g.HasEdge(VertexB, VertexC))
}

// TestGraph_AddEdgeConstraints covers loops, empty IDs and parallel edges.
func TestGraph_AddEdgeConstraints(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge(VertexEmpty, VertexB)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge(VertexA, VertexA)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	mustAddEdge(t, g, VertexA, VertexB)
	_, err = g.AddEdge(VertexA, VertexB)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	// the reverse direction is a different ordered pair
	mustAddEdge(t, g, VertexB, VertexA)
	assert.Equal(t, 2, g.EdgeCount())

	looped := core.NewGraph(core.WithLoops())
	eid := mustAddEdge(t, looped, VertexA, VertexA)
	e, err := looped.GetEdge(eid)
	require.NoError(t, err)
	assert.Equal(t, e.From, e.To)
	assert.True(t, looped.Looped())
	assert.False(t, g.Looped())
}

// TestGraph_DirectedOnly checks that an edge is visible only from its source.
func TestGraph_DirectedOnly(t *testing.T) {
	g := core.NewGraph()
	mustAddEdge(t, g, VertexA, VertexB)

	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.False(t, g.HasEdge(VertexB, VertexA))

	out, err := g.OutEdges(VertexB)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = g.OutEdges(VertexX)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestGraph_EdgesInsertionOrder anchors Edges() order past e9 → e10.
func TestGraph_EdgesInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	want := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		want = append(want, mustAddEdge(t, g, fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1)))
	}
	assert.Equal(t, want, edgeIDs(g.Edges()))
	assert.Equal(t, "e10", want[9])
}

// TestGraph_EdgeBetweenAndRemove covers lookup by pair and by ID.
func TestGraph_EdgeBetweenAndRemove(t *testing.T) {
	g := core.NewGraph()
	eid := mustAddEdge(t, g, VertexA, VertexB, core.WithEdgeAttr(KeyCost, 4))

	e, err := g.EdgeBetween(VertexA, VertexB)
	require.NoError(t, err)
	assert.Equal(t, eid, e.ID)

	_, err = g.EdgeBetween(VertexB, VertexA)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)

	require.NoError(t, g.RemoveEdge(eid))
	require.ErrorIs(t, g.RemoveEdge(eid), core.ErrEdgeNotFound)
	_, err = g.GetEdge(eid)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	assert.False(t, g.HasEdge(VertexA, VertexB))

	// the pair is free again
	mustAddEdge(t, g, VertexA, VertexB)
}

// TestGraph_OutEdgesAndAdjacency checks successor listings.
func TestGraph_OutEdgesAndAdjacency(t *testing.T) {
	g := core.NewGraph()
	mustAddEdge(t, g, VertexA, VertexC)
	mustAddEdge(t, g, VertexA, VertexB)
	mustAddEdge(t, g, VertexB, VertexC)

	out, err := g.OutEdges(VertexA)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, VertexC, out[0].To)
	assert.Equal(t, VertexB, out[1].To)

	adj := g.AdjacencyList()
	assert.Equal(t, []string{VertexC, VertexB}, adj[VertexA])
	assert.Equal(t, []string{VertexC}, adj[VertexB])
	assert.Empty(t, adj[VertexC])
}

// TestGraph_FilterEdges removes edges failing the predicate.
func TestGraph_FilterEdges(t *testing.T) {
	g := triangle(t, [3]float64{1, -2, 3})
	g.FilterEdges(func(e *core.Edge) bool {
		c, err := e.Float(KeyCost)
		return err == nil && c > 0
	})
	assert.Equal(t, 2, g.EdgeCount())
	assert.False(t, g.HasEdge(VertexB, VertexC))
}

// TestGraph_CloneIsolatesAttributes ensures writes on a clone do not leak.
func TestGraph_CloneIsolatesAttributes(t *testing.T) {
	g := triangle(t, [3]float64{1, 2, 3})
	c := g.Clone()

	e, err := c.EdgeBetween(VertexA, VertexB)
	require.NoError(t, err)
	require.NoError(t, c.SetEdgeAttr(e.ID, KeyCost, 100.0))

	orig, err := g.EdgeBetween(VertexA, VertexB)
	require.NoError(t, err)
	cost, err := orig.Float(KeyCost)
	require.NoError(t, err)
	assert.Equal(t, 1.0, cost)

	// edge IDs continue on the clone without collisions
	eid := mustAddEdge(t, c, VertexA, VertexC)
	assert.Equal(t, "e4", eid)
	assert.Equal(t, edgeIDs(g.Edges()), edgeIDs(c.Edges())[:3])
}

// TestGraph_CloneEmptyAndClear checks the structural resets.
func TestGraph_CloneEmptyAndClear(t *testing.T) {
	g := triangle(t, [3]float64{1, 2, 3})

	empty := g.CloneEmpty()
	assert.Equal(t, 3, empty.VertexCount())
	assert.Equal(t, 0, empty.EdgeCount())

	g.Clear()
	assert.Equal(t, 0, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, "e1", mustAddEdge(t, g, VertexA, VertexB))
}

// TestGraph_Stats counts loops and present attributes.
func TestGraph_Stats(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	mustAddEdge(t, g, VertexA, VertexA, core.WithEdgeAttr(KeyCost, 6), core.WithEdgeAttr(KeyTime, 2))
	mustAddEdge(t, g, VertexA, VertexB, core.WithEdgeAttr(KeyCost, nil))

	st := g.Stats()
	assert.Equal(t, 2, st.VertexCount)
	assert.Equal(t, 2, st.EdgeCount)
	assert.Equal(t, 1, st.LoopCount)
	assert.Equal(t, 1, st.AttrCounts[KeyCost])
	assert.Equal(t, 1, st.AttrCounts[KeyTime])
}
