// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep *testing.T out of goroutines (collect errors, assert after Wait).

package core_test

import (
	"testing"

	"github.com/katalvlaran/cycleratio/core"
	"github.com/stretchr/testify/require"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexX = "X"
)

// Attribute keys used across core tests.
const (
	KeyCost = "cost"
	KeyTime = "time"
)

// Concurrency sizes.
const (
	NConcurrentAdds   = 200
	NConcurrentRounds = 100
	NReaders          = 50
	NCloners          = 20
)

// mustAddEdge adds from→to with attrs and fails the test on error.
func mustAddEdge(t *testing.T, g *core.Graph, from, to string, opts ...core.EdgeOption) string {
	t.Helper()
	eid, err := g.AddEdge(from, to, opts...)
	require.NoError(t, err)

	return eid
}

// triangle builds A→B→C→A with the given costs and unit times.
func triangle(t *testing.T, costs [3]float64) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	ids := [3]string{VertexA, VertexB, VertexC}
	for i := 0; i < 3; i++ {
		mustAddEdge(t, g, ids[i], ids[(i+1)%3],
			core.WithEdgeAttr(KeyCost, costs[i]),
			core.WithEdgeAttr(KeyTime, 1.0))
	}

	return g
}

// edgeIDs projects edges to their IDs.
func edgeIDs(es []*core.Edge) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.ID
	}

	return out
}
