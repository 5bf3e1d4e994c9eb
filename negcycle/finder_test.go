package negcycle_test

import (
	"context"
	"math"
	"testing"

	"github.com/katalvlaran/cycleratio/core"
	"github.com/katalvlaran/cycleratio/negcycle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// costWeight reads the "cost" attribute; tests always set it.
func costWeight(e *core.Edge) float64 {
	c, err := e.Float("cost")
	if err != nil {
		return math.NaN()
	}
	return c
}

// build creates a graph from (from, to, cost) triples in order.
func build(t *testing.T, loops bool, edges ...struct {
	u, v string
	c    float64
}) *core.Graph {
	t.Helper()
	var opts []core.GraphOption
	if loops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)
	for _, e := range edges {
		_, err := g.AddEdge(e.u, e.v, core.WithEdgeAttr("cost", e.c))
		require.NoError(t, err)
	}
	return g
}

type arc = struct {
	u, v string
	c    float64
}

// requireClosedWalk asserts forward order and closure.
func requireClosedWalk(t *testing.T, cycle []*core.Edge) {
	t.Helper()
	require.NotEmpty(t, cycle)
	for i := range cycle {
		next := cycle[(i+1)%len(cycle)]
		require.Equal(t, cycle[i].To, next.From, "edge %d does not chain", i)
	}
}

func TestFindNegCycle_NoneOnPositiveGraph(t *testing.T) {
	g := build(t, false, arc{"A", "B", 1}, arc{"B", "C", 2}, arc{"C", "A", 3})
	f, err := negcycle.NewFinder(g)
	require.NoError(t, err)

	dist := map[string]float64{}
	cycle, err := f.FindNegCycle(context.Background(), dist, costWeight)
	require.NoError(t, err)
	assert.Nil(t, cycle)
	assert.Len(t, dist, 3)
}

func TestFindNegCycle_Triangle(t *testing.T) {
	g := build(t, false, arc{"A", "B", 1}, arc{"B", "C", -4}, arc{"C", "A", 2}, arc{"A", "C", 5})
	f, err := negcycle.NewFinder(g)
	require.NoError(t, err)

	cycle, err := f.FindNegCycle(context.Background(), map[string]float64{}, costWeight)
	require.NoError(t, err)
	requireClosedWalk(t, cycle)
	assert.Len(t, cycle, 3)
	assert.Equal(t, -1.0, negcycle.Weight(cycle, costWeight))
}

func TestFindNegCycle_SelfLoop(t *testing.T) {
	g := build(t, true, arc{"A", "B", 1}, arc{"B", "B", -1})
	f, err := negcycle.NewFinder(g)
	require.NoError(t, err)

	cycle, err := f.FindNegCycle(context.Background(), map[string]float64{}, costWeight)
	require.NoError(t, err)
	require.Len(t, cycle, 1)
	assert.Equal(t, "B", cycle[0].From)
	assert.Equal(t, "B", cycle[0].To)
}

func TestFindNegCycle_ZeroCycleIsNotNegative(t *testing.T) {
	g := build(t, false, arc{"A", "B", 1}, arc{"B", "A", -1})
	f, err := negcycle.NewFinder(g)
	require.NoError(t, err)

	cycle, err := f.FindNegCycle(context.Background(), map[string]float64{}, costWeight)
	require.NoError(t, err)
	assert.Nil(t, cycle)
}

func TestFindNegCycle_MaxRounds(t *testing.T) {
	// The 2-cycle needs two passes before it appears in the policy graph.
	g := build(t, false, arc{"A", "B", 1}, arc{"B", "A", -2})

	f, err := negcycle.NewFinder(g, negcycle.WithMaxRounds(1))
	require.NoError(t, err)
	_, err = f.FindNegCycle(context.Background(), map[string]float64{}, costWeight)
	require.ErrorIs(t, err, negcycle.ErrNoConvergence)

	f, err = negcycle.NewFinder(g)
	require.NoError(t, err)
	cycle, err := f.FindNegCycle(context.Background(), map[string]float64{}, costWeight)
	require.NoError(t, err)
	requireClosedWalk(t, cycle)
	assert.Len(t, cycle, 2)
}

func TestFindNegCycle_WarmStartKeepsLabels(t *testing.T) {
	g := build(t, false, arc{"A", "B", -1}, arc{"B", "C", -1})
	f, err := negcycle.NewFinder(g)
	require.NoError(t, err)

	dist := map[string]float64{"A": -10}
	cycle, err := f.FindNegCycle(context.Background(), dist, costWeight)
	require.NoError(t, err)
	assert.Nil(t, cycle)
	assert.Equal(t, map[string]float64{"A": -10, "B": -11, "C": -12}, dist)
}

func TestFindNegCycle_Errors(t *testing.T) {
	_, err := negcycle.NewFinder(nil)
	require.ErrorIs(t, err, negcycle.ErrNilGraph)

	g := build(t, false, arc{"A", "B", 1})
	f, err := negcycle.NewFinder(g)
	require.NoError(t, err)

	_, err = f.FindNegCycle(context.Background(), map[string]float64{}, nil)
	require.ErrorIs(t, err, negcycle.ErrNilWeight)

	nan := func(*core.Edge) float64 { return math.NaN() }
	_, err = f.FindNegCycle(context.Background(), map[string]float64{}, nan)
	require.ErrorIs(t, err, negcycle.ErrBadWeight)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.FindNegCycle(ctx, map[string]float64{}, costWeight)
	require.ErrorIs(t, err, context.Canceled)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { negcycle.WithMaxRounds(-1) })
	assert.Panics(t, func() { negcycle.WithTolerance(-1e-9) })
	assert.Panics(t, func() { negcycle.WithTolerance(math.NaN()) })
}

func TestFindNegCycle_Tolerance(t *testing.T) {
	g := build(t, false, arc{"A", "B", 1}, arc{"B", "A", -1.5})
	f, err := negcycle.NewFinder(g, negcycle.WithTolerance(1))
	require.NoError(t, err)

	// improving A by 1.5 does not clear the 1.5 threshold
	dist := map[string]float64{}
	cycle, err := f.FindNegCycle(context.Background(), dist, costWeight)
	require.NoError(t, err)
	assert.Nil(t, cycle)
	assert.Equal(t, map[string]float64{"A": 0, "B": 0}, dist)

	f, err = negcycle.NewFinder(g, negcycle.WithTolerance(0.1))
	require.NoError(t, err)
	cycle, err = f.FindNegCycle(context.Background(), map[string]float64{}, costWeight)
	require.NoError(t, err)
	requireClosedWalk(t, cycle)
}
