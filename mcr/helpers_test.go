package mcr_test

import (
	"testing"

	"github.com/katalvlaran/cycleratio/builder"
	"github.com/katalvlaran/cycleratio/core"
	"github.com/stretchr/testify/require"
)

// arc is one directed edge; nil attribute values are left unset.
type arc struct {
	u, v       string
	cost, time interface{}
}

func build(t testing.TB, arcs ...arc) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithLoops())
	for _, a := range arcs {
		var opts []core.EdgeOption
		if a.cost != nil {
			opts = append(opts, core.WithEdgeAttr("cost", a.cost))
		}
		if a.time != nil {
			opts = append(opts, core.WithEdgeAttr("time", a.time))
		}
		_, err := g.AddEdge(a.u, a.v, opts...)
		require.NoError(t, err)
	}
	return g
}

// fiveCycle is 0→1→2→3→4→0 with no attributes except cost 5 on 1→2.
func fiveCycle(t testing.TB) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(5))
	require.NoError(t, err)
	e, err := g.EdgeBetween("1", "2")
	require.NoError(t, err)
	require.NoError(t, g.SetEdgeAttr(e.ID, "cost", 5))
	return g
}

func timingGraph(t testing.TB) *core.Graph {
	return build(t,
		arc{"A", "B", 7, 1}, arc{"B", "A", -1, 1}, arc{"B", "C", 3, 1},
		arc{"C", "B", 0, 1}, arc{"C", "A", 2, 1}, arc{"A", "C", 4, 1})
}

// randomGraph draws a seeded digraph with self-loops, mixed-sign integer
// costs and integer times in [1,4].
func randomGraph(t testing.TB, seed int64, n int, p float64, minCost, maxCost int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithLoops()},
		[]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithIntUniformAttr("cost", minCost, maxCost),
			builder.WithIntUniformAttr("time", 1, 4),
		},
		builder.RandomSparse(n, p),
	)
	require.NoError(t, err)
	return g
}

func requireClosedWalk(t *testing.T, cycle []*core.Edge) {
	t.Helper()
	require.NotEmpty(t, cycle)
	for i := range cycle {
		require.Equal(t, cycle[i].To, cycle[(i+1)%len(cycle)].From, "edge %d does not chain", i)
	}
}
