package parametric_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/cycleratio/core"
	"github.com/katalvlaran/cycleratio/parametric"
	"github.com/stretchr/testify/require"
)

var errZeroTime = errors.New("test: zero total time")

// arc is one directed edge with its cost and time.
type arc struct {
	u, v       string
	cost, time float64
}

func build(t testing.TB, arcs ...arc) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithLoops())
	for _, a := range arcs {
		_, err := g.AddEdge(a.u, a.v,
			core.WithEdgeAttr("cost", a.cost),
			core.WithEdgeAttr("time", a.time))
		require.NoError(t, err)
	}
	return g
}

func attr(e *core.Edge, key string) float64 {
	v, err := e.Float(key)
	if err != nil {
		panic(err)
	}
	return v
}

func weight(e *core.Edge, r float64) float64 {
	return attr(e, "cost") - r*attr(e, "time")
}

func ratio(cycle []*core.Edge) (float64, error) {
	var c, t float64
	for _, e := range cycle {
		c += attr(e, "cost")
		t += attr(e, "time")
	}
	if t == 0 {
		return 0, errZeroTime
	}
	return c / t, nil
}

// oracle is the method set shared by every implementation.
type oracle interface {
	Name() string
	Search(g *core.Graph, r0 float64, w parametric.WeightFunc, rf parametric.RatioFunc) (parametric.Result, error)
}

func oracles(opts ...parametric.Option) []oracle {
	return []oracle{
		parametric.NewMaxParametric(opts...),
		parametric.NewBisection(opts...),
		parametric.NewExhaustive(opts...),
	}
}

func fiveCycle(t testing.TB) *core.Graph {
	return build(t,
		arc{"a", "b", 5, 1}, arc{"b", "c", 1, 1}, arc{"c", "d", 1, 1},
		arc{"d", "e", 1, 1}, arc{"e", "a", 1, 1})
}

// timingGraph has cycles A-B-A 3, B-C-B 1.5, A-C-A 3, A-B-C-A 4, A-C-B-A 1.
func timingGraph(t testing.TB) *core.Graph {
	return build(t,
		arc{"A", "B", 7, 1}, arc{"B", "A", -1, 1}, arc{"B", "C", 3, 1},
		arc{"C", "B", 0, 1}, arc{"C", "A", 2, 1}, arc{"A", "C", 4, 1})
}

func requireClosedWalk(t *testing.T, cycle []*core.Edge) {
	t.Helper()
	require.NotEmpty(t, cycle)
	for i := range cycle {
		require.Equal(t, cycle[i].To, cycle[(i+1)%len(cycle)].From, "edge %d does not chain", i)
	}
}
