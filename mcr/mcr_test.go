package mcr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/katalvlaran/cycleratio/core"
	"github.com/katalvlaran/cycleratio/mcr"
	"github.com/katalvlaran/cycleratio/metrics"
	"github.com/katalvlaran/cycleratio/parametric"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinCycleRatio_FiveCycle(t *testing.T) {
	for _, name := range mcr.OracleNames() {
		t.Run(name, func(t *testing.T) {
			oracle, err := mcr.OracleByName(name)
			require.NoError(t, err)

			g := fiveCycle(t)
			res, err := mcr.MinCycleRatio(g, mcr.WithOracle(oracle), mcr.WithLogger(testr.New(t)))
			require.NoError(t, err)
			require.True(t, res.HasCycle())
			requireClosedWalk(t, res.Cycle)
			assert.Len(t, res.Cycle, 5)
			assert.InDelta(t, 1.8, res.Ratio, 1e-12)
			assert.Len(t, res.Dist, 5)

			// Defaults were written in place.
			assert.Equal(t, 5, g.Stats().AttrCounts["cost"])
			assert.Equal(t, 5, g.Stats().AttrCounts["time"])
		})
	}
}

func TestMinCycleRatio_TimingGraph(t *testing.T) {
	for _, name := range mcr.OracleNames() {
		t.Run(name, func(t *testing.T) {
			oracle, err := mcr.OracleByName(name)
			require.NoError(t, err)
			res, err := mcr.MinCycleRatio(timingGraph(t), mcr.WithOracle(oracle))
			require.NoError(t, err)
			assert.Equal(t, 1.0, res.Ratio)
			require.Len(t, res.Cycle, 3)
			requireClosedWalk(t, res.Cycle)

			var from []string
			for _, e := range res.Cycle {
				from = append(from, e.From)
			}
			assert.ElementsMatch(t, []string{"A", "B", "C"}, from)
		})
	}
}

func TestMinCycleRatio_DefaultOracle(t *testing.T) {
	res, err := mcr.MinCycleRatio(build(t, arc{"A", "A", 6, 2}))
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Ratio)
	assert.True(t, res.HasCycle())
}

func TestMinCycleRatio_EmptyGraph(t *testing.T) {
	_, err := mcr.MinCycleRatio(core.NewGraph())
	require.ErrorIs(t, err, mcr.ErrUndefinedBound)

	_, err = mcr.MinCycleRatio(nil)
	require.ErrorIs(t, err, mcr.ErrNilGraph)
}

func TestMinCycleRatio_InvalidBound(t *testing.T) {
	_, err := mcr.MinCycleRatio(build(t, arc{"A", "B", 1, 0}, arc{"B", "A", 1, 0}))
	require.ErrorIs(t, err, mcr.ErrInvalidBound)
}

func TestMinCycleRatio_Acyclic(t *testing.T) {
	g := build(t, arc{"A", "B", 2, 1}, arc{"B", "C", 3, 1}, arc{"A", "C", 1, 1})
	r0, err := mcr.InitialBound(g)
	require.NoError(t, err)

	res, err := mcr.MinCycleRatio(g)
	require.NoError(t, err)
	assert.False(t, res.HasCycle())
	assert.Nil(t, res.Cycle)
	assert.Equal(t, r0, res.Ratio)
}

func TestMinCycleRatio_ReadOnly(t *testing.T) {
	g := fiveCycle(t)
	res, err := mcr.MinCycleRatio(g, mcr.WithReadOnly())
	require.NoError(t, err)
	assert.InDelta(t, 1.8, res.Ratio, 1e-12)

	st := g.Stats()
	assert.Equal(t, 1, st.AttrCounts["cost"], "only the explicit cost")
	assert.Zero(t, st.AttrCounts["time"])
}

func TestMinCycleRatio_CustomKeysAndDefaults(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("x", "y", core.WithEdgeAttr("delay", 9))
	require.NoError(t, err)
	_, err = g.AddEdge("y", "x")
	require.NoError(t, err)

	res, err := mcr.MinCycleRatio(g, mcr.WithKeys("delay", "tokens"), mcr.WithDefaults(3, 4))
	require.NoError(t, err)
	assert.Equal(t, 1.5, res.Ratio)

	e, err := g.EdgeBetween("y", "x")
	require.NoError(t, err)
	assert.Equal(t, 3.0, e.Attrs["delay"])
	assert.Equal(t, 4.0, e.Attrs["tokens"])
}

func TestMinCycleRatio_NonNumeric(t *testing.T) {
	g := build(t, arc{"A", "B", "cheap", 1}, arc{"B", "A", 1, 1})
	_, err := mcr.MinCycleRatio(g)
	require.ErrorIs(t, err, core.ErrAttrNotNumeric)
}

// degenerateOracle hands the orchestrator's ratio function a zero-time cycle.
type degenerateOracle struct{}

func (degenerateOracle) Search(g *core.Graph, _ float64, _ parametric.WeightFunc, rf parametric.RatioFunc) (parametric.Result, error) {
	e, err := g.EdgeBetween("A", "B")
	if err != nil {
		return parametric.Result{}, err
	}
	if err = g.SetEdgeAttr(e.ID, "time", 0); err != nil {
		return parametric.Result{}, err
	}
	_, err = rf([]*core.Edge{e})
	return parametric.Result{}, err
}

func TestMinCycleRatio_DegenerateCyclePropagates(t *testing.T) {
	g := build(t, arc{"A", "B", 1, 1}, arc{"B", "A", 1, 1})
	_, err := mcr.MinCycleRatio(g, mcr.WithOracle(degenerateOracle{}))
	require.ErrorIs(t, err, mcr.ErrDegenerateCycle)
}

// staticOracle returns a fixed result and remembers the bound it was given.
type staticOracle struct {
	res parametric.Result
	err error
	r0  float64
}

func (s *staticOracle) Search(_ *core.Graph, r0 float64, _ parametric.WeightFunc, _ parametric.RatioFunc) (parametric.Result, error) {
	s.r0 = r0
	return s.res, s.err
}

func TestMinCycleRatio_PassesResultThrough(t *testing.T) {
	want := parametric.Result{Ratio: -7, Dist: map[string]float64{"A": -1}, Iterations: 42}
	o := &staticOracle{res: want}
	g := fiveCycle(t)

	got, err := mcr.MinCycleRatio(g, mcr.WithOracle(o))
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, 25.0, o.r0)

	boom := errors.New("boom")
	_, err = mcr.MinCycleRatio(g, mcr.WithOracle(&staticOracle{err: boom}))
	require.ErrorIs(t, err, boom)
}

func TestMinCycleRatio_Recorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	require.NoError(t, err)

	_, err = mcr.MinCycleRatio(fiveCycle(t), mcr.WithRecorder(rec))
	require.NoError(t, err)
	_, err = mcr.MinCycleRatio(build(t, arc{"A", "B", 1, 1}), mcr.WithRecorder(rec))
	require.NoError(t, err)
	_, err = mcr.MinCycleRatio(fiveCycle(t), mcr.WithRecorder(rec), mcr.WithOracle(&staticOracle{err: errors.New("x")}))
	require.Error(t, err)

	n, err := testutil.GatherAndCount(reg, "cycleratio_solves_total")
	require.NoError(t, err)
	assert.Equal(t, 3, n, "cycle, acyclic and error series")
}

func TestOracleByName(t *testing.T) {
	o, err := mcr.OracleByName("")
	require.NoError(t, err)
	assert.IsType(t, &parametric.MaxParametric{}, o)

	_, err = mcr.OracleByName("howard")
	require.ErrorIs(t, err, mcr.ErrUnknownOracle)
}

// TestMinCycleRatio_AgreesWithExhaustive compares the iterative oracles with
// full cycle enumeration on random graphs with mixed-sign costs.
func TestMinCycleRatio_AgreesWithExhaustive(t *testing.T) {
	for seed := int64(1); seed <= 60; seed++ {
		t.Run(fmt.Sprintf("seed%d", seed), func(t *testing.T) {
			g := randomGraph(t, seed, 7, 0.3, -6, 12)
			if g.EdgeCount() == 0 {
				t.Skip("no edges drawn")
			}
			want, err := mcr.MinCycleRatio(g, mcr.WithOracle(parametric.NewExhaustive()))
			require.NoError(t, err)

			for _, o := range []mcr.Oracle{parametric.NewMaxParametric(), parametric.NewBisection()} {
				got, err := mcr.MinCycleRatio(g, mcr.WithOracle(o))
				require.NoError(t, err)
				require.Equal(t, want.HasCycle(), got.HasCycle())
				assert.InDelta(t, want.Ratio, got.Ratio, 1e-6)
				if got.HasCycle() {
					requireClosedWalk(t, got.Cycle)
					r, err := mcr.Ratio(got.Cycle)
					require.NoError(t, err)
					assert.Equal(t, r, got.Ratio)
				}
			}
		})
	}
}
