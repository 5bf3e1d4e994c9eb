package parametric_test

import (
	"fmt"

	"github.com/katalvlaran/cycleratio/core"
	"github.com/katalvlaran/cycleratio/parametric"
)

// ExampleMaxParametric finds the cheapest cycle per unit of time in a small
// timing graph. Weight and ratio functions read the "cost" and "time" edge
// attributes.
func ExampleMaxParametric() {
	g := core.NewGraph()
	for _, a := range []struct {
		u, v string
		c    float64
	}{{"A", "B", 7}, {"B", "A", -1}, {"B", "C", 3}, {"C", "B", 0}, {"C", "A", 2}, {"A", "C", 4}} {
		_, _ = g.AddEdge(a.u, a.v, core.WithEdgeAttr("cost", a.c), core.WithEdgeAttr("time", 1))
	}

	w := func(e *core.Edge, r float64) float64 {
		c, _ := e.Float("cost")
		t, _ := e.Float("time")
		return c - r*t
	}
	rf := func(cycle []*core.Edge) (float64, error) {
		var c, t float64
		for _, e := range cycle {
			ec, _ := e.Float("cost")
			et, _ := e.Float("time")
			c, t = c+ec, t+et
		}
		return c / t, nil
	}

	res, err := parametric.NewMaxParametric().Search(g, 42, w, rf)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("ratio:", res.Ratio)
	fmt.Println("cycle length:", len(res.Cycle))

	// Output:
	// ratio: 1
	// cycle length: 3
}
