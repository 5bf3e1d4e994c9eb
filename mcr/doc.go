// Package mcr computes the minimum cycle ratio (MCR) of a directed graph:
// the cycle C minimizing Σcost(e)/Σtime(e) over its edges.
//
// The problem is reduced to parametric negative-cycle search. For a
// candidate ratio r every edge is reweighted to cost(e) - r·time(e); a cycle
// is negative under that weight exactly when its ratio is below r (for
// positive times). MinCycleRatio
//
//  1. defaults missing cost and time attributes to 1 (Prepare),
//  2. computes an upper bound r0 (InitialBound),
//  3. hands the graph, r0, Weight and Ratio to an Oracle,
//  4. returns the oracle's Result unchanged.
//
// Defaulting writes into the caller's graph. WithReadOnly switches to
// resolving defaults on read instead; Prepare runs the write step on its
// own for callers that want it explicit.
//
// Oracles live in package parametric; OracleByName picks one by name.
//
// Example:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Cycle(5))
//	res, err := mcr.MinCycleRatio(g)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Ratio, res.HasCycle())
package mcr
