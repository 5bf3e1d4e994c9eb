// Package parametric implements ratio oracles: given a graph, an upper bound
// r0, a ratio-parametrized weight w(e, r) and a cycle ratio function, an
// oracle returns the minimum ratio reachable from r0 together with a critical
// cycle and the distance labels of its last relaxation.
//
// Three oracles share one signature:
//
//   - MaxParametric walks r downward: find a negative cycle under w(·, r),
//     move r to that cycle's ratio, repeat until no cycle improves on r.
//     Distance labels are carried across probes, so later probes usually
//     settle in a few passes.
//   - Bisection brackets the optimum between a cycle-free lower bound and the
//     best witness cycle, halving the bracket until it is within Eps.
//   - Exhaustive enumerates every elementary cycle with gonum and takes the
//     minimum directly. It is exact and exponential; use it on small graphs
//     and as a reference in tests.
//
// All oracles report a true cycle ratio, never a bracket midpoint. When no
// cycle has ratio below r0 (acyclic graphs included) the result carries
// Ratio == r0, a nil Cycle, and HasCycle() == false.
//
// Errors from the ratio function (for example a zero-time cycle) are returned
// wrapped, so errors.Is still matches the caller's sentinel.
//
// Example:
//
//	res, err := parametric.NewMaxParametric().Search(g, r0, w, ratio)
//	if err != nil {
//	    return err
//	}
//	if res.HasCycle() {
//	    fmt.Println(res.Ratio, len(res.Cycle))
//	}
package parametric
