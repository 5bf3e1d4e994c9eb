// Package cycleratio finds the minimum cycle ratio of a directed graph:
// the cycle C minimising Σcost(e) / Σtime(e) over the edges of C.
//
// 🚀 How it works
//
//	The ratio problem is turned into a sequence of negative-cycle queries.
//	For a guess r every edge weighs cost − r·time; a cycle is negative under
//	that weight exactly when its ratio is below r. Starting from a bound r0
//	that no cycle can exceed, an oracle lowers r until no negative cycle is
//	left, and the last cycle found is optimal.
//
// 🧩 Packages
//
//	core/       - thread-safe directed graph with per-edge attribute maps
//	builder/    - deterministic constructors: cycle, path, complete, random
//	negcycle/   - policy-graph negative cycle finder (Howard-style relaxation)
//	parametric/ - oracles: MaxParametric, Bisection, Exhaustive
//	mcr/        - attribute defaulting, weight, ratio, bound, MinCycleRatio
//	converters/ - gonum view for cycle enumeration and cross-checks
//	metrics/    - Prometheus recorder for solves
//	cmd/mcr     - command-line front end (YAML config, zap logging)
//
// Quick example (ring of five, one expensive edge):
//
//	0 ─5/1─▶ 1 ─1/1─▶ 2 ─1/1─▶ 3 ─1/1─▶ 4 ─1/1─▶ 0
//
//	r0 = 5·5/1 = 25, minimum ratio = 9/5 = 1.8.
//
//	go get github.com/katalvlaran/cycleratio
package cycleratio
