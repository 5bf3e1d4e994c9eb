// Package converters provides adapters from core.Graph to gonum/graph.
//
// ToGonum maps vertex IDs to dense int64 node IDs (sorted-ID order) and
// builds a simple.DirectedGraph over the non-loop edges. Self-loops are kept
// aside in Gonum.Loops because gonum simple graphs reject self edges.
//
// On top of the mapping:
//
//   - Cycles enumerates every elementary cycle (Johnson, via graph/topo),
//     including one-edge cycles for self-loops, as core edge lists.
//   - NegativeCycleFree answers "is there a negative cycle under weight?"
//     with gonum's Bellman-Ford from a virtual source (graph/path).
//
// These are reference implementations for small and medium graphs: cycle
// enumeration is exponential in the worst case.
package converters
