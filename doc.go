// Package roundtrip computes exact minimum-distance closed tours over small
// graphs of named cities — build the graph edge by edge, then solve the
// Travelling Salesman Problem from any start city.
//
// The module is organized into two library packages and one CLI:
//
//	citygraph/ — the weighted undirected city graph: atomic symmetric edge
//	             insertion, deterministic (sorted) enumeration, immutable
//	             snapshots for long-running consumers.
//	tour/      — stateless exact solvers behind one Solve entry point:
//	             lazy exhaustive enumeration (the contract-defining default)
//	             and Held–Karp dynamic programming, sharing a single error
//	             taxonomy and a reproducible tie-break.
//	cmd/       — the roundtrip binary: one-shot solve from flags or a YAML
//	             plan file, plus an interactive graph-building session.
//
// Everything is deterministic by construction: results depend only on graph
// content and the chosen start city, never on edge insertion history or map
// iteration order.
//
// Exactness over scale is a deliberate trade: both solvers guarantee the
// true optimum, which caps practical instance sizes (≈10–12 cities for the
// exhaustive solver, a few more for Held–Karp). Heuristics are out of scope.
//
// Quick ASCII example:
//
//	    A───10───B
//	     \       │
//	      20     15
//	       \     │
//	        └────C
//
//	g := citygraph.NewGraph()
//	g.AddEdge("A", "B", 10)
//	g.AddEdge("B", "C", 15)
//	g.AddEdge("A", "C", 20)
//	res, err := tour.Solve(g.Snapshot(), "A")
//	// res.Route = [A B C A], res.Cost = 45
package roundtrip
