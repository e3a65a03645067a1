// Package citygraph provides the weighted, undirected city graph that the
// tour solvers operate on.
//
// The graph is a nested adjacency mapping: each city ID maps to its
// neighbors and the distance of the connecting road. Both directions of
// every edge are written in one atomic operation, so a reader can never
// observe a half-inserted (asymmetric) edge.
//
// Guarantees:
//
//   - Undirected: Weight(u,v) == Weight(v,u) always.
//   - No self-loops; weights are non-negative (zero allowed).
//   - A city exists iff it is an endpoint of at least one edge.
//   - Re-inserting an existing pair overwrites the previous distance
//     symmetrically (last-write-wins).
//   - Nodes() enumerates cities in lexicographic order, so downstream
//     algorithms are reproducible regardless of insertion history.
//
// Concurrency:
//
//	All methods are safe for concurrent use; mutations take a write lock,
//	queries a read lock. Long-running consumers (the tour package) should
//	call Snapshot() once and work on the immutable copy rather than holding
//	the live graph across a lengthy computation.
//
// Errors (sentinel):
//
//	– ErrInvalidEdge if AddEdge is given a self-loop or a negative weight.
//	– ErrNoSuchEdge  if Weight is asked for an unrecorded pair.
package citygraph
