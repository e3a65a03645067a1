// Package tour computes exact minimum-weight closed tours (Travelling
// Salesman solutions) over a read-only city graph.
//
// Solvers consume the small Graph query interface rather than a concrete
// store; both *citygraph.Graph and *citygraph.Snapshot satisfy it. Take a
// Snapshot when writers may be active during a solve.
//
// Two exact algorithms are provided behind one Solve entry point:
//
//   - Exhaustive — enumerates every Hamiltonian cycle from the chosen start
//     city and keeps the cheapest one.
//
//   - Complexity: O(n!·n) time, O(n) extra space.
//
//   - Permutations are generated lazily in lexicographic order over the
//     sorted non-start cities; nothing is materialized.
//
//   - Tie-break: among equal-cost tours the first one in that fixed
//     enumeration order wins, so results are reproducible across runs.
//
//   - ExactHeldKarp — bitmask dynamic programming over vertex subsets.
//
//   - Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
//
//   - Same contract and error taxonomy; the preferred choice once n grows
//     past the practical ceiling of exhaustive search (≈10–12 cities).
//
// Both require a complete graph over the snapshot's cities: a single missing
// edge fails the whole call with ErrIncompleteGraph rather than skipping the
// affected cycles. A missing edge is never treated as infinite cost.
//
// Solvers are stateless and never mutate the snapshot; every call returns a
// fresh Result. Cancellation is opt-in via WithContext and is polled between
// candidate evaluations; a canceled solve returns ErrCanceled and no route.
package tour
