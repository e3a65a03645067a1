// Package tour - unified dispatcher for the exact tour solvers.
//
// Solve is the canonical entry point: it validates the graph and start city,
// handles the trivial single-city case, verifies graph completeness upfront,
// then routes to the requested algorithm.
//
// Design principles (shared with the rest of the package):
//   - Deterministic: fixed enumeration orders; no randomness, no map-order
//     dependence anywhere on the result path.
//   - Strict sentinels: only errors from types.go, optionally wrapped with
//     detail; no panics on user input.
//   - Stateless: a solver owns no state between calls and never mutates the
//     graph it reads.
package tour

import "fmt"

// Solve computes the minimum-cost closed tour over all cities in g, starting
// and ending at start.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain at least one city (ErrEmptyGraph).
//  3. start must be present in g (ErrStartNotFound).
//  4. g must be complete over its cities (ErrIncompleteGraph). Checking this
//     before enumeration keeps the failure independent of candidate order: a
//     missing edge always fails the whole call, never just one candidate.
//
// Edge cases:
//   - Single-city graph: returns the trivial route [start, start] with cost 0.
//
// On success Result.Route has n+1 entries closed at start, and Result.Cost
// is the sum of consecutive edge weights including the closing edge. Among
// equal-cost tours the Exhaustive algorithm returns the first one in
// lexicographic permutation order over the sorted non-start cities;
// ExactHeldKarp is equally deterministic but may pick a different member of
// a cost tie.
//
// Pass an immutable view (citygraph's Snapshot) when writers may be active;
// Solve itself performs no locking.
//
// Complexity: per algorithm — O(n!·n) for Exhaustive, O(n²·2ⁿ) for
// ExactHeldKarp — plus O(n²) for the completeness check.
func Solve(g Graph, start string, opts ...Option) (Result, error) {
	// Build effective options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// Stage 1 - input validation.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return Result{}, ErrEmptyGraph
	}
	if !g.HasNode(start) {
		return Result{}, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	// Stage 2 - trivial instance: one city, zero-cost self-closure.
	if len(nodes) == 1 {
		return Result{Route: []string{start, start}, Cost: 0}, nil
	}

	// Stage 3 - completeness gate shared by both algorithms.
	if err := ensureComplete(g, nodes); err != nil {
		return Result{}, err
	}

	// Stage 4 - route by algorithm.
	switch cfg.Algo {
	case Exhaustive:
		return solveExhaustive(g, nodes, start, cfg)
	case ExactHeldKarp:
		return solveHeldKarp(g, nodes, start, cfg)
	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
}

// ensureComplete verifies that every pair of distinct cities has an edge.
// Every pair is consecutive in some Hamiltonian cycle, so one missing edge
// already dooms the whole solve.
//
// Complexity: O(n²).
func ensureComplete(g Graph, nodes []string) error {
	var (
		i, j int
		err  error
	)
	for i = 0; i < len(nodes); i++ {
		for j = i + 1; j < len(nodes); j++ {
			if _, err = g.Weight(nodes[i], nodes[j]); err != nil {
				return fmt.Errorf("%w: missing %q–%q", ErrIncompleteGraph, nodes[i], nodes[j])
			}
		}
	}

	return nil
}

// restOf returns nodes minus start, preserving the sorted order.
// The caller owns the returned slice.
//
// Complexity: O(n).
func restOf(nodes []string, start string) []string {
	rest := make([]string, 0, len(nodes)-1)

	var id string
	for _, id = range nodes {
		if id != start {
			rest = append(rest, id)
		}
	}

	return rest
}
