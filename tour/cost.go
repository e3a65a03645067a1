// Package tour - route cost utilities.
//
// RouteCost lets presentation layers (and tests) recompute the cost of a
// closed route without re-running a solver. It is side-effect free and
// validates route shape before touching the graph.
package tour

// RouteCost sums the consecutive edge weights along route, including the
// closing edge back to the start.
//
// Contract:
//   - g must be non-nil (ErrNilGraph).
//   - route must have >= 2 entries and be closed: route[0] == route[last]
//     (ErrBadRoute otherwise).
//   - The trivial single-city route [c, c] costs 0.
//   - A missing edge along the route yields ErrIncompleteGraph.
//
// Complexity: O(n) time, O(1) extra space.
func RouteCost(g Graph, route []string) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if len(route) < 2 || route[0] != route[len(route)-1] {
		return 0, ErrBadRoute
	}

	// Trivial closure of a single city: no edges to sum.
	if len(route) == 2 && route[0] == route[1] {
		return 0, nil
	}

	return cycleCost(g, route)
}
