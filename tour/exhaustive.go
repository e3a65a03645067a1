// Package tour - exhaustive (brute-force) exact tour search.
package tour

import "math"

// solveExhaustive enumerates every Hamiltonian cycle [start, p..., start]
// for each lazy lexicographic permutation p of the sorted non-start cities
// and keeps the minimum-cost one.
//
// Tie-break: strict `<` on cost, so among equal-cost cycles the first one in
// enumeration order wins — fully reproducible for a given graph content and
// start, independent of edge insertion history.
//
// Cancellation: cfg.Ctx is polled once per candidate; on cancellation the
// call returns ErrCanceled and no route, never a best-so-far result.
//
// Preconditions (enforced by Solve): g non-nil, n >= 2, g complete.
//
// Complexity: O((n-1)!·n) time, O(n) extra space.
func solveExhaustive(g Graph, nodes []string, start string, cfg Options) (Result, error) {
	rest := restOf(nodes, start)
	m := len(rest)

	var (
		perm     = newPermuter(m)      // lazy permutation stream
		cycle    = make([]string, m+2) // reusable candidate buffer
		best     = make([]string, 0, m+2)
		bestCost = math.Inf(1)
		cost     float64
		err      error
		i, k     int
		more     = true
	)
	cycle[0] = start
	cycle[m+1] = start

	for more {
		// Cancellation poll between candidate evaluations.
		if err = cfg.canceled(); err != nil {
			return Result{}, err
		}

		// Materialize the candidate cycle from the current permutation.
		for i, k = range perm.idx {
			cycle[i+1] = rest[k]
		}

		cost, err = cycleCost(g, cycle)
		if err != nil {
			// Solve verified completeness, so this is unreachable for a
			// well-behaved Graph; keep the guard so an inconsistent
			// implementation can never be silently summed over.
			return Result{}, err
		}

		// Strict improvement keeps the earliest minimal candidate.
		if cost < bestCost {
			bestCost = cost
			best = append(best[:0], cycle...)
		}

		more = perm.next()
	}

	return Result{Route: best, Cost: bestCost}, nil
}

// cycleCost sums consecutive edge weights along a closed candidate cycle,
// including the closing edge. A missing edge maps to ErrIncompleteGraph.
//
// Complexity: O(n).
func cycleCost(g Graph, cycle []string) (float64, error) {
	var (
		sum float64
		w   float64
		err error
		i   int
	)
	for i = 0; i < len(cycle)-1; i++ {
		w, err = g.Weight(cycle[i], cycle[i+1])
		if err != nil {
			return 0, ErrIncompleteGraph
		}
		sum += w
	}

	return sum, nil
}
