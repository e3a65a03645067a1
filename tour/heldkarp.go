// Package tour - Held–Karp exact solver (bitmask dynamic programming).
package tour

import "math"

// solveHeldKarp solves the tour exactly via Held–Karp DP.
//
// Cities are indexed 0..n-1 with the start city at index 0 and the
// remaining cities following in lexicographic order, so the whole
// computation is deterministic. dp[mask][j] is the minimum cost of a path
// that starts at 0, visits exactly the cities in mask, and ends at j; the
// tour is closed by adding dist[j][0] over all j in the full mask.
//
// Ties: masks, endpoints and predecessors are scanned in ascending index
// order with strict `<` improvement, so an equal-cost tie resolves to a
// fixed winner — deterministic, though not necessarily the same member of
// the tie the exhaustive enumeration would pick.
//
// Cancellation: cfg.Ctx is polled once per subset mask.
//
// Preconditions (enforced by Solve): g non-nil, n >= 2, g complete.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
func solveHeldKarp(g Graph, nodes []string, start string, cfg Options) (Result, error) {
	// Stage 1 - stable indexing: start first, then sorted rest.
	rest := restOf(nodes, start)
	n := len(rest) + 1
	ids := make([]string, n)
	ids[0] = start
	copy(ids[1:], rest)

	// Stage 2 - dense distance table. Completeness was verified upstream,
	// so every off-diagonal lookup must succeed.
	dist := make([][]float64, n)
	var (
		i, j int
		w    float64
		err  error
	)
	for i = 0; i < n; i++ {
		dist[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			w, err = g.Weight(ids[i], ids[j])
			if err != nil {
				return Result{}, ErrIncompleteGraph
			}
			dist[i][j] = w
		}
	}

	// Stage 3 - DP tables over all subsets containing vertex 0.
	full := (1 << n) - 1
	dp := make([][]float64, 1<<n)
	parent := make([][]int, 1<<n)
	var mask int
	for mask = 0; mask <= full; mask++ {
		dp[mask] = make([]float64, n)
		parent[mask] = make([]int, n)
		for j = 0; j < n; j++ {
			dp[mask][j] = math.Inf(1)
			parent[mask][j] = -1
		}
	}
	dp[1][0] = 0 // only the start visited, standing at the start

	var (
		prev int
		k    int
		cand float64
	)
	for mask = 1; mask <= full; mask++ {
		// Cancellation poll between subset layers.
		if err = cfg.canceled(); err != nil {
			return Result{}, err
		}
		if mask&1 == 0 {
			continue // every path starts at vertex 0
		}
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 {
					continue
				}
				cand = dp[prev][k] + dist[k][j]
				if cand < dp[mask][j] {
					dp[mask][j] = cand
					parent[mask][j] = k
				}
			}
		}
	}

	// Stage 4 - close the tour back to the start.
	var (
		bestCost = math.Inf(1)
		last     = -1
		total    float64
	)
	for j = 1; j < n; j++ {
		total = dp[full][j] + dist[j][0]
		if total < bestCost {
			bestCost = total
			last = j
		}
	}
	if last < 0 || math.IsInf(bestCost, 1) {
		// Unreachable with a complete graph; guards a corrupt DP state.
		return Result{}, ErrIncompleteGraph
	}

	// Stage 5 - reconstruct the index tour from the parent table, then map
	// indices back to city IDs.
	idxTour := make([]int, n+1)
	idxTour[n] = 0
	mask = full
	j = last
	for i = n - 1; i >= 1; i-- {
		idxTour[i] = j
		k = parent[mask][j]
		mask ^= 1 << j
		j = k
	}
	idxTour[0] = 0

	route := make([]string, n+1)
	for i = 0; i <= n; i++ {
		route[i] = ids[idxTour[i]]
	}

	return Result{Route: route, Cost: bestCost}, nil
}
