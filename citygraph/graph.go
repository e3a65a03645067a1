// Package citygraph - mutation and query methods on Graph.
//
// All mutations acquire the write lock; queries acquire the read lock.
// Returned maps and slices are fresh copies, never views into internal state.
package citygraph

import (
	"fmt"
	"sort"
)

// AddEdge inserts (or overwrites) the undirected edge u–v with weight w.
// Both directions are written under a single lock hold, so no reader can
// observe one direction without the other.
//
// Constraints:
//   - u != v (self-loops are rejected with ErrInvalidEdge).
//   - w >= 0 (zero is a legal distance; negative is ErrInvalidEdge).
//
// Re-inserting an existing pair replaces the prior weight in both
// directions (last-write-wins).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, w float64) error {
	if u == v {
		return fmt.Errorf("%w: self-loop %q", ErrInvalidEdge, u)
	}
	if w < 0 {
		return fmt.Errorf("%w: negative weight %v for %q–%q", ErrInvalidEdge, w, u, v)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Ensure both adjacency buckets exist before writing either direction.
	if _, ok := g.adjacency[u]; !ok {
		g.adjacency[u] = make(map[string]float64)
	}
	if _, ok := g.adjacency[v]; !ok {
		g.adjacency[v] = make(map[string]float64)
	}

	// Symmetric write; both entries land inside the same critical section.
	g.adjacency[u][v] = w
	g.adjacency[v][u] = w

	return nil
}

// Reset clears all cities and edges, returning the graph to the empty state.
// Always succeeds.
//
// Complexity: O(1) (old storage is released to the GC).
func (g *Graph) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adjacency = make(map[string]map[string]float64)
}

// Nodes returns all city IDs currently present, sorted lexicographically
// ascending. The slice is a fresh copy.
//
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedKeys(g.adjacency)
}

// Neighbors returns a copy of u's neighbor→distance mapping.
// For an unknown city it returns an empty (non-nil) map.
//
// Complexity: O(d) where d is the degree of u.
func (g *Graph) Neighbors(u string) map[string]float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return copyRow(g.adjacency[u])
}

// Weight returns the recorded distance of the edge u–v.
// It fails with ErrNoSuchEdge when no edge connects the pair, which
// includes the u == v case (self-loops are never stored).
//
// Complexity: O(1).
func (g *Graph) Weight(u, v string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adjacency[u]
	if !ok {
		return 0, fmt.Errorf("%w: %q–%q", ErrNoSuchEdge, u, v)
	}
	w, ok := row[v]
	if !ok {
		return 0, fmt.Errorf("%w: %q–%q", ErrNoSuchEdge, u, v)
	}

	return w, nil
}

// HasNode reports whether the city is present in the graph.
//
// Complexity: O(1).
func (g *Graph) HasNode(u string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[u]

	return ok
}

// HasEdge reports whether an edge connects u and v.
//
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adjacency[u]
	if !ok {
		return false
	}
	_, ok = row[v]

	return ok
}

// NodeCount returns the number of cities.
//
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of undirected edges (each pair counted once).
//
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var total int
	for _, row := range g.adjacency {
		total += len(row)
	}

	// Every undirected edge is stored in both directions.
	return total / 2
}

// sortedKeys extracts map keys in lexicographic order.
func sortedKeys(m map[string]map[string]float64) []string {
	out := make([]string, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// copyRow clones a neighbor row; nil input yields an empty map.
func copyRow(row map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(row))
	for id, w := range row {
		out[id] = w
	}

	return out
}
