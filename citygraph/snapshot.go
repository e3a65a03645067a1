// Package citygraph - immutable point-in-time snapshots of a Graph.
//
// A Snapshot decouples long-running consumers (exhaustive tour search) from
// the live, mutable graph: the copy is taken atomically under the read lock,
// after which concurrent AddEdge/Reset calls cannot disturb a solve in
// flight. Snapshots are never mutated after construction and carry no lock.
package citygraph

import "fmt"

// Snapshot is a read-only copy of a Graph at a single point in time.
//
// The zero value is not useful; obtain one via (*Graph).Snapshot.
type Snapshot struct {
	// ids holds all city IDs sorted lexicographically ascending.
	ids []string

	// adjacency mirrors the source graph's nested mapping at copy time.
	adjacency map[string]map[string]float64
}

// Snapshot returns an immutable copy of the graph's current contents.
// The entire copy happens under one read-lock hold, so the result is a
// consistent view even while writers are active.
//
// Complexity: O(V log V + E).
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj := make(map[string]map[string]float64, len(g.adjacency))
	for id, row := range g.adjacency {
		adj[id] = copyRow(row)
	}

	return &Snapshot{
		ids:       sortedKeys(g.adjacency),
		adjacency: adj,
	}
}

// Nodes returns the snapshot's city IDs, sorted lexicographically ascending.
// The returned slice is a fresh copy; callers may reorder it freely.
//
// Complexity: O(V).
func (s *Snapshot) Nodes() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)

	return out
}

// Order returns the number of cities in the snapshot.
//
// Complexity: O(1).
func (s *Snapshot) Order() int { return len(s.ids) }

// HasNode reports whether the city was present at copy time.
//
// Complexity: O(1).
func (s *Snapshot) HasNode(u string) bool {
	_, ok := s.adjacency[u]

	return ok
}

// Neighbors returns a copy of u's neighbor→distance mapping at copy time.
// For an unknown city it returns an empty (non-nil) map.
//
// Complexity: O(d).
func (s *Snapshot) Neighbors(u string) map[string]float64 {
	return copyRow(s.adjacency[u])
}

// Weight returns the recorded distance of the edge u–v at copy time, or
// ErrNoSuchEdge when the pair has no edge (including u == v).
//
// Complexity: O(1).
func (s *Snapshot) Weight(u, v string) (float64, error) {
	row, ok := s.adjacency[u]
	if !ok {
		return 0, fmt.Errorf("%w: %q–%q", ErrNoSuchEdge, u, v)
	}
	w, ok := row[v]
	if !ok {
		return 0, fmt.Errorf("%w: %q–%q", ErrNoSuchEdge, u, v)
	}

	return w, nil
}

// Complete reports whether every pair of distinct cities in the snapshot is
// connected by an edge, i.e. the graph is complete over its node set. Tour
// solvers require completeness; checking it upfront makes the failure mode
// independent of enumeration order.
//
// Complexity: O(V²).
func (s *Snapshot) Complete() bool {
	var (
		i, j int    // pair indices over the sorted ID list
		u, v string // pair under inspection
	)
	for i = 0; i < len(s.ids); i++ {
		u = s.ids[i]
		for j = i + 1; j < len(s.ids); j++ {
			v = s.ids[j]
			if _, ok := s.adjacency[u][v]; !ok {
				return false
			}
		}
	}

	return true
}
