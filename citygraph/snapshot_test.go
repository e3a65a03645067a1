package citygraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roundtrip/citygraph"
)

// triangle builds the canonical 3-city complete graph used across tests.
func triangle(t *testing.T) *citygraph.Graph {
	t.Helper()

	g := citygraph.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 10))
	require.NoError(t, g.AddEdge("B", "C", 15))
	require.NoError(t, g.AddEdge("A", "C", 20))

	return g
}

func TestSnapshot_ReflectsGraphAtCopyTime(t *testing.T) {
	g := triangle(t)
	s := g.Snapshot()

	require.Equal(t, 3, s.Order())
	require.Equal(t, []string{"A", "B", "C"}, s.Nodes())
	require.True(t, s.HasNode("B"))
	require.False(t, s.HasNode("D"))

	w, err := s.Weight("B", "C")
	require.NoError(t, err)
	require.Equal(t, 15.0, w)

	_, err = s.Weight("A", "A")
	require.ErrorIs(t, err, citygraph.ErrNoSuchEdge)
}

func TestSnapshot_IsolatedFromLaterMutations(t *testing.T) {
	g := triangle(t)
	s := g.Snapshot()

	// Mutate and even wipe the source after the copy was taken.
	require.NoError(t, g.AddEdge("A", "B", 999))
	require.NoError(t, g.AddEdge("C", "D", 5))
	g.Reset()

	require.Equal(t, []string{"A", "B", "C"}, s.Nodes())
	w, err := s.Weight("A", "B")
	require.NoError(t, err)
	require.Equal(t, 10.0, w)
}

func TestSnapshot_NeighborsCopy(t *testing.T) {
	g := triangle(t)
	s := g.Snapshot()

	nbrs := s.Neighbors("A")
	require.Equal(t, map[string]float64{"B": 10, "C": 20}, nbrs)

	nbrs["B"] = -1 // mutate the copy
	w, err := s.Weight("A", "B")
	require.NoError(t, err)
	require.Equal(t, 10.0, w)

	require.Empty(t, s.Neighbors("ghost"))
	require.NotNil(t, s.Neighbors("ghost"))
}

func TestSnapshot_Complete(t *testing.T) {
	g := triangle(t)
	require.True(t, g.Snapshot().Complete())

	// Drop completeness: add a fourth city connected to only one other.
	require.NoError(t, g.AddEdge("C", "D", 5))
	require.False(t, g.Snapshot().Complete())

	// Empty and single-edge graphs are trivially complete over their nodes.
	empty := citygraph.NewGraph()
	require.True(t, empty.Snapshot().Complete())

	pair := citygraph.NewGraph()
	require.NoError(t, pair.AddEdge("A", "B", 1))
	require.True(t, pair.Snapshot().Complete())
}
