package citygraph_test

import (
	"fmt"

	"github.com/katalvlaran/roundtrip/citygraph"
)

// ExampleGraph builds a small road network incrementally and inspects it.
// Output is deterministic because Nodes() enumerates in sorted order.
func ExampleGraph() {
	g := citygraph.NewGraph()

	_ = g.AddEdge("Kyiv", "Lviv", 540)
	_ = g.AddEdge("Kyiv", "Odesa", 475)
	_ = g.AddEdge("Lviv", "Odesa", 790)

	fmt.Println(g.Nodes())

	w, _ := g.Weight("Odesa", "Kyiv")
	fmt.Println(w)

	// Re-inserting overwrites symmetrically.
	_ = g.AddEdge("Odesa", "Kyiv", 480)
	w, _ = g.Weight("Kyiv", "Odesa")
	fmt.Println(w)

	// Output:
	// [Kyiv Lviv Odesa]
	// 475
	// 480
}
