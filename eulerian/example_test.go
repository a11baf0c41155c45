package eulerian_test

import (
	"fmt"

	"github.com/katalvlaran/salesman/eulerian"
)

// ExampleCircuit walks a square with one diagonal doubled, then shortcuts the
// walk into a Hamiltonian route.
func ExampleCircuit() {
	m := eulerian.NewMultigraph(4)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}, {2, 0}} {
		_ = m.AddEdge(e[0], e[1])
	}

	walk, err := eulerian.Circuit(m, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	route, _ := eulerian.Shortcut(walk, m.NumVertices(), 0)
	fmt.Println(walk)
	fmt.Println(route)
	// Output:
	// [0 1 2 3 0 2 0]
	// [0 1 2 3]
}
