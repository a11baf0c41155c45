package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/salesman/core"
	"github.com/katalvlaran/salesman/dijkstra"
)

// ExampleShortestPath finds the cheapest route between two cities when the
// direct road is longer than the detour.
func ExampleShortestPath() {
	g := core.From([]string{"Kyiv", "Lviv", "Odesa", "Kharkiv"}, [][]int64{
		{0, 540, 475, 480},
		{540, 0, 790, 0},
		{475, 790, 0, 700},
		{480, 0, 700, 0},
	})

	p, err := dijkstra.ShortestPath(g, 1, 3) // Lviv → Kharkiv
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range p.Vertices {
		label, _ := g.Vertex(v)
		fmt.Print(label, " ")
	}
	fmt.Println(p.Cost)
	// Output:
	// Lviv Kyiv Kharkiv 1020
}

// ExampleDistances lists the distance from vertex 0 to every vertex.
func ExampleDistances() {
	g := core.From([]int{0, 1, 2, 3}, [][]int64{
		{0, 4, 1, 0},
		{4, 0, 2, 5},
		{1, 2, 0, 8},
		{0, 5, 8, 0},
	})
	dist, prev, _ := dijkstra.Distances(g, 0)
	fmt.Println(dist)
	fmt.Println(prev)
	// Output:
	// [0 3 1 8]
	// [-1 2 0 1]
}
