package astar_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/routeplanner/astar"
	"github.com/katalvlaran/routeplanner/roadmap"
)

// ExampleFindPath plans a route on the embedded demo map.
func ExampleFindPath() {
	path, err := astar.FindPath(roadmap.Map40(), 5, 34)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output: [5 16 37 12 34]
}

// ExamplePlan shows the diagnostics returned alongside the route.
func ExamplePlan() {
	m, _ := roadmap.NewBuilder().
		AddNode(0, 0, 0).
		AddNode(1, 3, 4).
		AddNode(2, 6, 0).
		Connect(0, 1).
		Connect(1, 2).
		Build()

	res, err := astar.Plan(m, 0, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("path=%v cost=%.1f\n", res.Path, res.Cost)
	// Output: path=[0 1 2] cost=10.0
}

// ExampleFindPath_unreachable shows the distinguishable no-path outcome.
func ExampleFindPath_unreachable() {
	m, _ := roadmap.NewBuilder().
		AddNode(0, 0, 0).
		AddNode(1, 1, 1).
		Build()

	_, err := astar.FindPath(m, 0, 1)
	if errors.Is(err, astar.ErrNoPathFound) {
		fmt.Println("no path found")
	}
	// Output: no path found
}
