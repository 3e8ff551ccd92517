package core_test

import (
	"fmt"

	"github.com/katalvlaran/spanforest/core"
)

// ExamplePoint_Dist demonstrates the exact integer distance: the
// 3-4-5 triangle is exact, and sqrt(10) rounds down to 3.
func ExamplePoint_Dist() {
	origin := core.Point{}
	fmt.Println(core.Point{X: 3, Y: 4}.Dist(origin))
	fmt.Println(core.Point{X: 1, Y: 3}.Dist(origin))
	// Output:
	// 5
	// 3
}

// ExampleParsePoints demonstrates reading the one-point-per-line
// "x,y,z" format in input order.
func ExampleParsePoints() {
	points, err := core.ParsePoints("162,817,812\n57,618,57\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range points {
		fmt.Println(p)
	}
	// Output:
	// 162,817,812
	// 57,618,57
}
