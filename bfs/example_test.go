package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/core"
)

// ExampleBFS finds the fewest-hop route, which need not be the cheapest.
func ExampleBFS() {
	g, _ := builder.EmptyGrid(2, 2)
	_ = g.AddLink(core.Pos(0, 0), core.Pos(1, 1), 50) // diagonal shortcut
	_ = g.AddLink(core.Pos(0, 0), core.Pos(1, 0), 1)
	_ = g.AddLink(core.Pos(1, 0), core.Pos(1, 1), 1)

	res, err := bfs.BFS(g, core.Pos(0, 0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	route, _ := res.PathTo(core.Pos(1, 1))
	fmt.Println(route, res.Depth[core.Pos(1, 1)])
	// Output: [(0,0) (1,1)] 1
}

// ExampleReachable checks reachability before searching.
func ExampleReachable() {
	g, _ := builder.EmptyGrid(3, 1)
	_ = g.AddLink(core.Pos(0, 0), core.Pos(1, 0), 4)

	ok, _ := bfs.Reachable(g, core.Pos(0, 0), core.Pos(2, 0))
	fmt.Println(ok)
	// Output: false
}
