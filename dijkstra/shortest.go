package dijkstra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/gridpath/core"
)

// ShortestPath returns the positions of a minimum-cost route from -> to and
// its cost. When to is unreachable it returns (nil, Infinity, nil); when
// either end has no node it fails with ErrVertexNotFound.
//
// Complexity: one Dijkstra run plus O(len(path)) reconstruction.
func ShortestPath(g *core.Graph, from, to core.Position) ([]core.Position, int64, error) {
	dist, prev, err := Dijkstra(g, Source(from), WithReturnPath())
	if err != nil {
		return nil, Infinity, err
	}
	d, ok := dist[to]
	if !ok {
		return nil, Infinity, fmt.Errorf("%w: %s", ErrVertexNotFound, to)
	}
	if d == Infinity {
		return nil, Infinity, nil
	}

	route := []core.Position{to}
	for cur := to; cur != from; {
		cur = prev[cur]
		route = append(route, cur)
	}
	slices.Reverse(route)

	return route, d, nil
}
