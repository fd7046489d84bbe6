package converters

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/gridpath/core"
)

// Sentinel errors for conversions.
var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrUnknownPosition indicates a position that was not exported.
	ErrUnknownPosition = errors.New("converters: position not in mapping")
)

// Mapping relates core positions to gonum node ids.
type Mapping struct {
	ids       map[core.Position]int64
	positions []core.Position
}

// ID returns the gonum id of p.
func (m *Mapping) ID(p core.Position) (int64, bool) {
	id, ok := m.ids[p]
	return id, ok
}

// Position returns the core position of a gonum id.
func (m *Mapping) Position(id int64) (core.Position, bool) {
	if id < 0 || id >= int64(len(m.positions)) {
		return core.Position{}, false
	}
	return m.positions[id], true
}

// Len returns the number of mapped positions.
func (m *Mapping) Len() int { return len(m.positions) }

// ToGonum exports g as a weighted undirected gonum graph. Node ids follow the
// sorted Position order; absent links weigh +Inf.
// Complexity: O(V + E).
func ToGonum(g *core.Graph) (*simple.WeightedUndirectedGraph, *Mapping, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	positions := g.Positions()
	m := &Mapping{
		ids:       make(map[core.Position]int64, len(positions)),
		positions: positions,
	}
	for i, p := range positions {
		m.ids[p] = int64(i)
		out.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		from, to := m.ids[e.From], m.ids[e.To]
		out.SetWeightedEdge(out.NewWeightedEdge(simple.Node(from), simple.Node(to), float64(e.Weight)))
	}

	return out, m, nil
}

// GonumShortestPath exports g and runs gonum's Dijkstra from -> to.
// It returns the route, its cost and whether to is reachable.
func GonumShortestPath(g *core.Graph, from, to core.Position) ([]core.Position, int64, bool, error) {
	wg, m, err := ToGonum(g)
	if err != nil {
		return nil, 0, false, err
	}
	src, ok := m.ID(from)
	if !ok {
		return nil, 0, false, fmt.Errorf("%w: %s", ErrUnknownPosition, from)
	}
	dst, ok := m.ID(to)
	if !ok {
		return nil, 0, false, fmt.Errorf("%w: %s", ErrUnknownPosition, to)
	}

	shortest := path.DijkstraFrom(simple.Node(src), wg)
	nodes, weight := shortest.To(dst)
	if len(nodes) == 0 || math.IsInf(weight, 1) {
		return nil, 0, false, nil
	}

	route := make([]core.Position, len(nodes))
	for i, n := range nodes {
		route[i], _ = m.Position(n.ID())
	}
	return route, int64(weight), true, nil
}
