package converters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/converters"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/dijkstra"
)

func strip(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for x := 0; x < 3; x++ {
		require.NoError(t, g.AddNode(core.Pos(x, 0), ""))
	}
	require.NoError(t, g.AddNode(core.Pos(0, 1), ""))
	require.NoError(t, g.AddLink(core.Pos(0, 0), core.Pos(1, 0), 2))
	require.NoError(t, g.AddLink(core.Pos(1, 0), core.Pos(2, 0), 3))
	require.NoError(t, g.AddLink(core.Pos(0, 0), core.Pos(2, 0), 9))
	return g
}

func TestToGonum_Structure(t *testing.T) {
	g := strip(t)
	wg, m, err := converters.ToGonum(g)
	require.NoError(t, err)

	assert.Equal(t, 4, wg.Nodes().Len())
	assert.Equal(t, 4, m.Len())
	assert.Equal(t, 3, wg.Edges().Len())

	// Ids follow Position order: (0,0) (0,1) (1,0) (2,0).
	id, ok := m.ID(core.Pos(1, 0))
	require.True(t, ok)
	assert.Equal(t, int64(2), id)
	p, ok := m.Position(3)
	require.True(t, ok)
	assert.Equal(t, core.Pos(2, 0), p)
	_, ok = m.Position(4)
	assert.False(t, ok)

	a, _ := m.ID(core.Pos(0, 0))
	c, _ := m.ID(core.Pos(2, 0))
	w, ok := wg.Weight(a, c)
	require.True(t, ok)
	assert.Equal(t, 9.0, w)
	w, ok = wg.Weight(c, a)
	require.True(t, ok)
	assert.Equal(t, 9.0, w, "undirected")
}

func TestToGonum_Nil(t *testing.T) {
	_, _, err := converters.ToGonum(nil)
	require.ErrorIs(t, err, converters.ErrNilGraph)
}

func TestGonumShortestPath(t *testing.T) {
	g := strip(t)

	route, d, ok, err := converters.GonumShortestPath(g, core.Pos(0, 0), core.Pos(2, 0))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(5), d)
	assert.Equal(t, []core.Position{core.Pos(0, 0), core.Pos(1, 0), core.Pos(2, 0)}, route)

	_, _, ok, err = converters.GonumShortestPath(g, core.Pos(0, 0), core.Pos(0, 1))
	require.NoError(t, err)
	assert.False(t, ok, "(0,1) is isolated")

	_, _, _, err = converters.GonumShortestPath(g, core.Pos(0, 0), core.Pos(7, 7))
	require.ErrorIs(t, err, converters.ErrUnknownPosition)
}

// TestGonumAgreesWithDijkstra cross-checks the two reference implementations
// on random grids.
func TestGonumAgreesWithDijkstra(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g, err := builder.BuildGrid(5, 4, builder.WithSeed(seed))
		require.NoError(t, err)
		s, _ := g.Start()
		gl, _ := g.Goal()

		_, want, err := dijkstra.ShortestPath(g, s, gl)
		require.NoError(t, err)
		_, got, ok, err := converters.GonumShortestPath(g, s, gl)
		require.NoError(t, err)

		if want == dijkstra.Infinity {
			assert.Falsef(t, ok, "seed %d: gonum found a route dijkstra did not", seed)
			continue
		}
		require.Truef(t, ok, "seed %d", seed)
		assert.Equalf(t, want, got, "seed %d", seed)
	}
}
