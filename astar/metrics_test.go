package astar

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/path"
)

func line(t *testing.T, linked bool) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddNode(core.Pos(0, 0), "A"))
	require.NoError(t, g.AddNode(core.Pos(1, 0), "B"))
	require.NoError(t, g.AddNode(core.Pos(2, 0), "C"))
	require.NoError(t, g.AddLink(core.Pos(0, 0), core.Pos(1, 0), 2))
	if linked {
		require.NoError(t, g.AddLink(core.Pos(1, 0), core.Pos(2, 0), 3))
	}
	require.NoError(t, g.SetStart(core.Pos(0, 0)))
	require.NoError(t, g.SetGoal(core.Pos(2, 0)))
	return g
}

func outcomeCount(outcome string) float64 {
	return testutil.ToFloat64(searchesTotal.WithLabelValues(outcome))
}

func TestMetrics_Outcomes(t *testing.T) {
	found := outcomeCount(outcomeFound)
	unreachable := outcomeCount(outcomeUnreachable)
	aborted := outcomeCount(outcomeAborted)
	failed := outcomeCount(outcomeError)

	_, err := Search(line(t, true))
	require.NoError(t, err)
	assert.Equal(t, found+1, outcomeCount(outcomeFound))

	_, err = Search(line(t, false))
	require.NoError(t, err)
	assert.Equal(t, unreachable+1, outcomeCount(outcomeUnreachable))

	_, err = Search(line(t, true), WithMaxIterations(1))
	require.ErrorIs(t, err, ErrIterationLimit)
	assert.Equal(t, aborted+1, outcomeCount(outcomeAborted))

	_, err = Search(nil)
	require.ErrorIs(t, err, ErrNilGraph)
	assert.Equal(t, failed+1, outcomeCount(outcomeError))
}

func TestMetrics_ObservedOnce(t *testing.T) {
	aborted := outcomeCount(outcomeAborted)

	s, err := NewStepper(line(t, true), WithMaxIterations(1))
	require.NoError(t, err)
	_, err = s.Step()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = s.Step()
		require.ErrorIs(t, err, ErrIterationLimit)
	}
	assert.Equal(t, aborted+1, outcomeCount(outcomeAborted))
}

func TestPool_LightestPrefersLowestID(t *testing.T) {
	g := line(t, true)
	a, _ := g.Node(core.Pos(0, 0))
	b, _ := g.Node(core.Pos(1, 0))

	pl := newPool()
	_, ok := pl.lightest()
	assert.False(t, ok)

	s, err := NewStepper(g)
	require.NoError(t, err)
	start := s.pool.get(0)

	// Both paths weigh 4+1=5 against the goal at (2,0).
	pl.add(start.Concat(path.Single(b, 4)))
	pl.add(start.Concat(path.Single(b, 4)))
	id, ok := pl.lightest()
	require.True(t, ok)
	assert.Equal(t, 0, id)

	pl.get(0).Enabled = false
	id, _ = pl.lightest()
	assert.Equal(t, 1, id)
	assert.Equal(t, []int{0, 1}, pl.endingAt(b.Pos))
	assert.Empty(t, pl.endingAt(a.Pos))
	assert.Equal(t, 1, pl.active())
}
