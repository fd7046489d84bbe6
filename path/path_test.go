package path_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/path"
)

func nodes() (a, b, c *core.Node) {
	a = &core.Node{Pos: core.Pos(0, 0), Label: "A", Value: 4}
	b = &core.Node{Pos: core.Pos(1, 0), Label: "B", Value: 1}
	c = &core.Node{Pos: core.Pos(2, 0), Label: "C", Value: 0}
	return a, b, c
}

func TestNew_Validation(t *testing.T) {
	a, _, _ := nodes()

	_, err := path.New(nil, 0)
	require.ErrorIs(t, err, path.ErrEmptyPath)

	_, err = path.New([]*core.Node{a}, -1)
	require.ErrorIs(t, err, path.ErrNegativeLength)

	p, err := path.New([]*core.Node{a}, 0)
	require.NoError(t, err)
	assert.True(t, p.Enabled)
	assert.Equal(t, int64(0), p.Length)
	assert.Equal(t, a, p.StartNode())
	assert.Equal(t, a, p.LastNode())
}

func TestNew_CopiesSequence(t *testing.T) {
	a, b, c := nodes()
	seq := []*core.Node{a, b}
	p, err := path.New(seq, 3)
	require.NoError(t, err)

	seq[1] = c
	assert.Equal(t, b, p.LastNode(), "caller slice must not alias the path")
}

func TestEmpty_Sentinel(t *testing.T) {
	p := path.Empty()
	assert.Equal(t, path.Infinity, p.Length)
	assert.False(t, p.IsFinite())
	assert.Zero(t, p.Len())
	assert.Nil(t, p.LastNode())
	assert.Nil(t, p.StartNode())
	assert.Equal(t, path.Infinity, p.Weight())
	assert.Equal(t, "<Empty Path>", p.String())
}

func TestConcat(t *testing.T) {
	a, b, c := nodes()
	left := path.Single(a, 0)
	require.NoError(t, left.AppendNode(b, 5))
	left.Enabled = false

	right := path.Single(c, 14)
	right.Enabled = false

	joined := left.Concat(right)
	assert.Equal(t, []core.Position{a.Pos, b.Pos, c.Pos}, joined.Positions())
	assert.Equal(t, int64(19), joined.Length)
	assert.True(t, joined.Enabled, "concatenation always starts enabled")

	// Operands are untouched.
	assert.Equal(t, 2, left.Len())
	assert.Equal(t, int64(5), left.Length)
	assert.False(t, left.Enabled)
	assert.Equal(t, 1, right.Len())
}

func TestConcat_SaturatesAtInfinity(t *testing.T) {
	a, _, _ := nodes()
	joined := path.Empty().Concat(path.Single(a, 3))
	assert.Equal(t, path.Infinity, joined.Length)
}

func TestAppendNode(t *testing.T) {
	a, b, c := nodes()
	p := path.Single(a, 0)
	require.NoError(t, p.AppendNode(b, 5))
	require.NoError(t, p.AppendNode(c, 14))
	require.ErrorIs(t, p.AppendNode(c, -1), path.ErrNegativeLength)

	assert.Equal(t, 3, p.Len())
	assert.Equal(t, int64(19), p.Length)
	assert.Equal(t, c, p.LastNode())
}

func TestWeight(t *testing.T) {
	a, b, _ := nodes()
	p := path.Single(a, 0)
	assert.Equal(t, int64(4), p.Weight(), "g=0 plus h(A)=4")

	require.NoError(t, p.AppendNode(b, 5))
	assert.Equal(t, int64(6), p.Weight(), "g=5 plus h(B)=1")

	// Values are read live from the node.
	b.Value = 10
	assert.Equal(t, int64(15), p.Weight())
}

func TestContains_AnyPosition(t *testing.T) {
	a, b, c := nodes()
	p := path.Single(a, 0)
	require.NoError(t, p.AppendNode(b, 1))
	require.NoError(t, p.AppendNode(c, 1))

	assert.True(t, p.Contains(a), "start node counts")
	assert.True(t, p.Contains(b), "interior node counts")
	assert.True(t, p.Contains(c), "end node counts")

	twin := &core.Node{Pos: b.Pos, Label: "other"}
	assert.True(t, p.Contains(twin), "membership is by position")
	assert.False(t, p.Contains(&core.Node{Pos: core.Pos(9, 9)}))
	assert.False(t, p.Contains(nil))
}

func TestString(t *testing.T) {
	a, b, c := nodes()
	p := path.Single(a, 0)
	assert.Equal(t, "<Path from A over to A (4)>", p.String())

	require.NoError(t, p.AppendNode(b, 5))
	require.NoError(t, p.AppendNode(c, 14))
	assert.Equal(t, "<Path from A over B, to C (19)>", p.String())

	p.Enabled = false
	assert.Equal(t, "<Path from A over B, to C (19)> (disabled)", p.String())
}

func TestFormatLength(t *testing.T) {
	assert.Equal(t, "inf", path.FormatLength(path.Infinity))
	assert.Equal(t, "42", path.FormatLength(42))
}
