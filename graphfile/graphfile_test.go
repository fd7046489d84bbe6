package graphfile_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/graphfile"
)

func TestLoad_TestMap(t *testing.T) {
	g, err := graphfile.Load("testdata/testmap.hcl")
	require.NoError(t, err)

	assert.Equal(t, 9, g.Len())
	assert.Equal(t, 13, g.LinkCount())
	s, _ := g.Start()
	gl, _ := g.Goal()
	assert.Equal(t, core.Pos(0, 0), s)
	assert.Equal(t, core.Pos(2, 0), gl)

	n, err := g.Node(core.Pos(0, 0))
	require.NoError(t, err)
	assert.Equal(t, "A", n.Label)
	assert.Equal(t, int64(4), n.Value)
	n, _ = g.Node(core.Pos(1, 1))
	assert.Equal(t, "E", n.Label)

	w, ok := g.Weight(core.Pos(1, 1), core.Pos(2, 0))
	require.True(t, ok)
	assert.Equal(t, int64(1), w)
	_, ok = g.Weight(core.Pos(1, 2), core.Pos(2, 2))
	assert.False(t, ok)
}

func TestLoad_TestMap2(t *testing.T) {
	g, err := graphfile.Load("testdata/testmap2.hcl")
	require.NoError(t, err)
	assert.Equal(t, 20, g.Len())
	assert.Equal(t, 34, g.LinkCount())

	n, _ := g.Node(core.Pos(4, 3))
	assert.Equal(t, "T", n.Label)
	assert.Equal(t, int64(25), n.Value)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := graphfile.Load("testdata/does-not-exist.hcl")
	require.ErrorIs(t, err, graphfile.ErrSyntax)
}

func TestParse_Defaults(t *testing.T) {
	g, err := graphfile.Parse([]byte("width = 2\nheight = 2\n"), "tiny.hcl")
	require.NoError(t, err)
	s, _ := g.Start()
	gl, _ := g.Goal()
	assert.Equal(t, core.Pos(0, 0), s)
	assert.Equal(t, core.Pos(1, 1), gl)
	assert.Zero(t, g.LinkCount())
}

func TestParse_NodeLabels(t *testing.T) {
	src := `
width  = 2
height = 1
node {
  at    = [1, 0]
  label = "home"
}
`
	g, err := graphfile.Parse([]byte(src), "labels.hcl")
	require.NoError(t, err)
	n, _ := g.Node(core.Pos(1, 0))
	assert.Equal(t, "home", n.Label)
	n, _ = g.Node(core.Pos(0, 0))
	assert.Equal(t, "A", n.Label)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		target error
	}{
		{"Syntax", "width = = 2", graphfile.ErrSyntax},
		{"MissingHeight", "width = 2", graphfile.ErrSyntax},
		{"UnknownAttribute", "width = 2\nheight = 2\ncolour = 1", graphfile.ErrSyntax},
		{"ShortCoordinate", "width = 2\nheight = 2\nstart = [1]", graphfile.ErrBadCoordinate},
		{"StartOutside", "width = 2\nheight = 2\nstart = [5, 5]", builder.ErrBadPosition},
		{"TooSmall", "width = 1\nheight = 1", builder.ErrTooFewVertices},
		{"LinkOutside", "width = 2\nheight = 2\nlink {\n from = [0, 0]\n to = [3, 0]\n weight = 1\n}", core.ErrNodeNotFound},
		{"ZeroWeight", "width = 2\nheight = 2\nlink {\n from = [0, 0]\n to = [1, 0]\n weight = 0\n}", core.ErrBadWeight},
		{"SelfLoop", "width = 2\nheight = 2\nlink {\n from = [0, 0]\n to = [0, 0]\n weight = 3\n}", core.ErrLoopNotAllowed},
		{"NodeOutside", "width = 2\nheight = 2\nnode {\n at = [4, 4]\n label = \"x\"\n}", core.ErrNodeNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := graphfile.Parse([]byte(tc.src), tc.name+".hcl")
			require.ErrorIs(t, err, tc.target)
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	orig, err := builder.BuildGrid(5, 4, builder.WithSeed(17))
	require.NoError(t, err)
	require.NoError(t, orig.SetLabel(core.Pos(2, 2), "middle"))

	var buf bytes.Buffer
	require.NoError(t, graphfile.Write(&buf, orig))
	assert.Contains(t, buf.String(), `label = "middle"`)

	back, err := graphfile.Parse(buf.Bytes(), "roundtrip.hcl")
	require.NoError(t, err)

	assert.Equal(t, orig.Edges(), back.Edges())
	os, _ := orig.Start()
	bs, _ := back.Start()
	assert.Equal(t, os, bs)
	og, _ := orig.Goal()
	bg, _ := back.Goal()
	assert.Equal(t, og, bg)
	for _, p := range orig.Positions() {
		a, _ := orig.Node(p)
		b, err := back.Node(p)
		require.NoError(t, err)
		assert.Equal(t, a.Label, b.Label)
		assert.Equal(t, a.Value, b.Value)
	}
}

func TestWrite_Nil(t *testing.T) {
	_, err := graphfile.Marshal(nil)
	require.ErrorIs(t, err, graphfile.ErrNilGraph)
}
