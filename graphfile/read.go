package graphfile

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/core"
)

// Sentinel errors for graph files.
var (
	// ErrSyntax wraps HCL parse and decode diagnostics.
	ErrSyntax = errors.New("graphfile: invalid HCL")

	// ErrBadCoordinate indicates a coordinate that is not a pair [x, y].
	ErrBadCoordinate = errors.New("graphfile: coordinate must be [x, y]")

	// ErrNilGraph indicates Write or Marshal was given a nil graph.
	ErrNilGraph = errors.New("graphfile: graph is nil")
)

// hclGraphFile is the top-level structure of a graph file for decoding.
type hclGraphFile struct {
	Width  int        `hcl:"width"`
	Height int        `hcl:"height"`
	Start  []int      `hcl:"start,optional"`
	Goal   []int      `hcl:"goal,optional"`
	Nodes  []*hclNode `hcl:"node,block"`
	Links  []*hclLink `hcl:"link,block"`
}

type hclNode struct {
	At    []int  `hcl:"at"`
	Label string `hcl:"label"`
}

type hclLink struct {
	From   []int `hcl:"from"`
	To     []int `hcl:"to"`
	Weight int64 `hcl:"weight"`
}

// Load parses the graph file at path.
func Load(path string) (*core.Graph, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrSyntax, path, diags)
	}
	return decode(f, path)
}

// Parse parses an in-memory graph file; filename is used in diagnostics only.
func Parse(src []byte, filename string) (*core.Graph, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrSyntax, filename, diags)
	}
	return decode(f, filename)
}

func decode(f *hcl.File, filename string) (*core.Graph, error) {
	var parsed hclGraphFile
	if diags := gohcl.DecodeBody(f.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrSyntax, filename, diags)
	}

	var opts []builder.BuilderOption
	if parsed.Start != nil {
		p, err := toPosition("start", parsed.Start)
		if err != nil {
			return nil, err
		}
		opts = append(opts, builder.WithStart(p))
	}
	if parsed.Goal != nil {
		p, err := toPosition("goal", parsed.Goal)
		if err != nil {
			return nil, err
		}
		opts = append(opts, builder.WithGoal(p))
	}

	g, err := builder.EmptyGrid(parsed.Width, parsed.Height, opts...)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %s: %w", filename, err)
	}

	for i, n := range parsed.Nodes {
		p, err := toPosition(fmt.Sprintf("node[%d].at", i), n.At)
		if err != nil {
			return nil, err
		}
		if err = g.SetLabel(p, n.Label); err != nil {
			return nil, fmt.Errorf("graphfile: %s: node[%d]: %w", filename, i, err)
		}
	}
	for i, l := range parsed.Links {
		from, err := toPosition(fmt.Sprintf("link[%d].from", i), l.From)
		if err != nil {
			return nil, err
		}
		to, err := toPosition(fmt.Sprintf("link[%d].to", i), l.To)
		if err != nil {
			return nil, err
		}
		if err = g.AddLink(from, to, l.Weight); err != nil {
			return nil, fmt.Errorf("graphfile: %s: link[%d]: %w", filename, i, err)
		}
	}

	return g, nil
}

func toPosition(field string, xy []int) (core.Position, error) {
	if len(xy) != 2 {
		return core.Position{}, fmt.Errorf("%w: %s has %d elements", ErrBadCoordinate, field, len(xy))
	}
	return core.Pos(xy[0], xy[1]), nil
}
