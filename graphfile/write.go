package graphfile

import (
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/gridpath/core"
)

// Write renders g in the graph file format: dimensions, endpoints, one node
// block per cell and one link block per undirected link, in Position order.
func Write(w io.Writer, g *core.Graph) error {
	b, err := Marshal(g)
	if err != nil {
		return err
	}
	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("graphfile: write: %w", err)
	}
	return nil
}

// Marshal is Write into a byte slice.
func Marshal(g *core.Graph) ([]byte, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	f := hclwrite.NewEmptyFile()
	body := f.Body()

	width, height := g.Bounds()
	body.SetAttributeValue("width", cty.NumberIntVal(int64(width)))
	body.SetAttributeValue("height", cty.NumberIntVal(int64(height)))
	if start, ok := g.Start(); ok {
		body.SetAttributeValue("start", positionVal(start))
	}
	if goal, ok := g.Goal(); ok {
		body.SetAttributeValue("goal", positionVal(goal))
	}

	for _, p := range g.Positions() {
		n, err := g.Node(p)
		if err != nil {
			return nil, fmt.Errorf("graphfile: %w", err)
		}
		body.AppendNewline()
		nb := body.AppendNewBlock("node", nil).Body()
		nb.SetAttributeValue("at", positionVal(p))
		nb.SetAttributeValue("label", cty.StringVal(n.Label))
	}

	for _, e := range g.Edges() {
		body.AppendNewline()
		lb := body.AppendNewBlock("link", nil).Body()
		lb.SetAttributeValue("from", positionVal(e.From))
		lb.SetAttributeValue("to", positionVal(e.To))
		lb.SetAttributeValue("weight", cty.NumberIntVal(e.Weight))
	}

	return f.Bytes(), nil
}

func positionVal(p core.Position) cty.Value {
	return cty.TupleVal([]cty.Value{
		cty.NumberIntVal(int64(p.X)),
		cty.NumberIntVal(int64(p.Y)),
	})
}
