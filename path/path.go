// Package path defines Path, the value the search engine grows, compares and
// returns: an ordered sequence of borrowed graph nodes with an accumulated
// cost and an enabled flag.
//
// Derived values:
//
//	Weight    = Length + LastNode().Value   (f = g + h)
//	LastNode  = final element
//	StartNode = first element
//
// Infinite length is represented by Infinity (math.MaxInt64); the search uses
// an empty path of infinite length as the "no route known yet" sentinel.
// Additions saturate at Infinity so the sentinel never wraps around.
package path

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/core"
)

// Infinity is the length of a path that does not (yet) exist.
const Infinity int64 = math.MaxInt64

// Sentinel errors for path construction.
var (
	// ErrEmptyPath indicates New was called without nodes.
	ErrEmptyPath = errors.New("path: node sequence is empty")

	// ErrNegativeLength indicates a negative initial or appended length.
	ErrNegativeLength = errors.New("path: length must be non-negative")
)

// Path is an ordered node sequence with accumulated cost.
//
// Nodes are borrowed from the graph and never copied. Length is only changed
// by AppendNode; Enabled is toggled freely by the search.
type Path struct {
	nodes []*core.Node

	// Length is the sum of traversed link weights.
	Length int64

	// Enabled is true while the path is a candidate for expansion.
	Enabled bool
}

// New builds an enabled path over nodes with the given starting length.
// The slice is copied; the nodes themselves are shared.
// Complexity: O(len(nodes)).
func New(nodes []*core.Node, length int64) (*Path, error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyPath
	}
	if length < 0 {
		return nil, ErrNegativeLength
	}
	seq := make([]*core.Node, len(nodes))
	copy(seq, nodes)

	return &Path{nodes: seq, Length: length, Enabled: true}, nil
}

// Single builds an enabled one-node path; the usual way to form the
// "[M] with weight w" right-hand side of a concatenation.
func Single(n *core.Node, length int64) *Path {
	return &Path{nodes: []*core.Node{n}, Length: length, Enabled: true}
}

// Empty returns the sentinel: no nodes, infinite length, disabled.
func Empty() *Path {
	return &Path{Length: Infinity}
}

// AppendNode appends n and adds added to Length in place.
// Negative increments are rejected with ErrNegativeLength.
func (p *Path) AppendNode(n *core.Node, added int64) error {
	if added < 0 {
		return ErrNegativeLength
	}
	p.nodes = append(p.nodes, n)
	p.Length = addLength(p.Length, added)
	return nil
}

// Concat returns a new path: p's nodes followed by rhs's nodes, with
// Length = p.Length + rhs.Length. The result is always enabled, whatever the
// flags of the operands. Neither operand is modified.
// Complexity: O(len(p) + len(rhs)).
func (p *Path) Concat(rhs *Path) *Path {
	seq := make([]*core.Node, 0, len(p.nodes)+len(rhs.nodes))
	seq = append(seq, p.nodes...)
	seq = append(seq, rhs.nodes...)

	return &Path{
		nodes:   seq,
		Length:  addLength(p.Length, rhs.Length),
		Enabled: true,
	}
}

// Weight is Length plus the heuristic value of the last node. For an empty
// path it is just Length.
func (p *Path) Weight() int64 {
	last := p.LastNode()
	if last == nil {
		return p.Length
	}
	return addLength(p.Length, last.Value)
}

// Contains reports whether a node at n's position appears anywhere in p.
// Complexity: O(len(p)).
func (p *Path) Contains(n *core.Node) bool {
	if n == nil {
		return false
	}
	for _, m := range p.nodes {
		if m.Pos == n.Pos {
			return true
		}
	}
	return false
}

// LastNode returns the final node, or nil for an empty path.
func (p *Path) LastNode() *core.Node {
	if len(p.nodes) == 0 {
		return nil
	}
	return p.nodes[len(p.nodes)-1]
}

// StartNode returns the first node, or nil for an empty path.
func (p *Path) StartNode() *core.Node {
	if len(p.nodes) == 0 {
		return nil
	}
	return p.nodes[0]
}

// Len returns the number of nodes travelled.
func (p *Path) Len() int { return len(p.nodes) }

// Nodes returns a copy of the node sequence.
func (p *Path) Nodes() []*core.Node {
	out := make([]*core.Node, len(p.nodes))
	copy(out, p.nodes)
	return out
}

// Positions returns the positions of the node sequence in order.
func (p *Path) Positions() []core.Position {
	out := make([]core.Position, len(p.nodes))
	for i, n := range p.nodes {
		out[i] = n.Pos
	}
	return out
}

// IsFinite reports whether Length is a real cost rather than Infinity.
func (p *Path) IsFinite() bool { return p.Length != Infinity }

// String renders "<Path from A over B, C, to D (18)>", the number being the
// weight, with " (disabled)" appended for disabled paths.
func (p *Path) String() string {
	if len(p.nodes) == 0 {
		return "<Empty Path>"
	}
	var sb strings.Builder
	sb.WriteString("<Path from ")
	sb.WriteString(p.nodes[0].Label)
	sb.WriteString(" over ")
	if len(p.nodes) > 2 {
		for _, n := range p.nodes[1 : len(p.nodes)-1] {
			sb.WriteString(n.Label)
			sb.WriteString(", ")
		}
	}
	sb.WriteString("to ")
	sb.WriteString(p.nodes[len(p.nodes)-1].Label)
	sb.WriteString(" (")
	sb.WriteString(formatLength(p.Weight()))
	sb.WriteString(")>")
	if !p.Enabled {
		sb.WriteString(" (disabled)")
	}
	return sb.String()
}

// addLength adds b to a, saturating at Infinity.
func addLength(a, b int64) int64 {
	if a == Infinity || b == Infinity || a > Infinity-b {
		return Infinity
	}
	return a + b
}

// FormatLength renders a length, printing Infinity as "inf".
func FormatLength(l int64) string { return formatLength(l) }

func formatLength(l int64) string {
	if l == Infinity {
		return "inf"
	}
	return strconv.FormatInt(l, 10)
}
