// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Positions() returns positions sorted by (X, Y) ascending.
//
// Concurrency:
//   - All accessors hold mu (read or write as needed).
package core

import (
	"fmt"
	"sort"
)

// AddNode inserts a node at pos with the given label.
//
// Implementation:
//   - Stage 1: Under write lock, reject an occupied position (ErrDuplicateNode).
//   - Stage 2: Allocate the Node; if a goal is already set, compute its Value.
//   - Stage 3: Bootstrap an empty neighbour map so Links(pos) never fails for
//     a known node.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(pos Position, label string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[pos]; ok {
		return fmt.Errorf("AddNode %s: %w", pos, ErrDuplicateNode)
	}

	n := &Node{Pos: pos, Label: label}
	if g.hasGoal {
		n.Value = pos.SquaredDistance(g.goal)
	}
	g.nodes[pos] = n
	g.links[pos] = make(map[Position]int64)

	return nil
}

// HasNode reports whether a node exists at pos.
// Complexity: O(1).
func (g *Graph) HasNode(pos Position) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[pos]
	return ok
}

// Node returns the live node at pos, or ErrNodeNotFound.
// The returned pointer is shared with the graph; treat it as read-only.
// Complexity: O(1).
func (g *Graph) Node(pos Position) (*Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[pos]
	if !ok {
		return nil, fmt.Errorf("Node %s: %w", pos, ErrNodeNotFound)
	}
	return n, nil
}

// SetLabel replaces the display label of the node at pos.
// Complexity: O(1).
func (g *Graph) SetLabel(pos Position, label string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[pos]
	if !ok {
		return fmt.Errorf("SetLabel %s: %w", pos, ErrNodeNotFound)
	}
	n.Label = label
	return nil
}

// Positions returns every node position sorted by (X, Y).
// Complexity: O(V·log V).
func (g *Graph) Positions() []Position {
	g.mu.RLock()
	out := make([]Position, 0, len(g.nodes))
	for p := range g.nodes {
		out = append(out, p)
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// Bounds returns the grid extent covering every node: one past the largest
// X and Y seen. An empty graph reports (0, 0).
// Complexity: O(V).
func (g *Graph) Bounds() (width, height int) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for p := range g.nodes {
		if p.X+1 > width {
			width = p.X + 1
		}
		if p.Y+1 > height {
			height = p.Y + 1
		}
	}
	return width, height
}
