// Package core defines the Position, Node, Link and Graph types together with
// the sentinel errors returned by graph lookups and mutations.
//
// Errors:
//
//	ErrNodeNotFound   - requested position has no node (or no neighbour entry).
//	ErrDuplicateNode  - a node already occupies the position.
//	ErrLoopNotAllowed - link from a position to itself.
//	ErrBadWeight      - link weight is not a positive integer.
//	ErrNoStart        - a search was requested before SetStart.
//	ErrNoGoal         - a search was requested before SetGoal.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates a lookup referenced a position without a node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateNode indicates AddNode was called for an occupied position.
	ErrDuplicateNode = errors.New("core: node already exists")

	// ErrLoopNotAllowed indicates a link whose endpoints are the same position.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a non-positive link weight.
	ErrBadWeight = errors.New("core: link weight must be positive")

	// ErrNoStart indicates the graph has no start position.
	ErrNoStart = errors.New("core: start not set")

	// ErrNoGoal indicates the graph has no goal position.
	ErrNoGoal = errors.New("core: goal not set")
)

// Position identifies a grid cell and is the unique key of a Node.
// Equality is structural; ordering is X first, then Y.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position { return Position{X: x, Y: y} }

// Less reports whether p orders before q (X ascending, then Y ascending).
func (p Position) Less(q Position) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// SquaredDistance returns (p.X-q.X)² + (p.Y-q.Y)².
func (p Position) SquaredDistance(q Position) int64 {
	dx := int64(p.X - q.X)
	dy := int64(p.Y - q.Y)
	return dx*dx + dy*dy
}

// String renders the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Node is a graph vertex.
//
// Label is a display name only. Value is the heuristic estimate of the
// remaining cost to the goal and is rewritten by Graph.SetGoal.
type Node struct {
	// Pos is the node identity.
	Pos Position

	// Label is a human-readable name ("A", "B", … or "1", "2", …).
	Label string

	// Value is the squared Euclidean distance from Pos to the goal.
	Value int64
}

// String renders the node as "<Node A at 0x0 with a value 4>".
func (n *Node) String() string {
	if n == nil {
		return "<nil node>"
	}
	return fmt.Sprintf("<Node %s at %dx%d with a value %d>", n.Label, n.Pos.X, n.Pos.Y, n.Value)
}

// Link is one entry of a node's neighbour map.
type Link struct {
	To     Position
	Weight int64
}

// Edge is an undirected link reported once, with From ordered before To.
type Edge struct {
	From   Position
	To     Position
	Weight int64
}

// Graph owns the node set and the symmetric weighted adjacency map.
//
// mu guards every field. links[p] exists for every node p, possibly empty.
type Graph struct {
	mu sync.RWMutex

	nodes map[Position]*Node
	links map[Position]map[Position]int64

	start, goal       Position
	hasStart, hasGoal bool
}

// NewGraph creates an empty Graph without start or goal.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes: make(map[Position]*Node),
		links: make(map[Position]map[Position]int64),
	}
}
