// Package core provides the grid graph model consumed by the path search:
// integer grid positions, nodes carrying a heuristic value, and a symmetric
// weighted adjacency map keyed by position.
//
// The Graph G = (V,E) is deliberately small and specific:
//
//   - Nodes are identified by Position{X, Y}; there is no string ID layer.
//   - Links are undirected and weighted with positive integers. AddLink
//     always records both directions with the same weight, so the symmetry
//     invariant holds for every graph built through this package.
//   - Every node owns a (possibly empty) neighbour map from the moment it is
//     added, so Links/Neighbors only fail for unknown positions.
//   - Start and goal are positions of existing nodes. Setting the goal
//     recomputes Node.Value for every node as the squared Euclidean distance
//     to the goal.
//
// Why squared Euclidean distance?
//
//	It is the estimate the grid maps have always carried. It is not a lower
//	bound on the remaining cost when link weights are small, so it is not
//	admissible; the search in package astar stays exact regardless because it
//	prunes on accumulated cost only.
//
// Core Methods:
//
//	// Provider side (graph construction)
//	NewGraph() *Graph
//	AddNode(pos Position, label string) error               // O(1)
//	AddLink(a, b Position, weight int64) error              // O(1), symmetric
//	SetLabel(pos Position, label string) error              // O(1)
//
//	// Search side (read-only lookups)
//	Node(pos Position) (*Node, error)                       // O(1)
//	Links(pos Position) (map[Position]int64, error)         // O(d), copy
//	Neighbors(pos Position) ([]Link, error)                 // O(d·log d), sorted
//
//	// Endpoints
//	SetStart(pos Position) error                            // O(1)
//	SetGoal(pos Position) error                             // O(V), recomputes values
//	Start() (Position, bool)
//	Goal() (Position, bool)
//
//	// Enumeration
//	Positions() []Position                                  // O(V·log V), sorted
//	Edges() []Edge                                          // O(E·log E), each link once
//	Len() int, LinkCount() int, Bounds() (w, h int)
//
// Errors:
//
//	ErrNodeNotFound   – lookup of a position with no node
//	ErrDuplicateNode  – AddNode on an occupied position
//	ErrLoopNotAllowed – AddLink(a, a, …)
//	ErrBadWeight      – AddLink with weight ≤ 0
//
// Concurrency:
//
//	All methods take the graph's RW mutex. Node pointers returned by Node are
//	live; callers must not change start/goal while a search is running.
package core
