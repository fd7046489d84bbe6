// Package gridpath finds cheapest routes on weighted grid graphs with a
// best-first search that prunes dominated partial paths.
//
// 🚀 What is gridpath?
//
//	An in-memory toolkit for grid-shaped, undirected, positively weighted graphs:
//		• Core primitives: nodes keyed by (x,y), symmetric weighted links, start/goal
//		• Search: best-first expansion guided by squared distance to the goal,
//		  with goal pruning and per-node dominance (astar)
//		• Step-by-step sessions with a full decision trace (astar.Stepper)
//		• Reference solvers: Dijkstra (dijkstra), gonum export (converters),
//		  hop-count reachability (bfs)
//		• Random grid generation (builder) and HCL graph files (graphfile)
//
// Under the hood:
//
//	core/       - Position, Node, Link and the thread-safe Graph
//	path/       - immutable-by-convention paths with length and weight
//	astar/      - the search engine, trace and metrics
//	builder/    - random and empty grid constructors
//	dijkstra/   - single-source shortest paths
//	converters/ - export to gonum graph types
//	bfs/        - breadth-first reachability
//	graphfile/  - HCL reader and writer
//	cmd/gridpath - command-line front end
//
// Quick ASCII example (start A, goal D):
//
//	A─5─B
//	│   │
//	2   5
//	│   │
//	C─4─D
//
// Search returns A → C → D with length 6.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
