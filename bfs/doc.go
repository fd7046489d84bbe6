// Package bfs provides a breadth-first search over a core.Graph,
// returning hop-count distances, parent links, and visit order.
//
// What
//
//   - Explore positions in non-decreasing hop count from a start position,
//     ignoring link weights.
//   - Returns a BFSResult containing Order, Depth and Parent.
//   - Hooks: OnEnqueue and OnVisit (which may abort with an error).
//   - Allows filtering of individual links via WithFilterLink or WithMaxWeight.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Cheap reachability check: a goal BFS cannot reach is one no weighted
//     search will find a path to.
//   - Fewest-hop routes for comparison with the cheapest route.
//
// Determinism
//
//	core.Graph.Neighbors returns links sorted by Position and BFS enqueues in
//	that order, so the visit sequence is reproducible.
//
// Complexity (V = nodes, E = links)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	ok, err := bfs.Reachable(g, start, goal)
//
//	res, err := bfs.BFS(g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithMaxWeight(10),
//	    bfs.WithOnVisit(func(p core.Position, depth int) error { return nil }),
//	)
//	route, err := res.PathTo(goal)
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrStartNotFound    if no node occupies the start position.
//   - ErrOptionViolation  for an invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors        if core.Graph.Neighbors fails.
//   - ErrNotReached       from PathTo for an undiscovered position.
//   - Wrapped hook errors from OnVisit, and ctx.Err() on cancellation.
package bfs
