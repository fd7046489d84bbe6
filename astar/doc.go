// Package astar finds the minimum-cost simple path between the start and goal
// of a core.Graph using best-first expansion with path-dominance pruning.
//
// The engine keeps every path it ever discovers in an append-only pool keyed
// by insertion id. Paths are never removed, only disabled. Each iteration
// expands the enabled path of least weight (Length plus the heuristic Value of
// its last node, ties broken by the lowest id):
//
//  1. for every neighbour M of the path's last node, in Position order:
//     skip M when it is already on the path;
//     form candidate = path ⧺ [M];
//     skip when candidate.Length >= best.Length;
//     if M is the goal, make candidate the best path, disable every enabled
//     entry longer than it and disable the candidate;
//     compare against every pooled path ending at M, oldest first, keeping
//     only the shortest (earlier path wins a tie);
//     append the candidate to the pool.
//  2. disable the expanded path.
//  3. pick the next path, or converge when no enabled path remains.
//
// Pruning and dominance compare raw Length, never Weight, so the heuristic
// only steers the expansion order. The result is the true minimum even though
// squared Euclidean distance is not an admissible estimate.
//
// Usage:
//
//	res, err := astar.Search(g, astar.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	if !res.Found {
//	    // goal unreachable; res.Best is the infinite-length sentinel
//	}
//
// A Stepper drives the same session one expansion at a time, which is what an
// interactive front end needs. Every decision is recorded in Result.Trace.
//
// Complexity: bounded by the number of simple paths the dominance rule lets
// through; in practice close to O(E·P) where P is the pool size.
//
// Concurrency: a search is single-threaded. A Stepper must be owned by one
// goroutine, and the graph must not be mutated while a search runs.
package astar
