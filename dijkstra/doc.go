// Package dijkstra computes exact single-source shortest distances over a
// core.Graph. Link weights are positive, so the classic lazy-decrease-key
// heap algorithm applies directly.
//
// It serves as the reference the best-first search is checked against, and
// as the CLI's -verify cross-check.
//
// Key features:
//
//   - Source: start position (defaults to the graph's start).
//   - ReturnPath: also return the predecessor map.
//   - MaxDistance: stop exploring beyond a distance.
//   - InfEdgeThreshold: treat heavy links as walls.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrEmptySource, ErrVertexNotFound from Dijkstra.
//   - ErrBadMaxDistance, ErrBadInfThreshold as panics from option constructors.
//
// Unreachable positions keep distance Infinity (math.MaxInt64), the same
// value path.Infinity uses.
package dijkstra
