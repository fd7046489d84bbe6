// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/gridpath/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when no node occupies the start position.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a position the walk never saw.
	ErrNotReached = errors.New("bfs: position not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a position is enqueued, before visiting.
	OnEnqueue func(pos core.Position, depth int)

	// OnVisit is called when visiting a position. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(pos core.Position, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// FilterLink can skip links by returning false.
	FilterLink func(from core.Position, l core.Link) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with background context, no depth
// limit, no filtering and no-op hooks.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:        context.Background(),
		OnEnqueue:  func(core.Position, int) {},
		OnVisit:    func(core.Position, int) error { return nil },
		FilterLink: func(core.Position, core.Link) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(pos core.Position, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(pos core.Position, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterLink skips links for which fn returns false.
func WithFilterLink(fn func(from core.Position, l core.Link) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterLink = fn
		}
	}
}

// WithMaxWeight only follows links of weight at most w.
func WithMaxWeight(w int64) Option {
	return WithFilterLink(func(_ core.Position, l core.Link) bool { return l.Weight <= w })
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: positions visited, in visit sequence.
//   - Depth: hop count from the start.
//   - Parent: predecessor in the BFS tree.
type BFSResult struct {
	Order  []core.Position
	Depth  map[core.Position]int
	Parent map[core.Position]core.Position
}

// Reached reports whether pos was discovered.
func (r *BFSResult) Reached(pos core.Position) bool {
	_, ok := r.Depth[pos]
	return ok
}

// PathTo reconstructs the fewest-hop route from the start to dest.
func (r *BFSResult) PathTo(dest core.Position) ([]core.Position, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %s", ErrNotReached, dest)
	}
	route := []core.Position{}
	for cur := dest; ; {
		route = append(route, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	slices.Reverse(route)

	return route, nil
}
