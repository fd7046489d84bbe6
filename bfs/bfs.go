// Package bfs provides breadth-first search over a core.Graph,
// returning hop-count distances, parent links, and visit order.
//
// BFS explores positions in increasing distance from a start position,
// with optional hooks, depth limiting, and link filtering.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// queueItem pairs a position with its BFS depth.
type queueItem struct {
	pos   core.Position
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[core.Position]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start, ignoring weights.
// Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, ErrNeighbors for graph failures,
// the context error on cancellation, or any user-supplied hook error.
func BFS(g *core.Graph, start core.Position, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartNotFound, start)
	}

	n := g.Len()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[core.Position]bool, n),
		res: &BFSResult{
			Order:  make([]core.Position, 0, n),
			Depth:  make(map[core.Position]int, n),
			Parent: make(map[core.Position]core.Position, n),
		},
	}

	w.enqueue(start, 0, nil)
	return w.res, w.loop()
}

// Reachable reports whether to can be reached from from over any links.
func Reachable(g *core.Graph, from, to core.Position, opts ...Option) (bool, error) {
	res, err := BFS(g, from, opts...)
	if err != nil {
		return false, err
	}
	return res.Reached(to), nil
}

// enqueue marks pos visited at depth d, records its parent and queues it.
func (w *walker) enqueue(pos core.Position, d int, parent *core.Position) {
	w.visited[pos] = true
	w.res.Depth[pos] = d
	if parent != nil {
		w.res.Parent[pos] = *parent
	}
	w.opts.OnEnqueue(pos, d)
	w.queue = append(w.queue, queueItem{pos: pos, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// visit records the position in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.pos)
	if err := w.opts.OnVisit(item.pos, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %s: %w", item.pos, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues every unseen
// neighbour, in Position order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	links, err := w.graph.Neighbors(item.pos)
	if err != nil {
		return fmt.Errorf("%w: neighbors of %s: %v", ErrNeighbors, item.pos, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, l := range links {
		if !w.opts.FilterLink(item.pos, l) || w.visited[l.To] {
			continue
		}
		w.enqueue(l.To, next, &item.pos)
	}
	return nil
}
