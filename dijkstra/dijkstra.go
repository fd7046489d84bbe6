package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/core"
)

// Dijkstra computes shortest distances from the source position to every
// other node of g.
//
// Returns:
//
//   - dist: map from position to minimum distance (Infinity if unreachable).
//   - prev: predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     Unreachable positions and the source have no entry.
//   - err:  error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. a source must be given or g must have a start (ErrEmptySource).
//  3. g must contain the source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[core.Position]int64, map[core.Position]core.Position, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 3) Resolve the source: explicit option first, graph start otherwise
	if !cfg.HasSource {
		start, ok := g.Start()
		if !ok {
			return nil, nil, ErrEmptySource
		}
		cfg.Source, cfg.HasSource = start, true
	}

	// 4) Validate Source exists in the graph
	if !g.HasNode(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %s", ErrVertexNotFound, cfg.Source)
	}

	// 5) Prepare data structures.
	V := g.Len()
	var prev map[core.Position]core.Position
	if cfg.ReturnPath {
		prev = make(map[core.Position]core.Position, V)
	}
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[core.Position]int64, V),
		prev:    prev,
		visited: make(map[core.Position]bool, V),
		pq:      make(nodePQ, 0, V),
	}

	// 6) Initialize algorithm state and run main loop.
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph                     // The input graph; read-only within Dijkstra.
	options Options                         // Configuration options (Source, thresholds, etc.).
	dist    map[core.Position]int64         // Current best distance from Source.
	prev    map[core.Position]core.Position // Predecessor on the shortest path.
	visited map[core.Position]bool          // Tracks if a distance is finalized.
	pq      nodePQ                          // Min-heap for lazy decrease-key.
}

// init sets dist to Infinity everywhere but the source and seeds the heap.
func (r *runner) init() {
	for _, v := range r.g.Positions() {
		r.dist[v] = Infinity
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{pos: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unvisited position and relaxes its
// links. It stops when the heap is empty or the next distance exceeds
// MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.pos, item.dist

		// Stale heap entry.
		if r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the distance of every neighbour of u.
// Links at or above InfEdgeThreshold are walls.
func (r *runner) relax(u core.Position) error {
	links, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %s: %w", u, err)
	}

	var newDist int64
	for _, l := range links {
		if l.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		newDist = r.dist[u] + l.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict: equal distances keep the first predecessor found.
		if newDist >= r.dist[l.To] {
			continue
		}

		r.dist[l.To] = newDist
		if r.prev != nil {
			r.prev[l.To] = u
		}
		heap.Push(&r.pq, &nodeItem{pos: l.To, dist: newDist})
	}

	return nil
}

// nodeItem is a heap entry: a position and a tentative distance.
type nodeItem struct {
	pos  core.Position
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then position, so pops
// are deterministic.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].pos.Less(pq[j].pos)
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
