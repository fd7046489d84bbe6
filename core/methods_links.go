// File: methods_links.go
// Role: Link insertion and neighbourhood queries.
//
// Determinism:
//   - Neighbors() sorts by neighbour Position ascending.
//   - Edges() reports each undirected link once, sorted by (From, To).
//
// Concurrency:
//   - All accessors hold mu (read or write as needed).
package core

import (
	"fmt"
	"sort"
)

// AddLink connects a and b with an undirected link of the given weight.
//
// Implementation:
//   - Stage 1: Validate a != b (ErrLoopNotAllowed) and weight > 0 (ErrBadWeight).
//   - Stage 2: Under write lock, require both endpoints (ErrNodeNotFound).
//   - Stage 3: Write links[a][b] and links[b][a] with the same weight.
//
// Behavior highlights:
//   - Re-adding an existing link overwrites its weight on both sides, so the
//     symmetry invariant is preserved.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) AddLink(a, b Position, weight int64) error {
	if a == b {
		return fmt.Errorf("AddLink %s-%s: %w", a, b, ErrLoopNotAllowed)
	}
	if weight <= 0 {
		return fmt.Errorf("AddLink %s-%s weight=%d: %w", a, b, weight, ErrBadWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[a]; !ok {
		return fmt.Errorf("AddLink %s-%s: %w", a, b, ErrNodeNotFound)
	}
	if _, ok := g.nodes[b]; !ok {
		return fmt.Errorf("AddLink %s-%s: %w", a, b, ErrNodeNotFound)
	}

	g.links[a][b] = weight
	g.links[b][a] = weight

	return nil
}

// Links returns a copy of the neighbour map of pos: neighbour → weight.
// Fails with ErrNodeNotFound if pos has no entry.
// Complexity: O(d).
func (g *Graph) Links(pos Position) (map[Position]int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.links[pos]
	if !ok {
		return nil, fmt.Errorf("Links %s: %w", pos, ErrNodeNotFound)
	}
	out := make(map[Position]int64, len(adj))
	for p, w := range adj {
		out[p] = w
	}
	return out, nil
}

// Neighbors returns the neighbour map of pos as a slice sorted by neighbour
// position. This is the iteration surface used by the search so that runs
// are reproducible.
// Complexity: O(d·log d).
func (g *Graph) Neighbors(pos Position) ([]Link, error) {
	g.mu.RLock()
	adj, ok := g.links[pos]
	if !ok {
		g.mu.RUnlock()
		return nil, fmt.Errorf("Neighbors %s: %w", pos, ErrNodeNotFound)
	}
	out := make([]Link, 0, len(adj))
	for p, w := range adj {
		out = append(out, Link{To: p, Weight: w})
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].To.Less(out[j].To) })
	return out, nil
}

// Weight returns the weight of the link a-b and whether it exists.
func (g *Graph) Weight(a, b Position) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.links[a][b]
	return w, ok
}

// Edges lists every undirected link once with From ordered before To.
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0)
	for a, adj := range g.links {
		for b, w := range adj {
			if a.Less(b) {
				out = append(out, Edge{From: a, To: b, Weight: w})
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From.Less(out[j].From)
		}
		return out[i].To.Less(out[j].To)
	})
	return out
}

// LinkCount returns the number of undirected links.
// Complexity: O(V).
func (g *Graph) LinkCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, adj := range g.links {
		total += len(adj)
	}
	return total / 2
}
