package core

import "fmt"

// SetStart marks pos as the search origin.
// Fails with ErrNodeNotFound if no node occupies pos.
// Complexity: O(1).
func (g *Graph) SetStart(pos Position) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[pos]; !ok {
		return fmt.Errorf("SetStart %s: %w", pos, ErrNodeNotFound)
	}
	g.start, g.hasStart = pos, true
	return nil
}

// SetGoal marks pos as the search target and recomputes Value for every node
// as its squared Euclidean distance to pos.
//
// Implementation:
//   - Stage 1: Under write lock, require a node at pos (ErrNodeNotFound).
//   - Stage 2: Record the goal.
//   - Stage 3: Rewrite every Node.Value, O(V).
//
// Behavior highlights:
//   - The goal's own Value becomes 0.
//   - Node pointers stay the same; paths holding them observe the new values.
func (g *Graph) SetGoal(pos Position) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[pos]; !ok {
		return fmt.Errorf("SetGoal %s: %w", pos, ErrNodeNotFound)
	}
	g.goal, g.hasGoal = pos, true
	for p, n := range g.nodes {
		n.Value = p.SquaredDistance(pos)
	}
	return nil
}

// Start returns the start position and whether one was set.
func (g *Graph) Start() (Position, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.start, g.hasStart
}

// Goal returns the goal position and whether one was set.
func (g *Graph) Goal() (Position, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.goal, g.hasGoal
}
