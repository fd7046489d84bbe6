// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// impl_grid.go: grid graph constructors.
//
// Canonical model:
//   • Nodes at every (x,y) with 0 ≤ x < width, 0 ≤ y < height, added in
//     row-major order (y asc, then x asc); label index = x + y*width.
//   • BuildGrid visits nodes in the same order and, per node, considers the
//     right, lower-right, below and lower-left neighbour. Straight links
//     appear with straightChance, diagonal ones with diagonalChance; each
//     link that appears draws its weight from weightFn.
//   • Start and goal default to distinct random corners.
//
// Contract:
//   • width*height ≥ MinGridCells (else ErrTooFewVertices).
//   • chances in [0,1] (else ErrInvalidProbability).
//   • BuildGrid requires an RNG (else ErrNeedRandSource).
//   • fixed start/goal must lie in the grid (else ErrBadPosition).
//
// Complexity:
//   • Time: O(width*height) nodes + O(width*height) links.
//   • Space: O(width*height) for the graph itself.
//
// Determinism:
//   • A fixed seed reproduces the exact graph, endpoints included.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridpath/core"
)

// neighbourStep is one candidate link direction.
type neighbourStep struct {
	dx, dy   int
	diagonal bool
}

// linkSteps lists directions in generation order: right, lower-right, below, lower-left.
var linkSteps = [...]neighbourStep{
	{dx: 1, dy: 0},
	{dx: 1, dy: 1, diagonal: true},
	{dx: 0, dy: 1},
	{dx: -1, dy: 1, diagonal: true},
}

// BuildGrid generates a random width×height grid graph with start and goal set.
//
// Example:
//
//	g, err := builder.BuildGrid(5, 4, builder.WithSeed(7))
func BuildGrid(width, height int, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)

	// 1) Validate parameters (fail fast; no partial work).
	if err := validateCells(MethodBuildGrid, width, height); err != nil {
		return nil, err
	}
	if err := validateProbability(MethodBuildGrid, "straight chance", cfg.straightChance); err != nil {
		return nil, err
	}
	if err := validateProbability(MethodBuildGrid, "diagonal chance", cfg.diagonalChance); err != nil {
		return nil, err
	}
	if cfg.rng == nil {
		return nil, builderErrorf(MethodBuildGrid, ErrNeedRandSource, "use WithSeed or WithRand")
	}

	// 2) Resolve endpoints before touching the graph.
	start, goal, err := randomEndpoints(MethodBuildGrid, cfg, width, height)
	if err != nil {
		return nil, err
	}

	// 3) Nodes.
	g, err := addNodes(MethodBuildGrid, cfg, width, height)
	if err != nil {
		return nil, err
	}

	// 4) Links, in node order then direction order.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			from := core.Pos(x, y)
			for _, s := range linkSteps {
				to := core.Pos(x+s.dx, y+s.dy)
				if to.X < 0 || to.X >= width || to.Y >= height {
					continue
				}
				chance := cfg.straightChance
				if s.diagonal {
					chance = cfg.diagonalChance
				}
				if cfg.rng.Float64() >= chance {
					continue
				}
				w := cfg.weightFn(cfg.rng)
				if err = g.AddLink(from, to, w); err != nil {
					return nil, fmt.Errorf("%s: AddLink(%s, %s, w=%d): %w", MethodBuildGrid, from, to, w, err)
				}
			}
		}
	}

	// 5) Endpoints last so SetGoal computes every Value once.
	if err = setEndpoints(MethodBuildGrid, g, start, goal); err != nil {
		return nil, err
	}
	return g, nil
}

// EmptyGrid returns a width×height grid of labelled nodes without links.
// Start defaults to (0,0) and goal to (width-1,height-1). No RNG is needed;
// graph files use it as the canvas their links are drawn on.
func EmptyGrid(width, height int, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)

	if err := validateCells(MethodEmptyGrid, width, height); err != nil {
		return nil, err
	}
	start, goal := core.Pos(0, 0), core.Pos(width-1, height-1)
	if cfg.start != nil {
		start = *cfg.start
	}
	if cfg.goal != nil {
		goal = *cfg.goal
	}
	if err := validatePosition(MethodEmptyGrid, "start", start, width, height); err != nil {
		return nil, err
	}
	if err := validatePosition(MethodEmptyGrid, "goal", goal, width, height); err != nil {
		return nil, err
	}

	g, err := addNodes(MethodEmptyGrid, cfg, width, height)
	if err != nil {
		return nil, err
	}
	if err = setEndpoints(MethodEmptyGrid, g, start, goal); err != nil {
		return nil, err
	}
	return g, nil
}

// addNodes inserts every cell in row-major order.
func addNodes(method string, cfg builderConfig, width, height int) (*core.Graph, error) {
	g := core.NewGraph()
	cells := width * height
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := core.Pos(x, y)
			if err := g.AddNode(p, cfg.labelFn(x+y*width, cells)); err != nil {
				return nil, fmt.Errorf("%s: AddNode(%s): %w", method, p, err)
			}
		}
	}
	return g, nil
}

// randomEndpoints returns the configured endpoints, choosing a random corner
// for the start and a different random corner for the goal when unset.
func randomEndpoints(method string, cfg builderConfig, width, height int) (core.Position, core.Position, error) {
	var start, goal core.Position
	if cfg.start != nil {
		start = *cfg.start
	} else {
		start = randomCorner(cfg.rng, width, height)
	}
	if err := validatePosition(method, "start", start, width, height); err != nil {
		return start, goal, err
	}

	if cfg.goal != nil {
		goal = *cfg.goal
	} else {
		for goal = start; goal == start; {
			goal = randomCorner(cfg.rng, width, height)
		}
	}
	if err := validatePosition(method, "goal", goal, width, height); err != nil {
		return start, goal, err
	}
	return start, goal, nil
}

func randomCorner(rng *rand.Rand, width, height int) core.Position {
	xs := [2]int{0, width - 1}
	ys := [2]int{0, height - 1}
	return core.Pos(xs[rng.Intn(2)], ys[rng.Intn(2)])
}

func setEndpoints(method string, g *core.Graph, start, goal core.Position) error {
	if err := g.SetStart(start); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if err := g.SetGoal(goal); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}
