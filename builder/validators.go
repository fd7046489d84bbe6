// Package builder provides validation helpers to enforce parameter contracts
// in grid constructors. Each returns a sentinel wrapped via builderErrorf.
package builder

import "github.com/katalvlaran/gridpath/core"

// validateCells ensures width and height are positive and the grid holds at
// least MinGridCells cells.
// Complexity: O(1).
func validateCells(method string, width, height int) error {
	if width < 1 || height < 1 || width*height < MinGridCells {
		return builderErrorf(method, ErrTooFewVertices,
			"width=%d, height=%d (need ≥ %d cells)", width, height, MinGridCells)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
// Complexity: O(1).
func validateProbability(method, name string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return builderErrorf(method, ErrInvalidProbability,
			"%s must be in [%.1f,%.1f], got %f", name, MinProbability, MaxProbability, p)
	}

	return nil
}

// validatePosition ensures p lies inside a width×height grid.
// Complexity: O(1).
func validatePosition(method, name string, p core.Position, width, height int) error {
	if p.X < 0 || p.Y < 0 || p.X >= width || p.Y >= height {
		return builderErrorf(method, ErrBadPosition, "%s %s in %dx%d", name, p, width, height)
	}

	return nil
}
