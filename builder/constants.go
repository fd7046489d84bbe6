// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// constants.go: named defaults and method tags (no magic literals).

package builder

// Method tags used as error prefixes.
const (
	MethodBuildGrid = "BuildGrid"
	MethodEmptyGrid = "EmptyGrid"
)

// Grid limits and link-generation defaults.
const (
	// MinGridCells is the smallest grid with distinct start and goal.
	MinGridCells = 2

	// DefaultStraightChance is the probability of a right or below link.
	DefaultStraightChance = 0.9

	// DefaultDiagonalChance is the probability of a lower-right or lower-left link.
	DefaultDiagonalChance = 0.2

	// DefaultMinWeight and DefaultMaxWeight bound the uniform link weight.
	DefaultMinWeight int64 = 1
	DefaultMaxWeight int64 = 20

	// MaxLetterCells is the largest grid labelled with single letters.
	MaxLetterCells = 26

	MinProbability = 0.0
	MaxProbability = 1.0
)
