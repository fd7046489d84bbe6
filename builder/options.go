// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors panic on nil inputs; numeric ranges are checked at
//     build time and reported as sentinel errors.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/core"
)

// BuilderOption customizes a constructor by mutating a builderConfig before
// graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-link weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithUniformWeight draws weights uniformly from [min, max].
// Panics like UniformWeightFn.
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithStraightChance sets the probability of each right and below link.
func WithStraightChance(p float64) BuilderOption {
	return func(c *builderConfig) {
		c.straightChance = p
	}
}

// WithDiagonalChance sets the probability of each lower-right and lower-left link.
func WithDiagonalChance(p float64) BuilderOption {
	return func(c *builderConfig) {
		c.diagonalChance = p
	}
}

// WithStart fixes the start position instead of picking a corner.
func WithStart(p core.Position) BuilderOption {
	return func(c *builderConfig) {
		c.start = &p
	}
}

// WithGoal fixes the goal position instead of picking a corner.
func WithGoal(p core.Position) BuilderOption {
	return func(c *builderConfig) {
		c.goal = &p
	}
}
