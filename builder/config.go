// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • labelFn        = DefaultLabelFn (letters up to 26 cells, then decimal)
//   • rng            = nil (BuildGrid then fails with ErrNeedRandSource)
//   • weightFn       = DefaultWeightFn (uniform 1..20)
//   • straightChance = DefaultStraightChance (0.9)
//   • diagonalChance = DefaultDiagonalChance (0.2)
//   • start/goal     = random distinct corners (BuildGrid) or
//     (0,0) and (w-1,h-1) (EmptyGrid)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	labelFn  LabelFn
	rng      *rand.Rand
	weightFn WeightFn

	// Link probabilities, validated at build time.
	straightChance float64
	diagonalChance float64

	// Fixed endpoints; nil means "choose".
	start *core.Position
	goal  *core.Position
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		labelFn:        DefaultLabelFn,
		weightFn:       DefaultWeightFn,
		straightChance: DefaultStraightChance,
		diagonalChance: DefaultDiagonalChance,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
