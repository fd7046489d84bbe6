// Package builder provides the link-weight distributions used by grid
// constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces a link weight from the configured RNG. It must be
// deterministic for a given RNG state and return a positive value.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn draws uniformly from [DefaultMinWeight, DefaultMaxWeight].
// A nil rng yields DefaultMinWeight.
func DefaultWeightFn(rng *rand.Rand) int64 {
	return UniformWeightFn(DefaultMinWeight, DefaultMaxWeight)(rng)
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 1.
func ConstantWeightFn(value int64) WeightFn {
	if value < 1 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 1, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max] inclusive.
// Panics if min < 1 or max < min. A nil rng yields min.
// Complexity: O(1).
func UniformWeightFn(min, max int64) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Int63n(max-min+1)
	}
}
