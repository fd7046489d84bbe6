// Package builder contains unit tests for builderConfig defaults and option
// ordering.
package builder

import (
	"testing"

	"github.com/katalvlaran/gridpath/core"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}
	if cfg.straightChance != DefaultStraightChance || cfg.diagonalChance != DefaultDiagonalChance {
		t.Errorf("default chances: got %v/%v", cfg.straightChance, cfg.diagonalChance)
	}
	if cfg.start != nil || cfg.goal != nil {
		t.Errorf("default endpoints must be unset")
	}
	if got := cfg.labelFn(0, 9); got != "A" {
		t.Errorf("default label: expected \"A\", got %q", got)
	}
}

func TestNewBuilderConfig_LastWins(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(
		WithStart(core.Pos(1, 1)),
		WithStart(core.Pos(2, 2)),
		WithDecimalLabels(),
		WithUniformWeight(3, 3),
	)
	if *cfg.start != core.Pos(2, 2) {
		t.Errorf("WithStart: expected (2,2), got %v", *cfg.start)
	}
	if got := cfg.labelFn(0, 4); got != "1" {
		t.Errorf("WithDecimalLabels: expected \"1\", got %q", got)
	}
	if got := cfg.weightFn(nil); got != 3 {
		t.Errorf("WithUniformWeight: expected 3, got %d", got)
	}
}

func TestWithSeed_Reproducible(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(11))
	b := newBuilderConfig(WithSeed(11))
	for i := 0; i < 5; i++ {
		if x, y := a.rng.Int63(), b.rng.Int63(); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}
