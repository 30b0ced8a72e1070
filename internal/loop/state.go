package loop

import (
	"math/rand"

	"github.com/tomz197/fireworks/internal/draw"
	"github.com/tomz197/fireworks/internal/object"
)

// State is the top-level simulation container: every live firework,
// plus the spawn policy applied each tick.
type State struct {
	Fireworks []*object.Firework

	// SpawnChance is the per-tick probability of launching one new
	// firework. Exposed so tests can pin it to 0 or 1.
	SpawnChance float64

	Running bool
}

// NewState creates an empty simulation with the default spawn chance.
func NewState() *State {
	return &State{
		SpawnChance: DefaultSpawnChance,
		Running:     true,
	}
}

// Update advances the simulation one tick against a surface of the given
// pixel dimensions. The phase order is a strict contract: reap dead
// fireworks first, then roll the spawn trial, then advance everything
// that remains (including a firework spawned this tick). Reordering
// changes steady-state particle density.
func (s *State) Update(rng *rand.Rand, width, height int) {
	// ===== REAP PHASE =====
	kept := s.Fireworks[:0] // reuse backing array
	for _, fw := range s.Fireworks {
		if !fw.Dead() {
			kept = append(kept, fw)
		}
	}
	// Drop stale tail pointers so reaped fireworks can be collected
	for i := len(kept); i < len(s.Fireworks); i++ {
		s.Fireworks[i] = nil
	}
	s.Fireworks = kept

	// ===== SPAWN PHASE =====
	// One Bernoulli trial per tick: launch from a uniform column on the
	// bottom edge with a random upward speed and seed color.
	if width > 0 && rng.Float64() < s.SpawnChance {
		s.Fireworks = append(s.Fireworks, object.NewFirework(
			float64(rng.Intn(width)),
			float64(height),
			maxLaunchSpeed+rng.Float64()*(minLaunchSpeed-maxLaunchSpeed),
			randomColor(rng),
		))
	}

	// ===== ADVANCE PHASE =====
	for _, fw := range s.Fireworks {
		fw.Update(rng)
	}
}

// randomColor returns an opaque color with each channel independently
// uniform over the full byte range.
func randomColor(rng *rand.Rand) draw.RGB {
	return draw.RGB{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
	}
}

// Draw renders every firework in insertion order (later entries draw
// on top).
func (s *State) Draw(surface object.Surface) {
	for _, fw := range s.Fireworks {
		fw.Draw(surface)
	}
}
