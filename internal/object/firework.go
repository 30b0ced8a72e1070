package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/fireworks/internal/draw"
)

// Firework tunables. The detonation threshold and burst size determine
// the shape of the effect.
const (
	gravity         = 0.02 // Downward acceleration, pixels per tick²
	detonationSpeed = -0.3 // Rocket detonates once its vertical speed rises above this
	burstSize       = 25   // Effect particles spawned per detonation

	saturationJitter = 0.20 // Max +- saturation offset for burst colors
	lightnessJitter  = 0.40 // Max +- lightness offset for burst colors
)

// phase tracks which half of the launch -> explode lifecycle a firework
// is in. The rocket only exists while ascending.
type phase int

const (
	phaseAscending phase = iota
	phaseExploded
)

// Firework is a composite object: a single rocket particle ascending
// against gravity, then a burst of fading effect particles once the
// rocket has slowed enough to detonate.
type Firework struct {
	phase     phase
	rocket    Particle
	effect    []Particle
	baseColor draw.HSL // Explosion hue, derived once from the seed color
}

// NewFirework launches a rocket at (x, y) with the given initial vertical
// speed (negative = upward). seedColor determines the explosion's base
// hue; the rocket itself is white and immortal until detonation.
func NewFirework(x, y, ySpeed float64, seedColor draw.RGB) *Firework {
	rocket := NewParticle(x, y, 1, 3, draw.White)
	rocket.VY = ySpeed
	rocket.AY = gravity
	rocket.Fading = 0

	return &Firework{
		phase:     phaseAscending,
		rocket:    rocket,
		baseColor: seedColor.HSL(),
	}
}

// Update advances the firework one tick. While ascending, the rocket is
// integrated and tested for detonation: once gravity has pulled its
// vertical speed above the threshold, the effect burst is spawned at the
// rocket's rounded position and the rocket is discarded in the same tick.
// Effect particles are always advanced, including ones spawned this tick.
func (f *Firework) Update(rng *rand.Rand) {
	if f.phase == phaseAscending {
		f.rocket.Update()
		if f.rocket.VY > detonationSpeed {
			f.explode(rng)
			f.phase = phaseExploded
		}
	}

	for i := range f.effect {
		f.effect[i].Update()
	}
}

// explode spawns the burst: burstSize 1x1 particles at the rocket's
// position, each with the base hue, jittered saturation and lightness,
// and an independently randomized upward-then-outward spread velocity.
func (f *Firework) explode(rng *rand.Rand) {
	x := math.Round(f.rocket.X)
	y := math.Round(f.rocket.Y)

	f.effect = make([]Particle, 0, burstSize)
	for i := 0; i < burstSize; i++ {
		c := draw.HSL{
			H: f.baseColor.H,
			S: f.baseColor.S + (rng.Float64()-0.5)*2*saturationJitter,
			L: f.baseColor.L + (rng.Float64()-0.5)*2*lightnessJitter,
		}.RGB()

		p := NewParticle(x, y, 1, 1, c)
		p.AY = gravity
		p.VX = 1.5 * (rng.Float64() - 0.5)
		p.VY = 1.5 * (rng.Float64() - 0.9)
		f.effect = append(f.effect, p)
	}
}

// Draw renders the rocket (while ascending), then every effect particle.
func (f *Firework) Draw(s Surface) {
	if f.phase == phaseAscending {
		f.rocket.Draw(s)
	}
	for i := range f.effect {
		f.effect[i].Draw(s)
	}
}

// Dead reports whether the firework can be reaped: the rocket is gone
// and every effect particle has faded out. A dead firework never comes
// back to life.
func (f *Firework) Dead() bool {
	if f.phase == phaseAscending {
		return false
	}
	for i := range f.effect {
		if !f.effect[i].Dead() {
			return false
		}
	}
	return true
}
