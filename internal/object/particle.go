package object

import (
	"math"

	"github.com/tomz197/fireworks/internal/draw"
)

// defaultFading is the lifetime decay per tick; a fresh particle fades
// out over 100 ticks. Rockets override this with 0 (immortal).
const defaultFading = 0.01

// Particle is the atomic simulated object: a colored rectangle with
// sub-pixel position, per-tick velocity and constant acceleration, and
// a [0,1] lifetime that dims its color as it decays. A particle with
// Lifetime <= 0 is dead: it is never drawn and its state is frozen.
type Particle struct {
	X, Y          float64 // Top-left corner, sub-pixel precision
	Width, Height int     // Rectangle size in pixels, fixed at creation
	VX, VY        float64 // Velocity, applied per tick
	AX, AY        float64 // Acceleration, constant over the particle's life
	Lifetime      float64 // 1.0 = fresh, <= 0 = dead
	Fading        float64 // Lifetime decay per tick; 0 = immortal
	Color         draw.RGB
}

// NewParticle creates a fresh particle at (x, y) with the given size and
// base color. Velocity and acceleration start at zero; callers set them
// directly along with Fading.
func NewParticle(x, y float64, width, height int, c draw.RGB) Particle {
	return Particle{
		X:        x,
		Y:        y,
		Width:    width,
		Height:   height,
		Lifetime: 1.0,
		Fading:   defaultFading,
		Color:    c,
	}
}

// Dead reports whether the particle's lifetime is exhausted.
func (p *Particle) Dead() bool {
	return p.Lifetime <= 0
}

// Update advances the particle one tick using semi-implicit Euler:
// acceleration is applied to velocity first, so the position step uses
// the updated velocity. Dead particles are frozen.
func (p *Particle) Update() {
	if p.Dead() {
		return
	}
	p.VX += p.AX
	p.VY += p.AY
	p.Lifetime -= p.Fading
	p.X += p.VX
	p.Y += p.VY
}

// Draw renders the particle as a filled rectangle at its rounded
// position, with each color channel scaled by the current lifetime.
// Dead particles draw nothing.
func (p *Particle) Draw(s Surface) {
	if p.Dead() {
		return
	}
	s.FilledRect(
		int(math.Round(p.X)),
		int(math.Round(p.Y)),
		p.Width,
		p.Height,
		p.Color.Scaled(p.Lifetime),
	)
}
