package object

import (
	"testing"

	"github.com/tomz197/fireworks/internal/draw"
)

// recordSurface captures FilledRect calls for assertions.
type recordSurface struct {
	rects []recordedRect
}

type recordedRect struct {
	x, y, w, h int
	c          draw.RGB
}

func (s *recordSurface) FilledRect(x, y, width, height int, c draw.RGB) {
	s.rects = append(s.rects, recordedRect{x, y, width, height, c})
}

func TestParticleSemiImplicitEuler(t *testing.T) {
	// Acceleration must be applied before the position step, so the
	// first update already moves with the accelerated velocity.
	p := NewParticle(0, 0, 1, 1, draw.White)
	p.VX = 1.0
	p.AX = 1.0
	p.Update()

	if p.VX != 2.0 {
		t.Errorf("VX after update = %v, want 2.0", p.VX)
	}
	if p.X != 2.0 {
		t.Errorf("X after update = %v, want 2.0 (position uses updated velocity)", p.X)
	}
}

func TestParticleImmortalWithZeroFading(t *testing.T) {
	p := NewParticle(0, 0, 1, 3, draw.White)
	p.Fading = 0
	p.VY = -1.5
	p.AY = 0.02

	for i := 0; i < 1000; i++ {
		p.Update()
	}
	if p.Lifetime != 1.0 {
		t.Errorf("Lifetime after 1000 updates = %v, want 1.0", p.Lifetime)
	}
	if p.Dead() {
		t.Error("immortal particle reported dead")
	}
}

func TestParticleFadesToDeath(t *testing.T) {
	p := NewParticle(0, 0, 1, 1, draw.White)
	for i := 0; i < 99; i++ {
		p.Update()
	}
	if p.Dead() {
		t.Fatalf("particle dead after 99 ticks, lifetime %v", p.Lifetime)
	}
	p.Update()
	if !p.Dead() {
		t.Errorf("particle alive after 100 ticks, lifetime %v", p.Lifetime)
	}
}

func TestParticleFrozenOnDeath(t *testing.T) {
	p := NewParticle(5, 5, 1, 1, draw.White)
	p.VX = 1.0
	p.AY = 0.02
	p.Lifetime = 0

	before := p
	for i := 0; i < 10; i++ {
		p.Update()
	}
	if p != before {
		t.Errorf("dead particle mutated: %+v, want %+v", p, before)
	}
}

func TestParticleDrawRoundsPositionAndScalesColor(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		lifetime     float64
		color        draw.RGB
		wantX, wantY int
		wantColor    draw.RGB
	}{
		{"Fresh at integer position", 3, 4, 1.0, draw.RGB{R: 100, G: 200, B: 50}, 3, 4, draw.RGB{R: 100, G: 200, B: 50}},
		{"Half rounds away from zero", 1.5, 2.5, 1.0, draw.White, 2, 3, draw.White},
		{"Negative half rounds away from zero", -1.5, -0.5, 1.0, draw.White, -2, -1, draw.White},
		{"Half lifetime dims color", 0, 0, 0.5, draw.RGB{R: 100, G: 200, B: 50}, 0, 0, draw.RGB{R: 50, G: 100, B: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParticle(tt.x, tt.y, 2, 3, tt.color)
			p.Lifetime = tt.lifetime

			s := &recordSurface{}
			p.Draw(s)

			if len(s.rects) != 1 {
				t.Fatalf("Draw issued %d rects, want 1", len(s.rects))
			}
			got := s.rects[0]
			want := recordedRect{tt.wantX, tt.wantY, 2, 3, tt.wantColor}
			if got != want {
				t.Errorf("Draw issued %+v, want %+v", got, want)
			}
		})
	}
}

func TestParticleDrawDeadNoop(t *testing.T) {
	p := NewParticle(0, 0, 1, 1, draw.White)
	p.Lifetime = 0

	s := &recordSurface{}
	p.Draw(s)
	if len(s.rects) != 0 {
		t.Errorf("dead particle drew %d rects, want 0", len(s.rects))
	}
}
