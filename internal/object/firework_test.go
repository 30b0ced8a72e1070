package object

import (
	"math/rand"
	"testing"

	"github.com/tomz197/fireworks/internal/draw"
)

func TestFireworkAscentThenDetonation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	f := NewFirework(10, 100, -1.5, draw.RGB{R: 255, G: 0, B: 0})

	if f.Dead() {
		t.Fatal("fresh firework reported dead")
	}

	prevY := f.rocket.Y
	ticks := 0
	for f.phase == phaseAscending {
		if len(f.effect) != 0 {
			t.Fatalf("effect particles before detonation: %d", len(f.effect))
		}
		f.Update(rng)
		ticks++

		if f.phase == phaseAscending {
			if f.rocket.Y >= prevY {
				t.Fatalf("rocket not ascending at tick %d: y %v -> %v", ticks, prevY, f.rocket.Y)
			}
			prevY = f.rocket.Y
		}
		if ticks > 1000 {
			t.Fatal("rocket never detonated")
		}
	}

	// vy starts at -1.5 and gains 0.02 per tick. Exact arithmetic would
	// cross -0.3 at tick 61, but sixty accumulated float64 additions of
	// 0.02 sum to slightly more than 1.2, so the threshold is crossed
	// one tick early.
	if ticks != 60 {
		t.Errorf("detonated after %d ticks, want 60", ticks)
	}
	if len(f.effect) != 25 {
		t.Errorf("burst size = %d, want 25", len(f.effect))
	}
}

func TestFireworkBurstParticles(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	f := NewFirework(0, 0, -0.31, draw.RGB{R: 0, G: 128, B: 255})

	// One tick lifts vy to -0.29, above the -0.3 threshold.
	f.Update(rng)
	if f.phase != phaseExploded {
		t.Fatal("rocket did not detonate")
	}

	for i := range f.effect {
		p := &f.effect[i]
		if p.Width != 1 || p.Height != 1 {
			t.Errorf("effect particle %d is %dx%d, want 1x1", i, p.Width, p.Height)
		}
		if p.AX != 0 || p.AY != gravity {
			t.Errorf("effect particle %d acceleration = (%v, %v), want (0, %v)", i, p.AX, p.AY, gravity)
		}
		// vx = 1.5(U-0.5), vy = 1.5(U-0.9), then one gravity step
		if p.VX < -0.75 || p.VX > 0.75 {
			t.Errorf("effect particle %d VX = %v, out of [-0.75, 0.75]", i, p.VX)
		}
		if p.VY < -1.35+gravity || p.VY > 0.15+gravity {
			t.Errorf("effect particle %d VY = %v, out of spread range", i, p.VY)
		}
	}
}

func TestFireworkEffectNeverGrows(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	f := NewFirework(10, 100, -1.5, draw.RGB{R: 255, G: 0, B: 255})

	for f.phase == phaseAscending {
		f.Update(rng)
	}
	for i := 0; i < 200; i++ {
		f.Update(rng)
		if len(f.effect) != 25 {
			t.Fatalf("effect count changed after detonation: %d", len(f.effect))
		}
	}
}

func TestFireworkDeadAfterEffectFades(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	f := NewFirework(10, 100, -1.5, draw.RGB{R: 0, G: 255, B: 0})

	for f.phase == phaseAscending {
		f.Update(rng)
	}
	if f.Dead() {
		t.Fatal("firework dead immediately after detonation")
	}

	// Effect particles fade at 0.01 per tick; 150 more ticks is plenty.
	for i := 0; i < 150; i++ {
		f.Update(rng)
	}
	if !f.Dead() {
		t.Error("firework still alive after effect faded")
	}

	// Dead is terminal.
	f.Update(rng)
	if !f.Dead() {
		t.Error("firework came back from the dead")
	}
}

func TestFireworkDrawsRocketThenEffect(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	f := NewFirework(10, 100, -1.5, draw.RGB{R: 255, G: 0, B: 0})

	s := &recordSurface{}
	f.Draw(s)
	if len(s.rects) != 1 {
		t.Fatalf("ascending firework drew %d rects, want 1 (the rocket)", len(s.rects))
	}
	rocket := s.rects[0]
	if rocket.w != 1 || rocket.h != 3 || rocket.c != draw.White {
		t.Errorf("rocket drawn as %+v, want 1x3 white", rocket)
	}

	for f.phase == phaseAscending {
		f.Update(rng)
	}

	s = &recordSurface{}
	f.Draw(s)
	if len(s.rects) != 25 {
		t.Errorf("exploded firework drew %d rects, want 25", len(s.rects))
	}
}

func TestFireworkBurstColorKeepsBaseHue(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	seed := draw.RGB{R: 255, G: 0, B: 0} // hue 0
	f := NewFirework(0, 0, -0.31, seed)
	f.Update(rng)

	for i := range f.effect {
		c := f.effect[i].Color
		// Grayscale results (lightness clamped to an extreme, or
		// saturation jittered to zero) carry no hue information.
		if c.R == c.G && c.G == c.B {
			continue
		}
		h := c.HSL().H
		// Byte rounding shifts the hue a little for near-gray colors.
		if h > 5.0 && h < 355.0 {
			t.Errorf("effect particle %d hue = %v, want ~0 (base hue preserved)", i, h)
		}
	}
}
