// Package loop provides the fixed-timestep driver loop and the
// top-level simulation state.
package loop

import (
	"bufio"
	"io"
	"math/rand"
	"time"

	"github.com/tomz197/fireworks/internal/draw"
	"github.com/tomz197/fireworks/internal/input"
)

// Options configures a run of the show. The zero value is usable: local
// terminal size lookup, time-seeded randomness, default spawn chance.
type Options struct {
	// TermSizeFunc supplies terminal dimensions each frame (e.g. from
	// SSH window-change events). Defaults to querying os.Stdout.
	TermSizeFunc draw.TermSizeFunc

	// Rand is the randomness source for spawning and bursts.
	// Defaults to a time-seeded source.
	Rand *rand.Rand

	// SpawnChance overrides the per-tick launch probability when set.
	// An explicit zero disables spawning entirely.
	SpawnChance *float64
}

// newState builds the simulation state with the option overrides applied.
func (o Options) newState() *State {
	state := NewState()
	if o.SpawnChance != nil {
		state.SpawnChance = *o.SpawnChance
	}
	return state
}

// Run drives the simulation with the Input -> Update -> Draw cycle until
// quit is requested or the reader closes. Logical updates run at a fixed
// TickRate via an accumulator; rendering is capped at MaxFrameRate, so
// the two rates are independent.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	state := opts.newState()
	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termWidth, termHeight, err := sizeFunc()
	if err != nil {
		return err
	}
	canvas := draw.NewCanvas(termWidth, termHeight)

	lastTime := time.Now()
	var acc time.Duration

	for state.Running {
		frameStart := time.Now()
		acc += frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		inp := input.ReadInput(stream)
		if inp.Quit || inp.Closed {
			state.Running = false
			continue
		}

		// ===== RESIZE CHECK =====
		termWidth, termHeight, err = sizeFunc()
		if err != nil {
			return err
		}
		if termWidth != canvas.Width() || termHeight*2 != canvas.Height() {
			canvas.Resize(termWidth, termHeight)
			draw.ClearScreen(w)
		}

		// ===== UPDATE PHASE =====
		// Fixed timestep: consume whole ticks from the accumulator so
		// physics advances at TickRate regardless of render speed.
		if acc > maxTicksPerFrame*tickDuration {
			acc = maxTicksPerFrame * tickDuration
		}
		for acc >= tickDuration {
			state.Update(rng, canvas.Width(), canvas.Height())
			acc -= tickDuration
		}

		// ===== DRAW PHASE =====
		draw.ClearScreen(w)
		canvas.Clear(draw.Black)
		state.Draw(canvas)
		canvas.Render(w)

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < minFrameTime {
			time.Sleep(minFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}
