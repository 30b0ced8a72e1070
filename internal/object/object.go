// Package object implements the simulated entities: particles and the
// composite fireworks built from them.
package object

import "github.com/tomz197/fireworks/internal/draw"

// Surface is the narrow slice of the render target objects draw into.
// *draw.Canvas satisfies it; tests substitute recording fakes.
type Surface interface {
	// FilledRect fills an axis-aligned rectangle at pixel coordinates.
	FilledRect(x, y, width, height int, c draw.RGB)
}

// Ensure the canvas satisfies Surface.
var _ Surface = (*draw.Canvas)(nil)
