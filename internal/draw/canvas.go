package draw

import (
	"fmt"
	"io"
	"strings"
)

// Canvas is a color drawing buffer with 2x vertical resolution using
// half-block characters. One terminal cell holds two vertically stacked
// pixels, so the pixel grid is termWidth x termHeight*2.
type Canvas struct {
	termWidth      int // Actual terminal columns
	termHeight     int // Actual terminal rows
	subPixelHeight int // termHeight * 2

	pixels  []RGB  // Flat slice: [y * termWidth + x]
	painted []bool // Tracks which pixels were drawn since the last Clear
	bg      RGB    // Background color set by Clear

	// Reusable buffer to reduce per-frame allocations
	renderBuf strings.Builder
}

// NewCanvas creates a canvas for the given terminal dimensions.
// The canvas has 2x vertical resolution (height*2 pixels).
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.alloc(width, height)
	return c
}

func (c *Canvas) alloc(termWidth, termHeight int) {
	subPixelHeight := termHeight * 2
	c.termWidth = termWidth
	c.termHeight = termHeight
	c.subPixelHeight = subPixelHeight
	c.pixels = make([]RGB, subPixelHeight*termWidth)
	c.painted = make([]bool, subPixelHeight*termWidth)
}

// Resize reallocates the canvas for new terminal dimensions.
// No-op when the size is unchanged.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth == c.termWidth && termHeight == c.termHeight {
		return
	}
	c.alloc(termWidth, termHeight)
}

// Width returns the pixel width (terminal columns).
func (c *Canvas) Width() int {
	return c.termWidth
}

// Height returns the pixel height (2x terminal rows).
func (c *Canvas) Height() int {
	return c.subPixelHeight
}

// Clear resets all pixels and sets the background color used for the
// unpainted half of partially painted cells.
func (c *Canvas) Clear(bg RGB) {
	c.bg = bg
	clear(c.painted)
}

// setPixel sets a single pixel, ignoring out-of-bounds coordinates.
func (c *Canvas) setPixel(x, y int, col RGB) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = col
		c.painted[y*c.termWidth+x] = true
	}
}

// FilledRect fills the axis-aligned rectangle with top-left corner (x, y),
// the given pixel dimensions, and a solid color. Pixels falling outside
// the canvas are clipped.
func (c *Canvas) FilledRect(x, y, width, height int, col RGB) {
	for py := y; py < y+height; py++ {
		for px := x; px < x+width; px++ {
			c.setPixel(px, py, col)
		}
	}
}

// At reports the color at a pixel and whether it was painted since the
// last Clear. Out-of-bounds coordinates report the background, unpainted.
func (c *Canvas) At(x, y int) (RGB, bool) {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return c.bg, false
	}
	if !c.painted[y*c.termWidth+x] {
		return c.bg, false
	}
	return c.pixels[y*c.termWidth+x], true
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1400 bytes stays under typical MTU size for smooth SSH transmission.
const maxChunkSize = 1400

// Render outputs painted cells to the writer using half-block characters
// with 24-bit foreground/background colors. Cells with no painted pixel
// are skipped, so the caller should clear the screen between frames.
func (c *Canvas) Render(w io.Writer) {
	// Reset and pre-grow buffer for better performance
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 8)

	for row := 0; row < c.termHeight; row++ {
		topOffset := (row * 2) * c.termWidth
		bottomOffset := (row*2 + 1) * c.termWidth

		for col := 0; col < c.termWidth; col++ {
			topSet := c.painted[topOffset+col]
			bottomSet := c.painted[bottomOffset+col]

			var ch rune
			var fg, bg RGB
			switch {
			case topSet && bottomSet:
				ch, fg, bg = BlockUpperHalf, c.pixels[topOffset+col], c.pixels[bottomOffset+col]
			case topSet:
				ch, fg, bg = BlockUpperHalf, c.pixels[topOffset+col], c.bg
			case bottomSet:
				ch, fg, bg = BlockLowerHalf, c.pixels[bottomOffset+col], c.bg
			default:
				continue // Skip empty cells
			}

			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH\033[38;2;%d;%d;%dm\033[48;2;%d;%d;%dm%c",
				row+1, col+1, fg.R, fg.G, fg.B, bg.R, bg.G, bg.B, ch)
		}
	}
	c.renderBuf.WriteString("\033[0m")

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}
