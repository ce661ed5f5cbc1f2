package canvas

import (
	"github.com/df07/go-ray-tracer/pkg/core"
)

// Sink receives rendered pixels. (0, 0) is the top-left corner and Update is
// called once after the last pixel has been written.
type Sink interface {
	Width() int
	Height() int
	WritePixel(x, y int, color core.Color)
	Update() error
}

// Image is a readable grid of pixels
type Image interface {
	Width() int
	Height() int
	PixelAt(x, y int) core.Color
}

// Canvas is an in-memory pixel buffer implementing Sink and Image
type Canvas struct {
	width   int
	height  int
	pixels  []core.Color
	updates int
}

// NewCanvas creates a black canvas of the given size
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels
func (c *Canvas) Height() int {
	return c.height
}

// WritePixel sets one pixel. Writes outside the canvas are ignored.
func (c *Canvas) WritePixel(x, y int, color core.Color) {
	if !c.inBounds(x, y) {
		return
	}
	c.pixels[y*c.width+x] = color
}

// PixelAt returns one pixel, or black outside the canvas
func (c *Canvas) PixelAt(x, y int) core.Color {
	if !c.inBounds(x, y) {
		return core.Black
	}
	return c.pixels[y*c.width+x]
}

// Pixels returns a copy of all pixels in row-major order from the top-left
func (c *Canvas) Pixels() []core.Color {
	out := make([]core.Color, len(c.pixels))
	copy(out, c.pixels)
	return out
}

// Update marks the end of a render pass
func (c *Canvas) Update() error {
	c.updates++
	return nil
}

// Updates returns how many render passes have completed
func (c *Canvas) Updates() int {
	return c.updates
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}
