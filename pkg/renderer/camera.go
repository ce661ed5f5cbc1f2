package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-ray-tracer/pkg/canvas"
	"github.com/df07/go-ray-tracer/pkg/core"
	"github.com/df07/go-ray-tracer/pkg/world"
)

// Camera maps a pixel grid onto world-space rays. The canvas sits one unit in
// front of the eye; the view transform moves the world relative to it.
type Camera struct {
	HSize       int     // Horizontal size in pixels
	VSize       int     // Vertical size in pixels
	FieldOfView float64 // Field of view in radians
	MaxDepth    int     // Reflection and refraction bounces per camera ray

	transform  core.Matrix
	inverse    core.Matrix
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera with the identity view transform
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		MaxDepth:    world.DefaultMaxDepth,
		transform:   core.Identity(),
		inverse:     core.Identity(),
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)

	return c
}

// SetTransform sets the view transform. A singular matrix leaves the camera
// unchanged.
func (c *Camera) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return fmt.Errorf("camera transform: %w", err)
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// Transform returns the view transform
func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// PixelSize returns the world-space size of one pixel on the canvas
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the ray from the eye through the center of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// The camera looks toward -z, so +x is to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(core.Origin)
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}

// Render traces every pixel, row by row, into sink and then calls its update hook
func (c *Camera) Render(w *world.World, sink canvas.Sink) error {
	if sink.Width() != c.HSize || sink.Height() != c.VSize {
		return fmt.Errorf("sink is %dx%d, camera is %dx%d", sink.Width(), sink.Height(), c.HSize, c.VSize)
	}

	for y := 0; y < c.VSize; y++ {
		for x := 0; x < c.HSize; x++ {
			sink.WritePixel(x, y, w.ColorAt(c.RayForPixel(x, y), c.MaxDepth))
		}
	}

	return sink.Update()
}

// renderRow traces one row into row, which must hold HSize colors
func (c *Camera) renderRow(w *world.World, y int, row []core.Color) {
	for x := range row {
		row[x] = w.ColorAt(c.RayForPixel(x, y), c.MaxDepth)
	}
}
