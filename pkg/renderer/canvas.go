package renderer

import (
	"github.com/jshort/go-sphere-tracer/pkg/core"
)

// Canvas is an in-memory framebuffer of linear (not gamma-corrected)
// radiance values. Pixels default to black; the renderer fills each
// pixel exactly once and the output stage reads them back.
type Canvas struct {
	Width  int
	Height int
	pixels []core.Vec3
}

// NewCanvas creates a canvas with every pixel set to black
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// GetPixel returns the color at (x, y)
func (c *Canvas) GetPixel(x, y int) core.Vec3 {
	return c.pixels[y*c.Width+x]
}

// PutPixel sets the color at (x, y)
func (c *Canvas) PutPixel(x, y int, color core.Vec3) {
	c.pixels[y*c.Width+x] = color
}
