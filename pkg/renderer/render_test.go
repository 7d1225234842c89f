package renderer

import (
	"math/rand"
	"testing"

	"github.com/jshort/go-sphere-tracer/pkg/core"
	"github.com/jshort/go-sphere-tracer/pkg/geometry"
	"github.com/jshort/go-sphere-tracer/pkg/material"
)

func brightness(c core.Vec3) float64 {
	return c.X + c.Y + c.Z
}

// End-to-end render of a single matte gray sphere straight ahead of a
// pinhole camera, one sample per pixel.
func TestRender_SingleDiffuseSphere(t *testing.T) {
	world := geometry.NewWorld()
	world.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5,
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	camera := NewPinholeCamera(16.0/9.0, 90, 2.0, core.NewVec3(0, 0, 0), 1)
	random := rand.New(rand.NewSource(42))

	canvas := camera.Draw(world, random)

	centerX, centerY := canvas.Width/2, canvas.Height/2
	spherePixel := canvas.GetPixel(centerX, centerY)
	backgroundPixel := canvas.GetPixel(centerX, 0)

	// The sphere attenuates whatever sky light its bounce gathers by
	// 0.5 per channel, so the center pixel is distinctly dimmer than
	// any unobstructed background pixel.
	if brightness(spherePixel) >= brightness(backgroundPixel) {
		t.Errorf("Expected sphere pixel %v dimmer than background pixel %v",
			spherePixel, backgroundPixel)
	}

	// The sky gradient blends toward white as ray directions tilt
	// downward, so background brightness increases down the image.
	topPixel := canvas.GetPixel(canvas.Width-1, 0)
	bottomPixel := canvas.GetPixel(canvas.Width-1, canvas.Height-1)
	if brightness(bottomPixel) <= brightness(topPixel) {
		t.Errorf("Expected background to brighten downward: top %v, bottom %v",
			topPixel, bottomPixel)
	}

	// No pixel can exceed the brightest sky color or drop below zero.
	for y := 0; y < canvas.Height; y++ {
		for x := 0; x < canvas.Width; x++ {
			pixel := canvas.GetPixel(x, y)
			for _, channel := range []float64{pixel.X, pixel.Y, pixel.Z} {
				if channel < 0 || channel > 1 {
					t.Fatalf("Pixel (%d,%d) channel %g outside [0,1]", x, y, channel)
				}
			}
		}
	}
}
