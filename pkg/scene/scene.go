// Package scene builds the preset worlds the driver can render. Scene
// construction sits outside the render core: a Scene owns its materials
// and spheres for the duration of the render.
package scene

import (
	"math"
	"math/rand"

	"github.com/jshort/go-sphere-tracer/pkg/core"
	"github.com/jshort/go-sphere-tracer/pkg/geometry"
	"github.com/jshort/go-sphere-tracer/pkg/material"
	"github.com/jshort/go-sphere-tracer/pkg/renderer"
)

// Scene bundles a camera with the world it renders
type Scene struct {
	Camera *renderer.Camera
	World  *geometry.World
}

// NewSimpleScene creates a single matte gray sphere in front of a
// pinhole camera at the origin. Small and deterministic; useful for
// quick renders and tests.
func NewSimpleScene(imageHeight, samplesPerPixel int) *Scene {
	world := geometry.NewWorld()
	world.Add(geometry.NewSphere(
		core.NewVec3(0, 0, -1), 0.5,
		material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)),
	))

	camera := renderer.NewPinholeCamera(16.0/9.0, imageHeight, 2.0, core.NewVec3(0, 0, 0), samplesPerPixel)

	return &Scene{Camera: camera, World: world}
}

// NewCoverScene creates the showcase scene: a yellow ground sphere, a
// large fuzzy mirror, and a field of randomized small spheres laid out
// in a grid plus a ring floating around the mirror. The layout is
// deterministic for a given seed.
func NewCoverScene(seed int64, imageHeight, samplesPerPixel int) *Scene {
	random := rand.New(rand.NewSource(seed))
	world := geometry.NewWorld()

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, -1), 1000, ground))

	mirror := material.NewMirror(core.NewVec3(0.8, 0.8, 0.8), 0.1)
	mirrorCenter := core.NewVec3(4, 2, 1)
	mirrorRadius := 2.0
	world.Add(geometry.NewSphere(mirrorCenter, mirrorRadius, mirror))

	// Grid of small spheres on the ground, skipping any that would
	// overlap the mirror.
	for i := -2; i < 10; i += 3 {
		for j := -6; j < 7; j += 3 {
			radius := 0.1 + 0.6*random.Float64()
			center := core.NewVec3(
				float64(i)+random.Float64()-0.5,
				radius,
				float64(j)+random.Float64()-0.5,
			)
			if center.Subtract(mirrorCenter).Length() < mirrorRadius+radius {
				continue
			}
			world.Add(geometry.NewSphere(center, radius, randomMaterial(random)))
		}
	}

	// Ring of spheres floating around the mirror.
	for degrees := 0; degrees < 360; degrees += 60 {
		distance := 1.5 + 2.5*random.Float64()
		height := 0.8 + 2.2*random.Float64()
		theta := float64(degrees) * math.Pi / 180
		center := core.NewVec3(distance*math.Cos(theta), height, distance*math.Sin(theta)).Add(mirrorCenter)
		radius := 0.1 + 0.4*random.Float64()
		world.Add(geometry.NewSphere(center, radius, randomMaterial(random)))
	}

	camera := renderer.NewCamera(renderer.CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageHeight:     imageHeight,
		VerticalFov:     60,
		Center:          core.NewVec3(13, 3, 0),
		LookAt:          core.NewVec3(0, 1, 0),
		DefocusAngle:    0.6,
		FocusDistance:   10,
		SamplesPerPixel: samplesPerPixel,
	})

	return &Scene{Camera: camera, World: world}
}

// randomMaterial picks a material with the 60/20/20 diffuse/mirror/glass mix
func randomMaterial(random *rand.Rand) core.Material {
	x := random.Float64()
	switch {
	case x < 0.6:
		albedo := core.RandomVec3(random).MultiplyVec(core.RandomVec3(random))
		return material.NewLambertian(albedo)
	case x < 0.8:
		albedo := core.RandomVec3Range(random, 0.5, 1.0)
		return material.NewMirror(albedo, 0.4*random.Float64())
	default:
		return material.NewDielectric(1.5)
	}
}
