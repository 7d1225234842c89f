package renderer

import (
	"math"
	"math/rand"

	"github.com/jshort/go-sphere-tracer/pkg/core"
)

// CameraConfig holds the user-facing camera parameters. Exactly one of
// VerticalFov (degrees) and ViewportHeight (world units) should be set;
// VerticalFov wins when both are nonzero.
type CameraConfig struct {
	AspectRatio     float64   // Width / height; determines image width from height
	ImageHeight     int       // Output resolution in pixels
	VerticalFov     float64   // Vertical field of view in degrees
	ViewportHeight  float64   // Explicit viewport height, for the fixed-axis variant
	Center          core.Vec3 // Eye position
	LookAt          core.Vec3 // Target the camera points at
	DefocusAngle    float64   // Lens cone angle in degrees; <= 0 disables depth of field
	FocusDistance   float64   // Distance from the eye to the plane of perfect focus
	SamplesPerPixel int       // Rays averaged per pixel; must be positive
	MaxDepth        int       // Bounce-depth cutoff; 0 means DefaultMaxDepth
}

// Camera is the derived, immutable render-time configuration: resolution,
// precomputed viewport vectors and defocus-disk basis. The coordinate
// space is x right, y up, with the viewport in front of the eye.
type Camera struct {
	imageWidth      int
	imageHeight     int
	center          core.Vec3
	pixelDeltaU     core.Vec3
	pixelDeltaV     core.Vec3
	pixel00         core.Vec3
	defocusAngle    float64
	defocusDiskU    core.Vec3
	defocusDiskV    core.Vec3
	samplesPerPixel int
	maxDepth        int
}

// NewCamera derives a camera from the given configuration.
func NewCamera(config CameraConfig) *Camera {
	imageWidth := int(float64(config.ImageHeight) * config.AspectRatio)

	// The viewport sits on the focus plane, scaled either by the field
	// of view or given directly in world units.
	var viewportHeight float64
	if config.VerticalFov > 0 {
		fovTheta := config.VerticalFov * math.Pi / 180
		viewportHeight = 2 * math.Tan(fovTheta/2) * config.FocusDistance
	} else {
		viewportHeight = config.ViewportHeight
	}
	viewportWidth := viewportHeight * (float64(imageWidth) / float64(config.ImageHeight))

	// Orthonormal basis from the view direction: w points from the
	// target back toward the eye, u right, v up.
	up := core.NewVec3(0, 1, 0)
	basisW := config.Center.Subtract(config.LookAt).Normalize()
	basisU := up.Cross(basisW).Normalize()
	basisV := basisW.Cross(basisU)

	viewportU := basisU.Multiply(viewportWidth)           // along the width of the viewport
	viewportV := basisV.Negate().Multiply(viewportHeight) // down the height of the viewport

	pixelDeltaU := viewportU.Divide(float64(imageWidth))
	pixelDeltaV := viewportV.Divide(float64(config.ImageHeight))

	// Upper-left corner of the viewport, then the center of pixel (0,0).
	viewportOrigin := config.Center.
		Subtract(basisW.Multiply(config.FocusDistance)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	pixel00 := viewportOrigin.Add(pixelDeltaU.Divide(2)).Add(pixelDeltaV.Divide(2))

	defocusDiskRadius := math.Tan(config.DefocusAngle/2*math.Pi/180) * config.FocusDistance

	maxDepth := config.MaxDepth
	if maxDepth == 0 {
		maxDepth = DefaultMaxDepth
	}

	return &Camera{
		imageWidth:      imageWidth,
		imageHeight:     config.ImageHeight,
		center:          config.Center,
		pixelDeltaU:     pixelDeltaU,
		pixelDeltaV:     pixelDeltaV,
		pixel00:         pixel00,
		defocusAngle:    config.DefocusAngle,
		defocusDiskU:    basisU.Multiply(defocusDiskRadius),
		defocusDiskV:    basisV.Multiply(defocusDiskRadius),
		samplesPerPixel: config.SamplesPerPixel,
		maxDepth:        maxDepth,
	}
}

// NewPinholeCamera creates the fixed-axis preset: the eye looks down -z
// with no depth of field and an explicit viewport height one unit away.
func NewPinholeCamera(aspectRatio float64, imageHeight int, viewportHeight float64, center core.Vec3, samplesPerPixel int) *Camera {
	return NewCamera(CameraConfig{
		AspectRatio:     aspectRatio,
		ImageHeight:     imageHeight,
		ViewportHeight:  viewportHeight,
		Center:          center,
		LookAt:          center.Add(core.NewVec3(0, 0, -1)),
		FocusDistance:   1,
		SamplesPerPixel: samplesPerPixel,
	})
}

// Width returns the output image width in pixels
func (c *Camera) Width() int { return c.imageWidth }

// Height returns the output image height in pixels
func (c *Camera) Height() int { return c.imageHeight }

// GetRay generates one sampled ray through pixel (i, j): the origin is
// drawn from the defocus disk and the target is the pixel center
// displaced by an antialiasing jitter of up to half a pixel step.
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	origin := c.sampleDefocusDisk(random)

	pixelCenter := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i))).
		Add(c.pixelDeltaV.Multiply(float64(j)))
	jitter := c.pixelDeltaU.Multiply(random.Float64() - 0.5).
		Add(c.pixelDeltaV.Multiply(random.Float64() - 0.5))

	return core.NewRay(origin, pixelCenter.Add(jitter).Subtract(origin))
}

// sampleDefocusDisk picks a random origin on the virtual lens. With no
// defocus every ray starts exactly at the eye. The polar sample is not
// area-uniform, matching the sphere sampler's scheme.
func (c *Camera) sampleDefocusDisk(random *rand.Rand) core.Vec3 {
	if c.defocusAngle <= 0 {
		return c.center
	}
	theta := random.Float64() * 2 * math.Pi
	r := random.Float64()
	return c.center.Add(
		c.defocusDiskU.Multiply(math.Cos(theta)).
			Add(c.defocusDiskV.Multiply(math.Sin(theta))).
			Multiply(r))
}

// drawPixel averages samplesPerPixel independent radiance estimates for
// pixel (i, j).
func (c *Camera) drawPixel(i, j int, world core.Hittable, random *rand.Rand) core.Vec3 {
	var color core.Vec3
	for sample := 0; sample < c.samplesPerPixel; sample++ {
		ray := c.GetRay(i, j, random)
		color = color.Add(RayColor(ray, world, random, c.maxDepth))
	}
	return color.Divide(float64(c.samplesPerPixel))
}

// Draw renders every pixel of the output resolution sequentially,
// threading the single random generator through all sampling and
// scattering calls. The result is deterministic for a fixed generator
// state.
func (c *Camera) Draw(world core.Hittable, random *rand.Rand) *Canvas {
	canvas := NewCanvas(c.imageWidth, c.imageHeight)
	for j := 0; j < c.imageHeight; j++ {
		for i := 0; i < c.imageWidth; i++ {
			canvas.PutPixel(i, j, c.drawPixel(i, j, world, random))
		}
	}
	return canvas
}
