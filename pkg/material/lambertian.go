package material

import (
	"math/rand"

	"github.com/jshort/go-sphere-tracer/pkg/core"
)

// Lambertian represents a perfectly diffuse (matte) material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter bounces the ray in a random direction biased around the
// surface normal. Lambertian surfaces always scatter.
func (l *Lambertian) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatteredRay, bool) {
	bounceDirection := hit.Normal.Add(core.RandomUnitVector(random))

	// The random sample can cancel the normal almost exactly, which
	// would produce a degenerate zero-length ray. Fall back to the
	// normal itself in that case.
	if bounceDirection.NearZero() {
		bounceDirection = hit.Normal
	}

	return core.ScatteredRay{
		Ray:         core.NewRay(hit.Point, bounceDirection),
		Attenuation: l.Albedo,
	}, true
}
