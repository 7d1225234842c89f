package material

import (
	"math"
	"math/rand"

	"github.com/jshort/go-sphere-tracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both
// reflect and refract. The refractive index must be > 1.
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter either reflects or refracts the incoming ray. Dielectrics
// never absorb, and clear glass attenuates nothing, so the attenuation
// is always white.
func (d *Dielectric) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatteredRay, bool) {
	// The hit normal is geometric (never flipped), so the sign of the
	// dot product tells us whether the ray is entering or exiting.
	normal := hit.Normal
	var refractionRatio float64
	if rayIn.Direction.Dot(hit.Normal) < 0 {
		refractionRatio = 1.0 / d.RefractiveIndex // air into glass
	} else {
		refractionRatio = d.RefractiveIndex // glass into air
		normal = hit.Normal.Negate()
	}

	cosTheta := math.Min(normal.Dot(rayIn.Direction.Negate()), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	// Total internal reflection, or a probabilistic Fresnel reflection
	// per Schlick's approximation.
	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > random.Float64() {
		direction = rayIn.Direction.Reflect(normal)
	} else {
		direction = refract(rayIn.Direction, normal, refractionRatio)
	}

	return core.ScatteredRay{
		Ray:         core.NewRay(hit.Point, direction),
		Attenuation: core.NewVec3(1.0, 1.0, 1.0),
	}, true
}

// refract bends a unit vector through a surface with normal n using
// Snell's law, decomposed into perpendicular and parallel components.
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
