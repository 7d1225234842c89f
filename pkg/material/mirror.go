package material

import (
	"math/rand"

	"github.com/jshort/go-sphere-tracer/pkg/core"
)

// Mirror represents a specular material with optional fuzzy reflection
type Mirror struct {
	Albedo    core.Vec3 // Mirror color
	Fuzziness float64   // 0.0 = perfect mirror, approaching 1.0 = very fuzzy
}

// NewMirror creates a new mirror material. Fuzziness is expected in [0, 1).
func NewMirror(albedo core.Vec3, fuzziness float64) *Mirror {
	return &Mirror{Albedo: albedo, Fuzziness: fuzziness}
}

// Scatter reflects the incoming ray about the normal and perturbs it by
// the fuzziness. If the perturbed direction points into the surface the
// ray is absorbed.
func (m *Mirror) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatteredRay, bool) {
	reflected := rayIn.Direction.Reflect(hit.Normal)
	bounceDirection := reflected.Add(core.RandomUnitVector(random).Multiply(m.Fuzziness))

	// Excessive fuzz can push the bounce below the surface; such rays
	// are treated as absorbed rather than re-sampled.
	if bounceDirection.Dot(hit.Normal) <= 0 {
		return core.ScatteredRay{}, false
	}

	return core.ScatteredRay{
		Ray:         core.NewRay(hit.Point, bounceDirection),
		Attenuation: m.Albedo,
	}, true
}
