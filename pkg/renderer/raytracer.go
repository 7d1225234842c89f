package renderer

import (
	"math"
	"math/rand"

	"github.com/jshort/go-sphere-tracer/pkg/core"
)

// DefaultMaxDepth is the bounce-depth cutoff used when a camera is
// configured without an explicit maximum.
const DefaultMaxDepth = 20

// hitTMin keeps bounce rays from re-intersecting the surface they just
// left (shadow acne).
const hitTMin = 0.01

// RayColor resolves the color carried by a single ray by recursively
// scattering it off objects in the world. A ray that exhausts its depth
// budget or gets absorbed contributes black; a ray that escapes the
// scene returns the sky gradient.
func RayColor(ray core.Ray, world core.Hittable, random *rand.Rand, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, hitTMin, math.Inf(1))
	if !isHit {
		return skyGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, random)
	if !didScatter {
		return core.Vec3{} // Material absorbed the ray
	}

	return RayColor(scatter.Ray, world, random, depth-1).MultiplyVec(scatter.Attenuation)
}

// skyGradient blends from white to light blue along the ray's vertical
// direction: a=0 (straight down) is white, a=1 (straight up) is blue.
func skyGradient(r core.Ray) core.Vec3 {
	a := 0.5*r.Direction.Y + 0.5
	white := core.NewVec3(1.0, 1.0, 1.0)
	blue := core.NewVec3(0.5, 0.7, 1.0)
	return white.Multiply(1 - a).Add(blue.Multiply(a))
}
