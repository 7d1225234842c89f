package geometry

import (
	"math"

	"github.com/jshort/go-sphere-tracer/pkg/core"
)

// Sphere represents a sphere shape. Immutable after construction.
// The radius must be strictly positive; that is a documented
// precondition, not a validated one.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients in the half-b form: at² + 2bt + c = 0
	a := ray.Direction.LengthSquared()
	halfB := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	// A tangent ray (discriminant exactly zero) counts as a miss.
	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		// Try the farther intersection point
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			// Both intersections are outside valid range
			return nil, false
		}
	}

	point := ray.At(root)
	return &core.HitRecord{
		Point: point,
		// Geometric outward normal; not flipped for rays that start
		// inside the sphere.
		Normal:   point.Subtract(s.Center).Divide(s.Radius),
		T:        root,
		Material: s.Material,
	}, true
}
