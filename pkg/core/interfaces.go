package core

import "math/rand"

// HitRecord contains information about a ray-object intersection.
// The Normal is unit length and always points out of the surface
// geometrically; it is not flipped toward the incoming ray, so materials
// must inspect the dot product with the ray direction to tell entering
// from exiting. The Material reference is non-owning: the scene object
// it came from must outlive the record.
type HitRecord struct {
	Point    Vec3     // Point of intersection
	Normal   Vec3     // Geometric surface normal at the intersection
	T        float64  // Parameter t along the ray
	Material Material // Material of the hit object
}

// Hittable is the intersection contract shared by primitives and
// aggregates. Hit returns the nearest intersection with t in
// [tMin, tMax], or (nil, false) if there is none.
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}

// ScatteredRay is the result of a material interacting with an incoming
// ray: the outgoing bounce ray and the attenuation applied to whatever
// light it gathers.
type ScatteredRay struct {
	Ray         Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation
}

// Material is the scattering contract. Scatter either produces exactly
// one outgoing ray with an attenuation, or reports absorption by
// returning false.
type Material interface {
	Scatter(rayIn Ray, hit *HitRecord, random *rand.Rand) (ScatteredRay, bool)
}
