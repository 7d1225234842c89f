package geometry

import (
	"github.com/jshort/go-sphere-tracer/pkg/core"
)

// World aggregates hittable objects and resolves the nearest hit among
// them. It holds non-owning references; the caller keeps the objects
// alive for at least as long as the render. Insertion order does not
// affect results.
type World struct {
	objects []core.Hittable
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{}
}

// Add appends an object to the world
func (w *World) Add(object core.Hittable) {
	w.objects = append(w.objects, object)
}

// Len returns the number of objects in the world
func (w *World) Len() int {
	return len(w.objects)
}

// Hit returns the hit with the smallest t among all objects, or
// (nil, false) if nothing intersects within [tMin, tMax]. This is a
// full linear scan with no spatial partitioning.
func (w *World) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, object := range w.objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
