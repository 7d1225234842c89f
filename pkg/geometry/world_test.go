package geometry

import (
	"math"
	"testing"

	"github.com/jshort/go-sphere-tracer/pkg/core"
)

func TestWorld_Hit_ReturnsNearest(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial())
	far := NewSphere(core.NewVec3(0, 0, -5), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Insertion order must not matter; only the globally nearest hit
	// is ever returned.
	orders := []struct {
		name    string
		objects []core.Hittable
	}{
		{"near first", []core.Hittable{near, far}},
		{"far first", []core.Hittable{far, near}},
	}

	for _, tt := range orders {
		t.Run(tt.name, func(t *testing.T) {
			world := NewWorld()
			for _, object := range tt.objects {
				world.Add(object)
			}

			hit, isHit := world.Hit(ray, 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-1.5) > 1e-9 {
				t.Errorf("Expected nearest hit at t=1.5, got t=%f", hit.T)
			}
		})
	}
}

func TestWorld_Hit_Empty(t *testing.T) {
	world := NewWorld()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if hit, isHit := world.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Errorf("Expected empty world to miss, got hit at t=%f", hit.T)
	}
}

func TestWorld_Hit_AllMiss(t *testing.T) {
	world := NewWorld()
	world.Add(NewSphere(core.NewVec3(0, 5, 0), 1.0, testMaterial()))
	world.Add(NewSphere(core.NewVec3(0, -5, 0), 1.0, testMaterial()))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if hit, isHit := world.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Errorf("Expected miss, got hit at t=%f", hit.T)
	}
}

func TestWorld_Len(t *testing.T) {
	world := NewWorld()
	if world.Len() != 0 {
		t.Errorf("Expected empty world, got %d objects", world.Len())
	}
	world.Add(NewSphere(core.NewVec3(0, 0, -1), 0.5, testMaterial()))
	if world.Len() != 1 {
		t.Errorf("Expected 1 object, got %d", world.Len())
	}
}
